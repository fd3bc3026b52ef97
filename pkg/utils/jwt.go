package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IdentityClaims is what a session identifier carries once it has been verified.
type IdentityClaims struct {
	AccountID string
	Role      string
	APIToken  string
}

func GenerateToken(secret []byte, accountID, role, apiToken string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": accountID,
		"role":    role,
		"exp":     time.Now().Add(ttl).Unix(),
	}
	if apiToken != "" {
		claims["api_token"] = apiToken
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ValidateToken(secret []byte, tokenString string) (*IdentityClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}

		return secret, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	identity := &IdentityClaims{}
	identity.AccountID, _ = claims["user_id"].(string)
	identity.Role, _ = claims["role"].(string)
	identity.APIToken, _ = claims["api_token"].(string)
	if identity.AccountID == "" {
		return nil, errors.New("invalid token")
	}

	return identity, nil
}
