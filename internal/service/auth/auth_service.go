package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dinerozz/planzo-web/internal/apiclient"
	"github.com/dinerozz/planzo-web/internal/entity"
	"github.com/dinerozz/planzo-web/internal/repository"
	"github.com/dinerozz/planzo-web/internal/session"
	"github.com/dinerozz/planzo-web/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// RemoteAuthenticator signs clients and vendors in against the Planzo API.
type RemoteAuthenticator interface {
	Login(ctx context.Context, role entity.Role, email, password string) (*entity.LoginResult, error)
}

type AuthService struct {
	admins repository.AdminRepositoryInterface
	remote RemoteAuthenticator
	secret []byte
	ttl    time.Duration
}

func NewAuthService(admins repository.AdminRepositoryInterface, remote RemoteAuthenticator, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		admins: admins,
		remote: remote,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Login checks the credentials for the role and stores a signed identifier in the session.
// Admins are checked locally; clients and vendors by the remote API.
func (s *AuthService) Login(ctx context.Context, store session.Store, role entity.Role, email, password string) (string, error) {
	if !role.Valid() {
		return "", fmt.Errorf("unknown role %q", role)
	}

	var accountID, apiToken string
	switch role {
	case entity.RoleAdmin:
		account, err := s.authenticateAdmin(ctx, email, password)
		if err != nil {
			return "", err
		}
		accountID = account.ID.String()
	default:
		result, err := s.remote.Login(ctx, role, email, password)
		if err != nil {
			var apiErr *apiclient.APIError
			if errors.As(err, &apiErr) && (apiErr.Status == http.StatusUnauthorized ||
				apiErr.Status == http.StatusBadRequest || apiErr.Status == http.StatusNotFound) {
				return "", ErrInvalidCredentials
			}
			return "", err
		}
		accountID = result.ID
		apiToken = result.Token
	}

	token, err := utils.GenerateToken(s.secret, accountID, string(role), apiToken, s.ttl)
	if err != nil {
		return "", fmt.Errorf("failed to sign session identifier: %w", err)
	}

	if err := store.Set(ctx, role, token); err != nil {
		return "", err
	}

	return token, nil
}

func (s *AuthService) authenticateAdmin(ctx context.Context, username, password string) (entity.AdminAccount, error) {
	account, err := s.admins.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return entity.AdminAccount{}, ErrInvalidCredentials
		}
		return entity.AdminAccount{}, err
	}

	if account.Password == nil {
		return entity.AdminAccount{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*account.Password), []byte(password)); err != nil {
		return entity.AdminAccount{}, ErrInvalidCredentials
	}

	return account, nil
}

// Logout clears the role's identifier, or every role's when role is empty.
func (s *AuthService) Logout(ctx context.Context, store session.Store, role entity.Role) error {
	if role == "" {
		return session.ClearAll(ctx, store)
	}
	return store.Clear(ctx, role)
}

func (s *AuthService) CreateAdmin(ctx context.Context, username, password string) (entity.AdminAccount, error) {
	if username == "" || len(password) < 8 {
		return entity.AdminAccount{}, errors.New("username is required and password must be at least 8 characters")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return entity.AdminAccount{}, err
	}

	return s.admins.Create(ctx, username, string(hashedPassword))
}
