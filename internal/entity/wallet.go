package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

type WalletTransaction struct {
	ID          string          `json:"_id" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"gte=0"`
	Type        TransactionType `json:"type" validate:"required,oneof=credit debit"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

type Wallet struct {
	ID           string              `json:"_id" validate:"required"`
	OwnerID      string              `json:"userId" validate:"required"`
	Balance      decimal.Decimal     `json:"balance" validate:"gte=0"`
	Transactions []WalletTransaction `json:"transactions" validate:"dive"`
}

type WalletResponse struct {
	Wallet Wallet `json:"wallet"`
}
