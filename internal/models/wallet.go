package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Wallet is a named money-holding account in a single currency.
// A user can have multiple wallets: Cash, M-Pesa, Bank, and so on.
// Amounts are never converted between wallets with different currencies.
type Wallet struct {
	DefaultModel
	OwnerID  uuid.UUID `gorm:"uniqueIndex:wallet_owner_name"`
	Owner    User
	Name     string `gorm:"uniqueIndex:wallet_owner_name"`
	Currency string
}

func (w *Wallet) BeforeSave(_ *gorm.DB) error {
	w.Name = strings.TrimSpace(w.Name)

	if w.Name == "" {
		w.Name = DefaultWalletName
	}

	if w.Currency == "" {
		w.Currency = DefaultCurrency
	}

	return nil
}
