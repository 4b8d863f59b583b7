package models

import (
	"strings"

	"gorm.io/gorm"
)

// Defaults for the wallet every new user starts with.
const (
	DefaultWalletName = "Main Wallet"
	DefaultCurrency   = "KES"
)

// User owns wallets, categories, budgets and transactions. Every other
// resource is scoped to exactly one user; aggregations never cross users.
type User struct {
	DefaultModel
	Name string `gorm:"uniqueIndex:user_name"`
}

func (u *User) BeforeSave(_ *gorm.DB) error {
	u.Name = strings.TrimSpace(u.Name)
	return nil
}

// AfterCreate provisions the default wallet so that a fresh user can
// record transactions right away.
func (u *User) AfterCreate(tx *gorm.DB) error {
	return tx.Create(&Wallet{
		OwnerID:  u.ID,
		Name:     DefaultWalletName,
		Currency: DefaultCurrency,
	}).Error
}
