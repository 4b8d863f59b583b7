package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType is the direction of a transaction. Amounts are always
// positive; the type carries the sign.
type TransactionType string

const (
	Income  TransactionType = "INCOME"
	Expense TransactionType = "EXPENSE"
)

// Transaction is a single ledger entry: money moving into or out of a
// wallet, optionally labelled with a category.
type Transaction struct {
	DefaultModel
	OwnerID    uuid.UUID `gorm:"index:transaction_owner_date"`
	Owner      User
	WalletID   uuid.UUID
	Wallet     Wallet
	Type       TransactionType `gorm:"default:EXPENSE"`
	Amount     decimal.Decimal `gorm:"type:DECIMAL(12,2)"`
	CategoryID *uuid.UUID
	Category   *Category
	Date       time.Time `gorm:"index:transaction_owner_date"`
	Note       string
}

// AfterFind enforces dates to be in UTC.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return
}

// BeforeSave
//   - sets the timezone for the Date to UTC, defaulting to today
//   - validates the amount and the type
//   - rejects wallet and category references that belong to another owner
//   - trims whitespace from the note
func (t *Transaction) BeforeSave(tx *gorm.DB) (err error) {
	t.Note = strings.TrimSpace(t.Note)

	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if t.Type == "" {
		t.Type = Expense
	}
	if t.Type != Income && t.Type != Expense {
		return ErrTypeInvalid
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	// Ensure that the category ID is nil and not a pointer to a nil UUID
	if t.CategoryID != nil && *t.CategoryID == uuid.Nil {
		t.CategoryID = nil
	}

	wallet := t.Wallet
	if wallet.ID == uuid.Nil {
		err = tx.First(&wallet, t.WalletID).Error
		if err != nil {
			return err
		}
	}

	if wallet.OwnerID != t.OwnerID {
		return ErrWalletNotOwned
	}

	if t.CategoryID != nil {
		var category Category
		err = tx.First(&category, *t.CategoryID).Error
		if err != nil {
			return err
		}

		if category.OwnerID != t.OwnerID {
			return ErrCategoryNotOwned
		}
	}

	return nil
}
