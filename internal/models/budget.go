package models

import (
	"github.com/DevLoom-Space/Expense-Tracker/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget caps expenses for one category in one calendar month.
// There is no carry-over between months.
type Budget struct {
	DefaultModel
	OwnerID     uuid.UUID `gorm:"uniqueIndex:budget_owner_category_month"`
	Owner       User
	CategoryID  uuid.UUID `gorm:"uniqueIndex:budget_owner_category_month"`
	Category    Category
	Month       types.Month     `gorm:"uniqueIndex:budget_owner_category_month"`
	LimitAmount decimal.Decimal `gorm:"type:DECIMAL(12,2)"`
}

// BeforeSave rejects non-positive limits and cross-owner category
// references. The aggregation engine trusts rows to be valid, so this is
// the place where they become valid.
func (b *Budget) BeforeSave(tx *gorm.DB) error {
	if !b.LimitAmount.IsPositive() {
		return ErrLimitNotPositive
	}

	category := b.Category
	if category.ID == uuid.Nil {
		err := tx.First(&category, b.CategoryID).Error
		if err != nil {
			return err
		}
	}

	if category.OwnerID != b.OwnerID {
		return ErrCategoryNotOwned
	}

	return nil
}
