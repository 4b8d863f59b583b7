package models

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a user defined label for grouping transactions,
// e.g. "Food" or "Rent".
type Category struct {
	DefaultModel
	OwnerID uuid.UUID `gorm:"uniqueIndex:category_owner_name"`
	Owner   User
	Name    string `gorm:"uniqueIndex:category_owner_name"`
}

func (c *Category) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	return nil
}

// Detach removes the category reference from all transactions that use it.
// Deleting a category must never delete the transactions recorded
// against it.
func (c Category) Detach(tx *gorm.DB) error {
	// UpdateColumn skips the transaction hooks, which would otherwise
	// reject the empty model used for the batch update
	return tx.Model(&Transaction{}).
		Where("category_id = ?", c.ID).
		UpdateColumn("category_id", nil).Error
}

// DeleteBudgets deletes all budgets for the category. A budget cannot
// outlive its category, it would otherwise be charged with the owner's
// uncategorized spending.
func (c Category) DeleteBudgets(tx *gorm.DB) error {
	return tx.Where("category_id = ?", c.ID).Delete(&Budget{}).Error
}
