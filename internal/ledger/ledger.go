// Package ledger implements read access to the transaction ledger.
//
// The store is the single place where transaction queries are built. It is
// scoped to one owner per call and excludes soft deleted rows unless the
// caller opts in explicitly, so every consumer gets the "active
// transactions only" view by default.
package ledger

import (
	"errors"
	"fmt"
	"time"

	"github.com/DevLoom-Space/Expense-Tracker/internal/models"
	"github.com/DevLoom-Space/Expense-Tracker/internal/types"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

var ErrOrderingInvalid = errors.New("ordering must be one of date, -date, amount, -amount, created_at, -created_at")

// orderings maps the external ordering keys to SQL order clauses.
var orderings = map[string]string{
	"date":        "datetime(transactions.date) ASC",
	"-date":       "datetime(transactions.date) DESC",
	"amount":      "transactions.amount ASC",
	"-amount":     "transactions.amount DESC",
	"created_at":  "datetime(transactions.created_at) ASC",
	"-created_at": "datetime(transactions.created_at) DESC",
}

// OrderingKeys are the accepted values for TransactionFilter.OrderBy.
func OrderingKeys() []string {
	return []string{"date", "-date", "amount", "-amount", "created_at", "-created_at"}
}

// TransactionFilter selects transactions for one owner.
//
// The zero value of every optional field means "do not filter on this".
// From and Until are inclusive dates; the time of day is ignored.
type TransactionFilter struct {
	Owner          uuid.UUID
	WalletID       uuid.UUID
	CategoryID     uuid.UUID
	Uncategorized  bool // only transactions without a category
	Type           models.TransactionType
	From           time.Time
	Until          time.Time
	Note           string // substring match on the note
	IncludeDeleted bool   // opt-in for soft deleted rows, e.g. for audits
	OrderBy        string // one of OrderingKeys, empty for date desc, created desc
	Offset         int
	Limit          int
}

// Store provides filtered read access to wallets, categories, budgets and
// transactions. It holds no state beyond the database handle; every call
// re-reads current data, so a soft delete is visible to the next call.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) Store {
	return Store{db: db}
}

// transactionQuery builds the WHERE part of a transaction query.
func (s Store) transactionQuery(filter TransactionFilter) *gorm.DB {
	q := s.db.Model(&models.Transaction{})

	if filter.IncludeDeleted {
		q = q.Unscoped()
	}

	q = q.Where("transactions.owner_id = ?", filter.Owner)

	if filter.WalletID != uuid.Nil {
		q = q.Where("transactions.wallet_id = ?", filter.WalletID)
	}

	if filter.Uncategorized {
		q = q.Where("transactions.category_id IS NULL")
	} else if filter.CategoryID != uuid.Nil {
		q = q.Where("transactions.category_id = ?", filter.CategoryID)
	}

	if filter.Type != "" {
		q = q.Where("transactions.type = ?", filter.Type)
	}

	if !filter.From.IsZero() {
		from := time.Date(filter.From.Year(), filter.From.Month(), filter.From.Day(), 0, 0, 0, 0, time.UTC)
		q = q.Where("transactions.date >= date(?)", from)
	}

	if !filter.Until.IsZero() {
		until := time.Date(filter.Until.Year(), filter.Until.Month(), filter.Until.Day()+1, 0, 0, 0, 0, time.UTC)
		q = q.Where("transactions.date < date(?)", until)
	}

	if filter.Note != "" {
		q = q.Where("transactions.note LIKE ?", fmt.Sprintf("%%%s%%", filter.Note))
	}

	return q
}

// Transactions returns all transactions matching the filter, with wallet
// and category preloaded.
func (s Store) Transactions(filter TransactionFilter) ([]models.Transaction, error) {
	q := s.transactionQuery(filter).
		Preload("Wallet").
		Preload("Category")

	order := "datetime(transactions.date) DESC, datetime(transactions.created_at) DESC"
	if filter.OrderBy != "" {
		if !slices.Contains(OrderingKeys(), filter.OrderBy) {
			return nil, ErrOrderingInvalid
		}
		order = orderings[filter.OrderBy]
	}
	q = q.Order(order)

	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var transactions []models.Transaction
	err := q.Find(&transactions).Error
	if err != nil {
		return nil, fmt.Errorf("getting transactions failed: %w", err)
	}

	return transactions, nil
}

// CountTransactions returns the number of transactions matching the
// filter. Offset and limit are ignored.
func (s Store) CountTransactions(filter TransactionFilter) (int64, error) {
	var count int64

	err := s.transactionQuery(filter).Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting transactions failed: %w", err)
	}

	return count, nil
}

// Budgets returns the budgets of an owner for exactly the given month,
// with the category preloaded. The month is a key, not a range.
func (s Store) Budgets(owner uuid.UUID, month types.Month) ([]models.Budget, error) {
	var budgets []models.Budget

	err := s.db.
		Preload("Category").
		Where("budgets.owner_id = ?", owner).
		Where("budgets.month = ?", month).
		Order("datetime(budgets.created_at) ASC").
		Find(&budgets).Error
	if err != nil {
		return nil, fmt.Errorf("getting budgets failed: %w", err)
	}

	return budgets, nil
}

// BudgetsForOwner returns all budgets of an owner, newest month first.
func (s Store) BudgetsForOwner(owner uuid.UUID) ([]models.Budget, error) {
	var budgets []models.Budget

	err := s.db.
		Preload("Category").
		Where("budgets.owner_id = ?", owner).
		Order("budgets.month DESC").
		Find(&budgets).Error
	if err != nil {
		return nil, fmt.Errorf("getting budgets failed: %w", err)
	}

	return budgets, nil
}

// Wallet resolves a wallet ID for an owner.
func (s Store) Wallet(owner, id uuid.UUID) (models.Wallet, error) {
	var wallet models.Wallet

	err := s.db.
		Where("wallets.owner_id = ?", owner).
		First(&wallet, id).Error
	if err != nil {
		return models.Wallet{}, err
	}

	return wallet, nil
}

// Category resolves a category ID for an owner.
func (s Store) Category(owner, id uuid.UUID) (models.Category, error) {
	var category models.Category

	err := s.db.
		Where("categories.owner_id = ?", owner).
		First(&category, id).Error
	if err != nil {
		return models.Category{}, err
	}

	return category, nil
}
