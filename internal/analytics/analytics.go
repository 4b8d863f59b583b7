// Package analytics implements the aggregation engine: the pure
// computations that turn a user's transaction ledger into derived views.
//
// Every function is a single bounded read through the ledger store
// followed by an in-memory reduction. Nothing is cached and nothing is
// mutated, so concurrent calls need no coordination and a soft delete is
// visible to the very next call. The owner is an explicit parameter on
// every operation; there is no ambient user state.
package analytics

import (
	"sort"
	"time"

	"github.com/DevLoom-Space/Expense-Tracker/internal/ledger"
	"github.com/DevLoom-Space/Expense-Tracker/internal/models"
	"github.com/DevLoom-Space/Expense-Tracker/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Source is the capability the engine needs from the ledger store.
type Source interface {
	Transactions(filter ledger.TransactionFilter) ([]models.Transaction, error)
	Budgets(owner uuid.UUID, month types.Month) ([]models.Budget, error)
}

// Totals are the summed amounts of one reporting window.
// Missing data sums to zero, never to null.
type Totals struct {
	Income  decimal.Decimal `json:"income" example:"500.00"`
	Expense decimal.Decimal `json:"expense" example:"100.00"`
}

// Net returns income minus expense.
func (t Totals) Net() decimal.Decimal {
	return t.Income.Sub(t.Expense)
}

// MonthlyTotals sums the active transactions of an owner within the
// inclusive window [start, end], separately per type.
func MonthlyTotals(src Source, owner uuid.UUID, start, end time.Time) (Totals, error) {
	transactions, err := src.Transactions(ledger.TransactionFilter{
		Owner: owner,
		From:  start,
		Until: end,
	})
	if err != nil {
		return Totals{}, err
	}

	return sumByType(transactions), nil
}

// CategoryTotal is one row of the expense breakdown. Uncategorized
// transactions group under the empty name.
type CategoryTotal struct {
	Category string          `json:"category" example:"Food"`
	Total    decimal.Decimal `json:"total" example:"250.00"`
}

// CategoryBreakdown groups the active expenses of an owner within
// [start, end] by category name and sums them per group. Rows are ordered
// by descending total; equal totals keep the order in which the groups
// were first seen.
func CategoryBreakdown(src Source, owner uuid.UUID, start, end time.Time) ([]CategoryTotal, error) {
	transactions, err := src.Transactions(ledger.TransactionFilter{
		Owner: owner,
		Type:  models.Expense,
		From:  start,
		Until: end,
	})
	if err != nil {
		return nil, err
	}

	rows := expenseByCategory(transactions)

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total.GreaterThan(rows[j].Total)
	})

	return rows, nil
}

// BudgetAlert is the budget-versus-actual state of one budget.
type BudgetAlert struct {
	Category   string          `json:"category" example:"Food"`
	Limit      decimal.Decimal `json:"limit" example:"200.00"`
	Spent      decimal.Decimal `json:"spent" example:"250.00"`
	Over       decimal.Decimal `json:"over" example:"50.00"`
	IsExceeded bool            `json:"isExceeded" example:"true"`
}

// BudgetAlerts emits one alert per budget of the month that start falls
// into. Spending is summed over the active expenses in [start, end].
//
// Budgets drive the iteration: a budget without spending yields an alert
// with spent zero, while spending without a budget yields nothing.
func BudgetAlerts(src Source, owner uuid.UUID, start, end time.Time) ([]BudgetAlert, error) {
	budgets, err := src.Budgets(owner, types.MonthOf(start))
	if err != nil {
		return nil, err
	}

	transactions, err := src.Transactions(ledger.TransactionFilter{
		Owner: owner,
		Type:  models.Expense,
		From:  start,
		Until: end,
	})
	if err != nil {
		return nil, err
	}

	spent := make(map[string]decimal.Decimal)
	for _, row := range expenseByCategory(transactions) {
		spent[row.Category] = row.Total
	}

	alerts := make([]BudgetAlert, 0, len(budgets))
	for _, budget := range budgets {
		s := spent[budget.Category.Name]

		over := s.Sub(budget.LimitAmount)
		if !over.IsPositive() {
			over = decimal.Zero
		}

		alerts = append(alerts, BudgetAlert{
			Category:   budget.Category.Name,
			Limit:      budget.LimitAmount,
			Spent:      s,
			Over:       over,
			IsExceeded: s.GreaterThan(budget.LimitAmount),
		})
	}

	return alerts, nil
}

// Balance is the all-time state of one wallet.
type Balance struct {
	Income  decimal.Decimal `json:"income" example:"1500.00"`
	Expense decimal.Decimal `json:"expense" example:"400.00"`
	Balance decimal.Decimal `json:"balance" example:"1100.00"`
}

// WalletBalance sums all active transactions of a wallet, without a date
// window. The caller is responsible for having verified that the wallet
// belongs to the owner; the engine does not re-check ownership.
func WalletBalance(src Source, owner, walletID uuid.UUID) (Balance, error) {
	transactions, err := src.Transactions(ledger.TransactionFilter{
		Owner:    owner,
		WalletID: walletID,
	})
	if err != nil {
		return Balance{}, err
	}

	totals := sumByType(transactions)

	return Balance{
		Income:  totals.Income,
		Expense: totals.Expense,
		Balance: totals.Net(),
	}, nil
}

// HistoryRow is one (month, type) bucket of the trend rollup.
type HistoryRow struct {
	Month types.Month            `json:"month" example:"2026-02-01T00:00:00Z"`
	Type  models.TransactionType `json:"type" example:"EXPENSE"`
	Total decimal.Decimal        `json:"total" example:"320.00"`
}

// MonthlyHistory groups the active transactions of an owner in
// [start, end] by month and type. Rows are ordered by month ascending,
// then type ascending. Only buckets with at least one transaction appear;
// consumers that chart the result must zero-fill missing months
// themselves.
func MonthlyHistory(src Source, owner uuid.UUID, start, end time.Time) ([]HistoryRow, error) {
	transactions, err := src.Transactions(ledger.TransactionFilter{
		Owner: owner,
		From:  start,
		Until: end,
	})
	if err != nil {
		return nil, err
	}

	type bucket struct {
		month types.Month
		kind  models.TransactionType
	}

	totals := make(map[bucket]decimal.Decimal)
	for _, t := range transactions {
		b := bucket{month: types.MonthOf(t.Date), kind: t.Type}
		totals[b] = totals[b].Add(t.Amount)
	}

	rows := make([]HistoryRow, 0, len(totals))
	for b, total := range totals {
		rows = append(rows, HistoryRow{Month: b.month, Type: b.kind, Total: total})
	}

	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].Month.Equal(rows[j].Month) {
			return rows[i].Month.Before(rows[j].Month)
		}
		return rows[i].Type < rows[j].Type
	})

	return rows, nil
}

// sumByType reduces transactions into per-type totals.
func sumByType(transactions []models.Transaction) Totals {
	var totals Totals

	for _, t := range transactions {
		switch t.Type {
		case models.Income:
			totals.Income = totals.Income.Add(t.Amount)
		case models.Expense:
			totals.Expense = totals.Expense.Add(t.Amount)
		}
	}

	return totals
}

// expenseByCategory sums amounts per category name, keeping the order in
// which groups are first seen.
func expenseByCategory(transactions []models.Transaction) []CategoryTotal {
	index := make(map[string]int)
	rows := make([]CategoryTotal, 0)

	for _, t := range transactions {
		var name string
		if t.Category != nil {
			name = t.Category.Name
		}

		i, ok := index[name]
		if !ok {
			i = len(rows)
			index[name] = i
			rows = append(rows, CategoryTotal{Category: name})
		}

		rows[i].Total = rows[i].Total.Add(t.Amount)
	}

	return rows
}
