package v1

import (
	"time"

	"github.com/DevLoom-Space/Expense-Tracker/internal/analytics"
	ez_uuid "github.com/DevLoom-Space/Expense-Tracker/internal/uuid"
	"github.com/shopspring/decimal"
)

// AnalyticsQueryFilter selects the owner and the reporting month for the
// analytics endpoints.
type AnalyticsQueryFilter struct {
	Owner ez_uuid.UUID `form:"owner"` // The user to aggregate for, required
	Month string       `form:"month"` // Any day of the requested month, format YYYY-MM-DD. Defaults to the current month.
}

// MonthlySummary is the month-to-date income, expense and net of one user.
type MonthlySummary struct {
	From    time.Time       `json:"from" example:"2026-02-01T00:00:00Z"`  // First day of the reporting window
	Until   time.Time       `json:"until" example:"2026-02-14T00:00:00Z"` // Last day of the reporting window
	Income  decimal.Decimal `json:"income" example:"500.00"`              // Summed income of the window
	Expense decimal.Decimal `json:"expense" example:"100.00"`             // Summed expense of the window
	Net     decimal.Decimal `json:"net" example:"400.00"`                 // Income minus expense
}

type MonthlySummaryResponse struct {
	Data  *MonthlySummary `json:"data"`                                                  // The summary data
	Error *string         `json:"error" example:"the owner query parameter must be set"` // The error, if any occurred
}

type CategoryBreakdownResponse struct {
	Data  []analytics.CategoryTotal `json:"data"`                                                  // Expense totals per category, largest first
	Error *string                   `json:"error" example:"the owner query parameter must be set"` // The error, if any occurred
}

type BudgetAlertsResponse struct {
	Data  []analytics.BudgetAlert `json:"data"`                                                  // One alert per budget of the month
	Error *string                 `json:"error" example:"the owner query parameter must be set"` // The error, if any occurred
}

type MonthlyHistoryResponse struct {
	Data  []analytics.HistoryRow `json:"data"`                                                  // Totals per month and type, oldest first
	Error *string                `json:"error" example:"the owner query parameter must be set"` // The error, if any occurred
}

// Dashboard bundles every aggregation of the current month plus the most
// recent transactions into one response.
type Dashboard struct {
	Summary   MonthlySummary            `json:"summary"`   // Month-to-date totals
	Breakdown []analytics.CategoryTotal `json:"breakdown"` // Expense totals per category, largest first
	Alerts    []analytics.BudgetAlert   `json:"alerts"`    // One alert per budget of the month
	History   []analytics.HistoryRow    `json:"history"`   // Totals per month and type for the trend chart
	Recent    []Transaction             `json:"recent"`    // The most recent transactions
}

type DashboardResponse struct {
	Data  *Dashboard `json:"data"`                                                  // The dashboard data
	Error *string    `json:"error" example:"the owner query parameter must be set"` // The error, if any occurred
}
