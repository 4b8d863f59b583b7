package v1

import (
	"net/http"
	"time"

	"github.com/DevLoom-Space/Expense-Tracker/internal/analytics"
	"github.com/DevLoom-Space/Expense-Tracker/internal/httputil"
	"github.com/DevLoom-Space/Expense-Tracker/internal/ledger"
	"github.com/DevLoom-Space/Expense-Tracker/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// The number of transactions the dashboard shows.
const dashboardRecentLimit = 8

// RegisterAnalyticsRoutes registers the routes for analytics with
// the RouterGroup that is passed.
func RegisterAnalyticsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/monthly-summary", httputil.OptionsGet)
	r.GET("/monthly-summary", GetMonthlySummary)

	r.OPTIONS("/category-breakdown", httputil.OptionsGet)
	r.GET("/category-breakdown", GetCategoryBreakdown)

	r.OPTIONS("/budget-alerts", httputil.OptionsGet)
	r.GET("/budget-alerts", GetBudgetAlerts)

	r.OPTIONS("/monthly-history", httputil.OptionsGet)
	r.GET("/monthly-history", GetMonthlyHistory)

	r.OPTIONS("/dashboard", httputil.OptionsGet)
	r.GET("/dashboard", GetDashboard)
}

// analyticsWindow parses the filter and resolves the reporting window.
// An empty month parameter means the current month.
func analyticsWindow(c *gin.Context) (owner uuid.UUID, start, end time.Time, err error) {
	var filter AnalyticsQueryFilter
	if err = c.Bind(&filter); err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, httputil.ErrInvalidQueryString
	}

	if filter.Owner.UUID == uuid.Nil {
		return uuid.Nil, time.Time{}, time.Time{}, httputil.ErrOwnerRequired
	}

	today := time.Now().UTC()

	if filter.Month == "" {
		start, end = analytics.MonthWindow(today)
		return filter.Owner.UUID, start, end, nil
	}

	month, err := time.Parse("2006-01-02", filter.Month)
	if err != nil {
		return uuid.Nil, time.Time{}, time.Time{}, errMonthInvalid
	}

	start, end = analytics.MonthWindowAt(today, month)
	return filter.Owner.UUID, start, end, nil
}

// @Summary		Monthly summary
// @Description	Returns the income, expense and net of the reporting window. Without a month parameter this is the current month to date.
// @Tags			Analytics
// @Produce		json
// @Success		200	{object}	MonthlySummaryResponse
// @Failure		400	{object}	MonthlySummaryResponse
// @Failure		500	{object}	MonthlySummaryResponse
// @Param			owner	query	string	true	"The user to aggregate for"
// @Param			month	query	string	false	"Any day of the requested month, format YYYY-MM-DD"
// @Router			/v1/analytics/monthly-summary [get]
func GetMonthlySummary(c *gin.Context) {
	owner, start, end, err := analyticsWindow(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, MonthlySummaryResponse{Error: &s})
		return
	}

	totals, err := analytics.MonthlyTotals(ledger.New(models.DB), owner, start, end)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlySummaryResponse{Error: &s})
		return
	}

	data := MonthlySummary{
		From:    start,
		Until:   end,
		Income:  totals.Income,
		Expense: totals.Expense,
		Net:     totals.Net(),
	}
	c.JSON(http.StatusOK, MonthlySummaryResponse{Data: &data})
}

// @Summary		Category breakdown
// @Description	Returns the expenses of the reporting window grouped by category, largest total first. Uncategorized expenses group under the empty name.
// @Tags			Analytics
// @Produce		json
// @Success		200	{object}	CategoryBreakdownResponse
// @Failure		400	{object}	CategoryBreakdownResponse
// @Failure		500	{object}	CategoryBreakdownResponse
// @Param			owner	query	string	true	"The user to aggregate for"
// @Param			month	query	string	false	"Any day of the requested month, format YYYY-MM-DD"
// @Router			/v1/analytics/category-breakdown [get]
func GetCategoryBreakdown(c *gin.Context) {
	owner, start, end, err := analyticsWindow(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, CategoryBreakdownResponse{Error: &s})
		return
	}

	rows, err := analytics.CategoryBreakdown(ledger.New(models.DB), owner, start, end)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), CategoryBreakdownResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, CategoryBreakdownResponse{Data: rows})
}

// @Summary		Budget alerts
// @Description	Returns the budget-versus-actual state of every budget of the reporting month. A budget without spending is included with spent zero.
// @Tags			Analytics
// @Produce		json
// @Success		200	{object}	BudgetAlertsResponse
// @Failure		400	{object}	BudgetAlertsResponse
// @Failure		500	{object}	BudgetAlertsResponse
// @Param			owner	query	string	true	"The user to aggregate for"
// @Param			month	query	string	false	"Any day of the requested month, format YYYY-MM-DD"
// @Router			/v1/analytics/budget-alerts [get]
func GetBudgetAlerts(c *gin.Context) {
	owner, start, end, err := analyticsWindow(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetAlertsResponse{Error: &s})
		return
	}

	alerts, err := analytics.BudgetAlerts(ledger.New(models.DB), owner, start, end)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetAlertsResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, BudgetAlertsResponse{Data: alerts})
}

// @Summary		Monthly history
// @Description	Returns per-month, per-type totals from six months before the reporting window through its end, oldest first. Months without transactions are omitted.
// @Tags			Analytics
// @Produce		json
// @Success		200	{object}	MonthlyHistoryResponse
// @Failure		400	{object}	MonthlyHistoryResponse
// @Failure		500	{object}	MonthlyHistoryResponse
// @Param			owner	query	string	true	"The user to aggregate for"
// @Param			month	query	string	false	"Any day of the requested month, format YYYY-MM-DD"
// @Router			/v1/analytics/monthly-history [get]
func GetMonthlyHistory(c *gin.Context) {
	owner, start, end, err := analyticsWindow(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, MonthlyHistoryResponse{Error: &s})
		return
	}

	rows, err := analytics.MonthlyHistory(ledger.New(models.DB), owner, analytics.HistoryStart(start), end)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), MonthlyHistoryResponse{Error: &s})
		return
	}

	c.JSON(http.StatusOK, MonthlyHistoryResponse{Data: rows})
}

// @Summary		Dashboard
// @Description	Returns every aggregation of the reporting month plus the month's most recent transactions in one response
// @Tags			Analytics
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		400	{object}	DashboardResponse
// @Failure		500	{object}	DashboardResponse
// @Param			owner	query	string	true	"The user to aggregate for"
// @Param			month	query	string	false	"Any day of the requested month, format YYYY-MM-DD"
// @Router			/v1/analytics/dashboard [get]
func GetDashboard(c *gin.Context) {
	owner, start, end, err := analyticsWindow(c)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, DashboardResponse{Error: &s})
		return
	}

	store := ledger.New(models.DB)

	totals, err := analytics.MonthlyTotals(store, owner, start, end)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &s})
		return
	}

	breakdown, err := analytics.CategoryBreakdown(store, owner, start, end)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &s})
		return
	}

	alerts, err := analytics.BudgetAlerts(store, owner, start, end)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &s})
		return
	}

	history, err := analytics.MonthlyHistory(store, owner, analytics.HistoryStart(start), end)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &s})
		return
	}

	recent, err := store.Transactions(ledger.TransactionFilter{
		Owner: owner,
		From:  start,
		Until: end,
		Limit: dashboardRecentLimit,
	})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), DashboardResponse{Error: &s})
		return
	}

	recentData := make([]Transaction, 0, len(recent))
	for _, transaction := range recent {
		recentData = append(recentData, newTransaction(c, transaction))
	}

	data := Dashboard{
		Summary: MonthlySummary{
			From:    start,
			Until:   end,
			Income:  totals.Income,
			Expense: totals.Expense,
			Net:     totals.Net(),
		},
		Breakdown: breakdown,
		Alerts:    alerts,
		History:   history,
		Recent:    recentData,
	}
	c.JSON(http.StatusOK, DashboardResponse{Data: &data})
}
