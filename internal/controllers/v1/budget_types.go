package v1

import (
	"fmt"

	"github.com/DevLoom-Space/Expense-Tracker/internal/models"
	"github.com/DevLoom-Space/Expense-Tracker/internal/types"
	ez_uuid "github.com/DevLoom-Space/Expense-Tracker/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// BudgetEditable represents all budget configurable parameters
type BudgetEditable struct {
	OwnerID     ez_uuid.UUID    `json:"ownerId" example:"d3c4a1a9-bb1a-43c7-8b58-2cfabd7a2f44"`    // ID of the user this budget belongs to
	CategoryID  ez_uuid.UUID    `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91f71defe"` // ID of the category the budget caps
	Month       types.Month     `json:"month" example:"2026-02-01T00:00:00Z"`                      // The month the budget applies to
	LimitAmount decimal.Decimal `json:"limitAmount" example:"200.00" minimum:"0.00000001" maximum:"999999999999" multipleOf:"0.01"` // Spending limit for the month
}

func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		OwnerID:     editable.OwnerID.UUID,
		CategoryID:  editable.CategoryID.UUID,
		Month:       editable.Month,
		LimitAmount: editable.LimitAmount,
	}
}

type BudgetLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/budgets/6b5a8a57-9f30-4ad8-a1b0-6f3cdd23aa4a"` // The budget itself
	Category string `json:"category" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91f71defe"` // The category the budget caps
}

// Budget is the representation of a Budget in API v1.
type Budget struct {
	models.DefaultModel
	BudgetEditable
	Links BudgetLinks `json:"links"`
}

func newBudget(c *gin.Context, model models.Budget) Budget {
	url := c.GetString(string(models.DBContextURL))

	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			OwnerID:     ez_uuid.UUID{UUID: model.OwnerID},
			CategoryID:  ez_uuid.UUID{UUID: model.CategoryID},
			Month:       model.Month,
			LimitAmount: model.LimitAmount,
		},
		Links: BudgetLinks{
			Self:     fmt.Sprintf("%s/v1/budgets/%s", url, model.ID),
			Category: fmt.Sprintf("%s/v1/categories/%s", url, model.CategoryID),
		},
	}
}

type BudgetListResponse struct {
	Data       []Budget    `json:"data"`                                                  // List of budgets
	Error      *string     `json:"error" example:"the owner query parameter must be set"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                            // Pagination information
}

type BudgetResponse struct {
	Data  *Budget `json:"data"`                                                          // The Budget data
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type BudgetQueryFilter struct {
	Owner    ez_uuid.UUID `form:"owner" filterField:"false"`    // By owner, required
	Category ez_uuid.UUID `form:"category" filterField:"false"` // By category
	Month    string       `form:"month" filterField:"false"`    // By month, format YYYY-MM-DD
	Offset   int          `form:"offset" filterField:"false"`   // The offset of the first Budget returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`    // Maximum number of Budgets to return. Defaults to 50.
}
