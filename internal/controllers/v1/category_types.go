package v1

import (
	"fmt"

	"github.com/DevLoom-Space/Expense-Tracker/internal/models"
	ez_uuid "github.com/DevLoom-Space/Expense-Tracker/internal/uuid"
	"github.com/gin-gonic/gin"
)

// CategoryEditable represents all category configurable parameters
type CategoryEditable struct {
	OwnerID ez_uuid.UUID `json:"ownerId" example:"d3c4a1a9-bb1a-43c7-8b58-2cfabd7a2f44"` // ID of the user this category belongs to
	Name    string       `json:"name" example:"Food" default:""`                         // Name of the category, unique per user
}

func (editable CategoryEditable) model() models.Category {
	return models.Category{
		OwnerID: editable.OwnerID.UUID,
		Name:    editable.Name,
	}
}

type CategoryLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91f71defe"` // The category itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?category=3b1ea324-d438-4419-882a-2fc91f71defe&owner=d3c4a1a9-bb1a-43c7-8b58-2cfabd7a2f44"` // Transactions in this category
}

// Category is the representation of a Category in API v1.
type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			OwnerID: ez_uuid.UUID{UUID: model.OwnerID},
			Name:    model.Name,
		},
		Links: CategoryLinks{
			Self:         fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?category=%s&owner=%s", url, model.ID, model.OwnerID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                  // List of categories
	Error      *string     `json:"error" example:"the owner query parameter must be set"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                            // Pagination information
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // The Category data
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	Owner  ez_uuid.UUID `form:"owner" filterField:"false"`  // By owner, required
	Name   string       `form:"name" filterField:"false"`   // By name
	Offset int          `form:"offset" filterField:"false"` // The offset of the first Category returned. Defaults to 0.
	Limit  int          `form:"limit" filterField:"false"`  // Maximum number of Categories to return. Defaults to 50.
}
