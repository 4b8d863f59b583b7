package v1

import (
	"fmt"

	"github.com/DevLoom-Space/Expense-Tracker/internal/models"
	ez_uuid "github.com/DevLoom-Space/Expense-Tracker/internal/uuid"
	"github.com/gin-gonic/gin"
)

// UserEditable represents all user configurable parameters
type UserEditable struct {
	Name string `json:"name" example:"erick" default:""` // Name of the user, unique across all users
}

func (editable UserEditable) model() models.User {
	return models.User{
		Name: editable.Name,
	}
}

type UserLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/users/d3c4a1a9-bb1a-43c7-8b58-2cfabd7a2f44"`                 // The user itself
	Wallets      string `json:"wallets" example:"https://example.com/api/v1/wallets?owner=d3c4a1a9-bb1a-43c7-8b58-2cfabd7a2f44"`      // Wallets of this user
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?owner=d3c4a1a9-bb1a-43c7-8b58-2cfabd7a2f44"` // Transactions of this user
}

// User is the representation of a User in API v1.
type User struct {
	models.DefaultModel
	UserEditable
	Links UserLinks `json:"links"`
}

func newUser(c *gin.Context, model models.User) User {
	url := c.GetString(string(models.DBContextURL))

	return User{
		DefaultModel: model.DefaultModel,
		UserEditable: UserEditable{
			Name: model.Name,
		},
		Links: UserLinks{
			Self:         fmt.Sprintf("%s/v1/users/%s", url, model.ID),
			Wallets:      fmt.Sprintf("%s/v1/wallets?owner=%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?owner=%s", url, model.ID),
		},
	}
}

type UserListResponse struct {
	Data       []User      `json:"data"`                                                          // List of users
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type UserResponse struct {
	Data  *User   `json:"data"`                                                          // The User data
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type UserQueryFilter struct {
	Name   string       `form:"name" filterField:"false"`   // By name
	Offset int          `form:"offset" filterField:"false"` // The offset of the first User returned. Defaults to 0.
	Limit  int          `form:"limit" filterField:"false"`  // Maximum number of Users to return. Defaults to 50.
	ID     ez_uuid.UUID `form:"id"`                         // By ID
}

func (f UserQueryFilter) model() models.User {
	return models.User{
		DefaultModel: models.DefaultModel{ID: f.ID.UUID},
	}
}
