package v1

import (
	"fmt"
	"time"

	"github.com/DevLoom-Space/Expense-Tracker/internal/ledger"
	"github.com/DevLoom-Space/Expense-Tracker/internal/models"
	ez_uuid "github.com/DevLoom-Space/Expense-Tracker/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all transaction configurable parameters
type TransactionEditable struct {
	OwnerID    ez_uuid.UUID           `json:"ownerId" example:"d3c4a1a9-bb1a-43c7-8b58-2cfabd7a2f44"`              // ID of the user this transaction belongs to
	WalletID   ez_uuid.UUID           `json:"walletId" example:"9a09ec62-b6ef-4e4f-a5cd-d42a3ada52be"`             // ID of the wallet the transaction is recorded in
	Type       models.TransactionType `json:"type" example:"EXPENSE" default:"EXPENSE"`                            // Type of the transaction, INCOME or EXPENSE
	Amount     decimal.Decimal        `json:"amount" example:"100.00" minimum:"0.00000001" multipleOf:"0.01"`      // Amount of the transaction, always positive
	CategoryID *ez_uuid.UUID          `json:"categoryId" example:"3b1ea324-d438-4419-882a-2fc91f71defe"`           // ID of the category, optional
	Date       time.Time              `json:"date" example:"2026-02-14T00:00:00Z"`                                 // Date the transaction occurred. Defaults to the current time.
	Note       string                 `json:"note" example:"Lunch at the kibanda" default:""`                      // Free text note, optional
}

func (editable TransactionEditable) model() models.Transaction {
	var category *uuid.UUID
	if editable.CategoryID != nil {
		id := editable.CategoryID.UUID
		category = &id
	}

	return models.Transaction{
		OwnerID:    editable.OwnerID.UUID,
		WalletID:   editable.WalletID.UUID,
		Type:       editable.Type,
		Amount:     editable.Amount,
		CategoryID: category,
		Date:       editable.Date,
		Note:       editable.Note,
	}
}

type TransactionLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/transactions/2c5ff48e-8ac0-4a26-92f8-9a6d4f3c45a7"` // The transaction itself
	Wallet string `json:"wallet" example:"https://example.com/api/v1/wallets/9a09ec62-b6ef-4e4f-a5cd-d42a3ada52be"`    // The wallet the transaction is recorded in
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Links TransactionLinks `json:"links"`
}

func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	var category *ez_uuid.UUID
	if model.CategoryID != nil {
		category = &ez_uuid.UUID{UUID: *model.CategoryID}
	}

	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			OwnerID:    ez_uuid.UUID{UUID: model.OwnerID},
			WalletID:   ez_uuid.UUID{UUID: model.WalletID},
			Type:       model.Type,
			Amount:     model.Amount,
			CategoryID: category,
			Date:       model.Date,
			Note:       model.Note,
		},
		Links: TransactionLinks{
			Self:   fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Wallet: fmt.Sprintf("%s/v1/wallets/%s", url, model.WalletID),
		},
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                  // List of transactions
	Error      *string       `json:"error" example:"the owner query parameter must be set"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                            // Pagination information
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // The Transaction data
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionQueryFilter struct {
	Owner         ez_uuid.UUID `form:"owner"`         // By owner, required
	Wallet        ez_uuid.UUID `form:"wallet"`        // By wallet
	Category      ez_uuid.UUID `form:"category"`      // By category
	Uncategorized bool         `form:"uncategorized"` // Only transactions without a category
	Type          string       `form:"type"`          // By type, INCOME or EXPENSE
	FromDate      string       `form:"fromDate"`      // Transactions on or after this date, format YYYY-MM-DD
	UntilDate     string       `form:"untilDate"`     // Transactions on or before this date, format YYYY-MM-DD
	Note          string       `form:"note"`          // Substring search in the note
	Deleted       bool         `form:"deleted"`       // Include soft deleted transactions
	Order         string       `form:"order"`         // Sort order. One of date, -date, amount, -amount, created_at, -created_at. Defaults to -date.
	Offset        int          `form:"offset"`        // The offset of the first Transaction returned. Defaults to 0.
	Limit         int          `form:"limit"`         // Maximum number of Transactions to return. Defaults to 50.
}

// ledgerFilter translates the query parameters into a ledger filter.
func (f TransactionQueryFilter) ledgerFilter() (ledger.TransactionFilter, error) {
	filter := ledger.TransactionFilter{
		Owner:          f.Owner.UUID,
		WalletID:       f.Wallet.UUID,
		CategoryID:     f.Category.UUID,
		Uncategorized:  f.Uncategorized,
		Type:           models.TransactionType(f.Type),
		Note:           f.Note,
		IncludeDeleted: f.Deleted,
		OrderBy:        f.Order,
		Offset:         f.Offset,
		Limit:          f.Limit,
	}

	if f.FromDate != "" {
		from, err := time.Parse("2006-01-02", f.FromDate)
		if err != nil {
			return ledger.TransactionFilter{}, errDateInvalid
		}
		filter.From = from
	}

	if f.UntilDate != "" {
		until, err := time.Parse("2006-01-02", f.UntilDate)
		if err != nil {
			return ledger.TransactionFilter{}, errDateInvalid
		}
		filter.Until = until
	}

	return filter, nil
}
