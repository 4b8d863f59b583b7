package v1

import (
	"fmt"

	"github.com/DevLoom-Space/Expense-Tracker/internal/analytics"
	"github.com/DevLoom-Space/Expense-Tracker/internal/models"
	ez_uuid "github.com/DevLoom-Space/Expense-Tracker/internal/uuid"
	"github.com/gin-gonic/gin"
)

// WalletEditable represents all wallet configurable parameters
type WalletEditable struct {
	OwnerID  ez_uuid.UUID `json:"ownerId" example:"d3c4a1a9-bb1a-43c7-8b58-2cfabd7a2f44"` // ID of the user this wallet belongs to
	Name     string       `json:"name" example:"M-Pesa" default:"Main Wallet"`            // Name of the wallet, unique per user
	Currency string       `json:"currency" example:"KES" default:"KES"`                   // Currency the wallet is denominated in
}

func (editable WalletEditable) model() models.Wallet {
	return models.Wallet{
		OwnerID:  editable.OwnerID.UUID,
		Name:     editable.Name,
		Currency: editable.Currency,
	}
}

type WalletLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/wallets/9a09ec62-b6ef-4e4f-a5cd-d42a3ada52be"`            // The wallet itself
	Balance      string `json:"balance" example:"https://example.com/api/v1/wallets/9a09ec62-b6ef-4e4f-a5cd-d42a3ada52be/balance"` // The balance of this wallet
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?wallet=9a09ec62-b6ef-4e4f-a5cd-d42a3ada52be&owner=d3c4a1a9-bb1a-43c7-8b58-2cfabd7a2f44"` // Transactions in this wallet
}

// Wallet is the representation of a Wallet in API v1.
type Wallet struct {
	models.DefaultModel
	WalletEditable
	Links WalletLinks `json:"links"`
}

func newWallet(c *gin.Context, model models.Wallet) Wallet {
	url := c.GetString(string(models.DBContextURL))

	return Wallet{
		DefaultModel: model.DefaultModel,
		WalletEditable: WalletEditable{
			OwnerID:  ez_uuid.UUID{UUID: model.OwnerID},
			Name:     model.Name,
			Currency: model.Currency,
		},
		Links: WalletLinks{
			Self:         fmt.Sprintf("%s/v1/wallets/%s", url, model.ID),
			Balance:      fmt.Sprintf("%s/v1/wallets/%s/balance", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?wallet=%s&owner=%s", url, model.ID, model.OwnerID),
		},
	}
}

type WalletListResponse struct {
	Data       []Wallet    `json:"data"`                                                        // List of wallets
	Error      *string     `json:"error" example:"the owner query parameter must be set"`       // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                  // Pagination information
}

type WalletResponse struct {
	Data  *Wallet `json:"data"`                                                          // The Wallet data
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// WalletBalanceResponse wraps the all-time balance of one wallet.
type WalletBalanceResponse struct {
	Data  *WalletBalance `json:"data"`  // The balance data
	Error *string        `json:"error"` // The error, if any occurred
}

type WalletBalance struct {
	Wallet   string `json:"wallet" example:"Main Wallet"` // Name of the wallet
	Currency string `json:"currency" example:"KES"`       // Currency of the wallet
	analytics.Balance
}

type WalletQueryFilter struct {
	Owner    ez_uuid.UUID `form:"owner" filterField:"false"`  // By owner, required
	Name     string       `form:"name" filterField:"false"`   // By name
	Currency string       `form:"currency"`                   // By currency
	Offset   int          `form:"offset" filterField:"false"` // The offset of the first Wallet returned. Defaults to 0.
	Limit    int          `form:"limit" filterField:"false"`  // Maximum number of Wallets to return. Defaults to 50.
}

func (f WalletQueryFilter) model() models.Wallet {
	return models.Wallet{
		OwnerID:  f.Owner.UUID,
		Currency: f.Currency,
	}
}
