package v1

import (
	"encoding/csv"
	"fmt"
	"net/http"

	"github.com/DevLoom-Space/Expense-Tracker/internal/httputil"
	"github.com/DevLoom-Space/Expense-Tracker/internal/ledger"
	"github.com/DevLoom-Space/Expense-Tracker/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", GetTransactions)
		r.POST("", CreateTransaction)
	}

	r.GET("/export", ExportTransactions)

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
		r.PATCH("/:id", UpdateTransaction)
		r.DELETE("/:id", DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	var transaction models.Transaction
	err = models.DB.First(&transaction, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create transaction
// @Description	Creates a new transaction
// @Tags			Transactions
// @Produce		json
// @Success		201	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions [post]
func CreateTransaction(c *gin.Context) {
	var editable TransactionEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	// The wallet must exist. Ownership is checked on save.
	var wallet models.Wallet
	err = models.DB.First(&wallet, editable.WalletID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	transaction := editable.model()
	err = models.DB.Create(&transaction).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusCreated, TransactionResponse{Data: &data})
}

// @Summary		List transactions
// @Description	Returns a list of transactions for the user set in the owner parameter. Soft deleted transactions are excluded unless deleted=true is set.
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		500	{object}	TransactionListResponse
// @Param			owner			query	string	true	"Filter by owner ID"
// @Param			wallet			query	string	false	"Filter by wallet ID"
// @Param			category		query	string	false	"Filter by category ID"
// @Param			uncategorized	query	bool	false	"Only transactions without a category"
// @Param			type			query	string	false	"Filter by type, INCOME or EXPENSE"
// @Param			fromDate		query	string	false	"Transactions on or after this date, format YYYY-MM-DD"
// @Param			untilDate		query	string	false	"Transactions on or before this date, format YYYY-MM-DD"
// @Param			note			query	string	false	"Substring search in the note"
// @Param			deleted			query	bool	false	"Include soft deleted transactions"
// @Param			order			query	string	false	"Sort order. One of date, -date, amount, -amount, created_at, -created_at. Defaults to -date."
// @Param			offset			query	uint	false	"The offset of the first Transaction returned. Defaults to 0."
// @Param			limit			query	int		false	"Maximum number of Transactions to return. Defaults to 50."
// @Router			/v1/transactions [get]
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &s})
		return
	}

	if filter.Owner.UUID == uuid.Nil {
		s := httputil.ErrOwnerRequired.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &s})
		return
	}

	ledgerFilter, err := filter.ledgerFilter()
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &s})
		return
	}

	// Default to 50 Transactions
	if filter.Limit == 0 && c.Query("limit") == "" {
		ledgerFilter.Limit = 50
	}

	store := ledger.New(models.DB)

	transactions, err := store.Transactions(ledgerFilter)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &s})
		return
	}

	count, err := store.CountTransactions(ledgerFilter)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &s})
		return
	}

	data := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  ledgerFilter.Limit,
		},
	})
}

// @Summary		Export transactions
// @Description	Returns the active transactions of a user as CSV, ordered by date descending
// @Tags			Transactions
// @Produce		text/csv
// @Success		200	{string}	string
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			owner		query	string	true	"Filter by owner ID"
// @Param			fromDate	query	string	false	"Transactions on or after this date, format YYYY-MM-DD"
// @Param			untilDate	query	string	false	"Transactions on or before this date, format YYYY-MM-DD"
// @Router			/v1/transactions/export [get]
func ExportTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidQueryString.Error()})
		return
	}

	if filter.Owner.UUID == uuid.Nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrOwnerRequired.Error()})
		return
	}

	ledgerFilter, err := filter.ledgerFilter()
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	// The export is always complete, never paginated or deleted rows
	ledgerFilter.IncludeDeleted = false
	ledgerFilter.Offset = 0
	ledgerFilter.Limit = 0

	transactions, err := ledger.New(models.DB).Transactions(ledgerFilter)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="transactions.csv"`)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"Date", "Wallet", "Type", "Amount", "Category", "Note"})

	for _, transaction := range transactions {
		var category string
		if transaction.Category != nil {
			category = transaction.Category.Name
		}

		_ = w.Write([]string{
			transaction.Date.Format("2006-01-02"),
			transaction.Wallet.Name,
			string(transaction.Type),
			transaction.Amount.StringFixed(2),
			category,
			transaction.Note,
		})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		_ = c.Error(fmt.Errorf("writing CSV export failed: %w", err))
	}
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &s})
		return
	}

	var transaction models.Transaction
	err = models.DB.First(&transaction, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Update transaction
// @Description	Updates an existing transaction. Only values to be updated need to be specified.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id			path		string				true	"ID formatted as string"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func UpdateTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, TransactionResponse{Error: &s})
		return
	}

	var transaction models.Transaction
	err = models.DB.First(&transaction, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, TransactionEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	var data TransactionEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	err = models.DB.Model(&transaction).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TransactionResponse{Error: &s})
		return
	}

	apiResource := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &apiResource})
}

// @Summary		Delete transaction
// @Description	Soft deletes a transaction. It disappears from every aggregation but stays in the database.
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	var transaction models.Transaction
	err = models.DB.First(&transaction, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&transaction).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
