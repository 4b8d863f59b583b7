package v1

import (
	"net/http"

	"github.com/DevLoom-Space/Expense-Tracker/internal/analytics"
	"github.com/DevLoom-Space/Expense-Tracker/internal/httputil"
	"github.com/DevLoom-Space/Expense-Tracker/internal/ledger"
	"github.com/DevLoom-Space/Expense-Tracker/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/slices"
)

// RegisterWalletRoutes registers the routes for wallets with
// the RouterGroup that is passed.
func RegisterWalletRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsWalletList)
		r.GET("", GetWallets)
		r.POST("", CreateWallet)
	}

	// Wallet with ID
	{
		r.OPTIONS("/:id", OptionsWalletDetail)
		r.GET("/:id", GetWallet)
		r.GET("/:id/balance", GetWalletBalance)
		r.PATCH("/:id", UpdateWallet)
		r.DELETE("/:id", DeleteWallet)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Wallets
// @Success		204
// @Router			/v1/wallets [options]
func OptionsWalletList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Wallets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/wallets/{id} [options]
func OptionsWalletDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	var wallet models.Wallet
	err = models.DB.First(&wallet, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create wallet
// @Description	Creates a new wallet for a user
// @Tags			Wallets
// @Produce		json
// @Success		201	{object}	WalletResponse
// @Failure		400	{object}	WalletResponse
// @Failure		404	{object}	WalletResponse
// @Failure		500	{object}	WalletResponse
// @Param			wallet	body		WalletEditable	true	"Wallet"
// @Router			/v1/wallets [post]
func CreateWallet(c *gin.Context) {
	var editable WalletEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WalletResponse{Error: &s})
		return
	}

	// The owner must exist
	var owner models.User
	err = models.DB.First(&owner, editable.OwnerID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WalletResponse{Error: &s})
		return
	}

	wallet := editable.model()
	err = models.DB.Create(&wallet).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WalletResponse{Error: &s})
		return
	}

	data := newWallet(c, wallet)
	c.JSON(http.StatusCreated, WalletResponse{Data: &data})
}

// @Summary		List wallets
// @Description	Returns a list of wallets for the user set in the owner parameter
// @Tags			Wallets
// @Produce		json
// @Success		200	{object}	WalletListResponse
// @Failure		400	{object}	WalletListResponse
// @Failure		500	{object}	WalletListResponse
// @Param			owner		query	string	true	"Filter by owner ID"
// @Param			name		query	string	false	"Filter by name"
// @Param			currency	query	string	false	"Filter by currency"
// @Param			offset		query	uint	false	"The offset of the first Wallet returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Wallets to return. Defaults to 50."
// @Router			/v1/wallets [get]
func GetWallets(c *gin.Context) {
	var filter WalletQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, WalletListResponse{Error: &s})
		return
	}

	if filter.Owner.UUID == uuid.Nil {
		s := httputil.ErrOwnerRequired.Error()
		c.JSON(http.StatusBadRequest, WalletListResponse{Error: &s})
		return
	}

	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("name ASC").
		Where("wallets.owner_id = ?", filter.Owner.UUID).
		Where(filter.model(), queryFields...)

	if filter.Name != "" {
		q = q.Where("name LIKE ?", filter.Name)
	}

	q = q.Offset(filter.Offset)

	limit := 50
	if slices.Contains(queryFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var wallets []models.Wallet
	err := q.Find(&wallets).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WalletListResponse{Error: &s})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WalletListResponse{Error: &s})
		return
	}

	data := make([]Wallet, 0, len(wallets))
	for _, wallet := range wallets {
		data = append(data, newWallet(c, wallet))
	}

	c.JSON(http.StatusOK, WalletListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get wallet
// @Description	Returns a specific wallet
// @Tags			Wallets
// @Produce		json
// @Success		200	{object}	WalletResponse
// @Failure		400	{object}	WalletResponse
// @Failure		404	{object}	WalletResponse
// @Failure		500	{object}	WalletResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/wallets/{id} [get]
func GetWallet(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, WalletResponse{Error: &s})
		return
	}

	var wallet models.Wallet
	err = models.DB.First(&wallet, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WalletResponse{Error: &s})
		return
	}

	data := newWallet(c, wallet)
	c.JSON(http.StatusOK, WalletResponse{Data: &data})
}

// @Summary		Get wallet balance
// @Description	Returns the all-time income, expense and balance of a wallet, active transactions only
// @Tags			Wallets
// @Produce		json
// @Success		200	{object}	WalletBalanceResponse
// @Failure		400	{object}	WalletBalanceResponse
// @Failure		404	{object}	WalletBalanceResponse
// @Failure		500	{object}	WalletBalanceResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/wallets/{id}/balance [get]
func GetWalletBalance(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, WalletBalanceResponse{Error: &s})
		return
	}

	var wallet models.Wallet
	err = models.DB.First(&wallet, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WalletBalanceResponse{Error: &s})
		return
	}

	balance, err := analytics.WalletBalance(ledger.New(models.DB), wallet.OwnerID, wallet.ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WalletBalanceResponse{Error: &s})
		return
	}

	data := WalletBalance{
		Wallet:   wallet.Name,
		Currency: wallet.Currency,
		Balance:  balance,
	}
	c.JSON(http.StatusOK, WalletBalanceResponse{Data: &data})
}

// @Summary		Update wallet
// @Description	Updates an existing wallet. Only values to be updated need to be specified.
// @Tags			Wallets
// @Accept			json
// @Produce		json
// @Success		200	{object}	WalletResponse
// @Failure		400	{object}	WalletResponse
// @Failure		404	{object}	WalletResponse
// @Failure		500	{object}	WalletResponse
// @Param			id		path		string			true	"ID formatted as string"
// @Param			wallet	body		WalletEditable	true	"Wallet"
// @Router			/v1/wallets/{id} [patch]
func UpdateWallet(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, WalletResponse{Error: &s})
		return
	}

	var wallet models.Wallet
	err = models.DB.First(&wallet, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WalletResponse{Error: &s})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, WalletEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WalletResponse{Error: &s})
		return
	}

	var data WalletEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WalletResponse{Error: &s})
		return
	}

	err = models.DB.Model(&wallet).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), WalletResponse{Error: &s})
		return
	}

	apiResource := newWallet(c, wallet)
	c.JSON(http.StatusOK, WalletResponse{Data: &apiResource})
}

// @Summary		Delete wallet
// @Description	Deletes a wallet
// @Tags			Wallets
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/wallets/{id} [delete]
func DeleteWallet(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	var wallet models.Wallet
	err = models.DB.First(&wallet, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&wallet).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
