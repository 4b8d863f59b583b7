package v1

import (
	"net/http"

	"github.com/DevLoom-Space/Expense-Tracker/internal/httputil"
	"github.com/DevLoom-Space/Expense-Tracker/internal/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// RegisterUserRoutes registers the routes for users with
// the RouterGroup that is passed.
func RegisterUserRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsUserList)
		r.GET("", GetUsers)
		r.POST("", CreateUser)
	}

	// User with ID
	{
		r.OPTIONS("/:id", OptionsUserDetail)
		r.GET("/:id", GetUser)
		r.PATCH("/:id", UpdateUser)
		r.DELETE("/:id", DeleteUser)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Router			/v1/users [options]
func OptionsUserList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Users
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/users/{id} [options]
func OptionsUserDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	var user models.User
	err = models.DB.First(&user, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create user
// @Description	Creates a new user
// @Tags			Users
// @Produce		json
// @Success		201	{object}	UserResponse
// @Failure		400	{object}	UserResponse
// @Failure		500	{object}	UserResponse
// @Param			user	body		UserEditable	true	"User"
// @Router			/v1/users [post]
func CreateUser(c *gin.Context) {
	var editable UserEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{Error: &s})
		return
	}

	user := editable.model()
	err = models.DB.Create(&user).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{Error: &s})
		return
	}

	data := newUser(c, user)
	c.JSON(http.StatusCreated, UserResponse{Data: &data})
}

// @Summary		List users
// @Description	Returns a list of users
// @Tags			Users
// @Produce		json
// @Success		200	{object}	UserListResponse
// @Failure		400	{object}	UserListResponse
// @Failure		500	{object}	UserListResponse
// @Param			name	query	string	false	"Filter by name"
// @Param			offset	query	uint	false	"The offset of the first User returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Users to return. Defaults to 50."
// @Router			/v1/users [get]
func GetUsers(c *gin.Context) {
	var filter UserQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, UserListResponse{Error: &s})
		return
	}

	// Get the fields set in the filter
	queryFields, _ := httputil.GetURLFields(c.Request.URL, filter)

	q := models.DB.
		Order("name ASC").
		Where(filter.model(), queryFields...)

	if filter.Name != "" {
		q = q.Where("name LIKE ?", filter.Name)
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(filter.Offset)

	// Default to 50 Users and set the limit
	limit := 50
	if slices.Contains(queryFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var users []models.User
	err := q.Find(&users).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserListResponse{Error: &s})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserListResponse{Error: &s})
		return
	}

	data := make([]User, 0, len(users))
	for _, user := range users {
		data = append(data, newUser(c, user))
	}

	c.JSON(http.StatusOK, UserListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get user
// @Description	Returns a specific user
// @Tags			Users
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		400	{object}	UserResponse
// @Failure		404	{object}	UserResponse
// @Failure		500	{object}	UserResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/users/{id} [get]
func GetUser(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, UserResponse{Error: &s})
		return
	}

	var user models.User
	err = models.DB.First(&user, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{Error: &s})
		return
	}

	data := newUser(c, user)
	c.JSON(http.StatusOK, UserResponse{Data: &data})
}

// @Summary		Update user
// @Description	Updates an existing user. Only values to be updated need to be specified.
// @Tags			Users
// @Accept			json
// @Produce		json
// @Success		200	{object}	UserResponse
// @Failure		400	{object}	UserResponse
// @Failure		404	{object}	UserResponse
// @Failure		500	{object}	UserResponse
// @Param			id		path		string			true	"ID formatted as string"
// @Param			user	body		UserEditable	true	"User"
// @Router			/v1/users/{id} [patch]
func UpdateUser(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := httputil.ErrInvalidUUID.Error()
		c.JSON(http.StatusBadRequest, UserResponse{Error: &s})
		return
	}

	var user models.User
	err = models.DB.First(&user, uri.ID.UUID).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{Error: &s})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, UserEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{Error: &s})
		return
	}

	var data UserEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{Error: &s})
		return
	}

	err = models.DB.Model(&user).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), UserResponse{Error: &s})
		return
	}

	apiResource := newUser(c, user)
	c.JSON(http.StatusOK, UserResponse{Data: &apiResource})
}

// @Summary		Delete user
// @Description	Deletes a user
// @Tags			Users
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/users/{id} [delete]
func DeleteUser(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: httputil.ErrInvalidUUID.Error()})
		return
	}

	var user models.User
	err = models.DB.First(&user, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&user).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
