// Package healthz implements the health check endpoint.
package healthz

import (
	"net/http"

	"github.com/DevLoom-Space/Expense-Tracker/internal/httputil"
	"github.com/DevLoom-Space/Expense-Tracker/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the routes for the health check with
// the RouterGroup that is passed.
func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	response
// @Router			/healthz [get]
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}

	if err != nil {
		s := err.Error()
		c.JSON(http.StatusInternalServerError, response{Error: &s})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

type response struct {
	Error *string `json:"error" example:"database is closed"` // The error, if any occurred
}
