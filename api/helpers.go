package api

import (
	"errors"
	"net/http"
	"strconv"

	"goit/contacts-api/internal/model"
	"goit/contacts-api/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// currentUser returns the user the auth middleware resolved for this
// request. Only valid on routes behind the auth middleware.
func currentUser(c *gin.Context) *model.User {
	return c.MustGet(middleware.UserKey).(*model.User)
}

// fetchContact loads the contact addressed by the :id route param. On a
// miss (or a non-numeric id) it writes the 404 itself, on a store failure
// the 500, and reports through ok whether the handler should continue.
func (a *API) fetchContact(c *gin.Context, notFoundMsg string) (contact *model.Contact, ok bool) {
	requestID := c.MustGet("requestID").(string)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"message": notFoundMsg,
		})
		return nil, false
	}

	contact = &model.Contact{}

	err = a.DB.First(contact, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"message": notFoundMsg,
			})
			return nil, false
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Internal Server Error",
		})

		zap.L().Error("Failed to fetch contact", zap.Error(err), zap.String("requestID", requestID))
		return nil, false
	}

	return contact, true
}
