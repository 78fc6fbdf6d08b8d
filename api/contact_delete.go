package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactDelete removes a contact and returns the removed record.
func (a *API) ContactDelete(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	contact, ok := a.fetchContact(c, "Not found")
	if !ok {
		return
	}

	if err := a.DB.Delete(contact).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Internal Server Error",
		})

		zap.L().Error("Failed to delete contact", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, contact)
}
