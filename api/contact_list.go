package api

import (
	"net/http"

	"goit/contacts-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactList returns every contact in the collection. The collection is
// global, there is no per-user scoping.
func (a *API) ContactList(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	contacts := []model.Contact{}

	err := a.DB.Order("id").Find(&contacts).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Internal Server Error",
		})

		zap.L().Error("Failed to list contacts", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, contacts)
}
