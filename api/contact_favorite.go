package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type favoriteBody struct {
	Favorite *bool `json:"favorite"`
}

// ContactFavorite flips only the favorite flag. It bypasses the contact
// schema on purpose, this endpoint is a narrow direct partial update.
func (a *API) ContactFavorite(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data favoriteBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Malformed or invalid JSON request body",
		})
		return
	}

	if data.Favorite == nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "missing field favorite",
		})
		return
	}

	contact, ok := a.fetchContact(c, "Contact not found")
	if !ok {
		return
	}

	if err := a.DB.Model(contact).Update("favorite", *data.Favorite).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Internal Server Error",
		})

		zap.L().Error("Failed to update favorite status", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, contact)
}
