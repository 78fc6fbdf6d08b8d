package api

import (
	"errors"
	"net/http"

	"goit/contacts-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserVerify exchanges a single-use verification token for the verified
// flag. Clearing the token makes the endpoint idempotent: a second call
// with the same token is a plain 404.
func (a *API) UserVerify(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	token := c.Param("verificationToken")

	var user model.User

	err := a.DB.Where("verification_token = ?", token).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"message": "User not found",
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Internal Server Error",
		})

		zap.L().Error("Failed to look up verification token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err = a.DB.Model(&user).
		Updates(map[string]any{
			"verify":             true,
			"verification_token": nil,
		}).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Internal Server Error",
		})

		zap.L().Error("Failed to mark user verified", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Verification successful",
	})
}
