package api

import (
	"errors"
	"net/http"

	"goit/contacts-api/internal/model"

	"github.com/gin-gonic/gin"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type resendBody struct {
	Email string `json:"email"`
}

// UserResendVerification re-sends the verification email for a user who
// hasn't verified yet, reusing the stored token so earlier emails stay
// valid.
func (a *API) UserResendVerification(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data resendBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Malformed or invalid JSON request body",
		})
		return
	}

	if data.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "missing required field email",
		})
		return
	}

	var user model.User

	err := a.DB.Where("email = ?", data.Email).First(&user).Error
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

		zap.L().Error("Failed to fetch user by email", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if user.Verify {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Verification has already been passed",
		})
		return
	}

	token := user.VerificationToken
	if token == nil || *token == "" {
		// Shouldn't happen for an unverified user, regenerate to recover
		fresh, err := gonanoid.New(32)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Internal Server Error",
			})

			zap.L().Error("Failed to generate verification token", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		err = a.DB.Model(&user).Update("verification_token", fresh).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Internal Server Error",
			})

			zap.L().Error("Failed to persist verification token", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		token = &fresh
	}

	verifToken := *token

	go func() {
		if err := a.Mail.SendVerification(user.Email, verifToken); err != nil {
			zap.L().Error("Failed to send verification email", zap.Error(err), zap.String("requestID", requestID))
		}
	}()

	c.JSON(http.StatusOK, gin.H{
		"message": "Verification email sent",
	})
}
