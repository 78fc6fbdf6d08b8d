package api

import (
	"errors"
	"net/http"

	"goit/contacts-api/internal/model"
	"goit/contacts-api/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// wrongCredentials is deliberately the same for an unknown email and a
// wrong password so the response doesn't leak which one failed.
const wrongCredentials = "Email or password is wrong"

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (a *API) UserLogin(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data loginBody
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Malformed or invalid JSON request body",
		})
		return
	}

	if data.Email == "" || data.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Email and password are required",
		})
		return
	}

	var user model.User

	if err := a.DB.Where("email = ?", data.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": wrongCredentials,
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Internal Server Error",
		})

		zap.L().Error("Failed to fetch user by email", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !security.CheckPassword(data.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": wrongCredentials,
		})
		return
	}

	token, err := a.Tokens.Sign(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Internal Server Error",
		})

		zap.L().Error("Failed to sign session token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	// Persisting the token makes it the single live session: any token
	// issued before this point stops matching and is rejected
	if err := a.DB.Model(&user).Update("token", token).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Internal Server Error",
		})

		zap.L().Error("Failed to persist session token", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user.Public(),
	})
}
