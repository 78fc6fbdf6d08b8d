// Package middleware contains any custom middleware used in the app
package middleware

import (
	"errors"
	"net/http"
	"strings"

	"goit/contacts-api/internal/model"
	"goit/contacts-api/pkg/security"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserKey is the gin context key under which the resolved user is stored.
const UserKey = "user"

const notAuthorized = "Not authorized"

// NewAuthMiddleware authenticates a request with two composed checks:
// the bearer token must verify cryptographically AND it must literally
// equal the token stored on the user row. The second check is what makes
// logout effective, a signature can't be revoked but the stored value can
// be cleared, which invalidates every previously issued token at once.
//
// Every rejection is a uniform 401 so callers can't probe which of the
// checks failed.
func NewAuthMiddleware(d *gorm.DB, tokens *security.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetString("requestID")

		scheme, token, found := strings.Cut(c.GetHeader("Authorization"), " ")
		if !found || scheme != "Bearer" || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": notAuthorized,
			})
			return
		}

		userID, err := tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": notAuthorized,
			})
			return
		}

		var user model.User

		err = d.Where("id = ?", userID).First(&user).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"message": notAuthorized,
				})
				return
			}

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"message": "Internal Server Error",
			})

			zap.L().Error("Failed to look up user for auth", zap.Error(err), zap.String("requestID", requestID))
			return
		}

		if user.Token == nil || *user.Token == "" || *user.Token != token {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message": notAuthorized,
			})
			return
		}

		c.Set(UserKey, &user)
		c.Set("userID", user.ID)
		c.Next()
	}
}
