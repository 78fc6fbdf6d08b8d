package api

import (
	"errors"
	"net/http"

	"goit/contacts-api/internal/model"
	"goit/contacts-api/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserAvatar replaces the authenticated user's avatar with an uploaded
// image, resized to a fixed square. Authentication is handled entirely by
// the middleware, the handler trusts the user it resolved.
func (a *API) UserAvatar(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	user := currentUser(c)

	fh, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "No file uploaded",
		})
		return
	}

	url, err := a.Avatars.Process(c.Request.Context(), fh, user.ID)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedImage) {
			c.JSON(http.StatusBadRequest, gin.H{
				"message": err.Error(),
			})
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Internal Server Error",
		})

		zap.L().Error("Failed to process avatar", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	err = a.DB.Model(model.User{}).
		Where("id = ?", user.ID).
		Update("avatar_url", url).
		Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Internal Server Error",
		})

		zap.L().Error("Failed to persist avatar URL", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"avatarURL": url,
	})
}
