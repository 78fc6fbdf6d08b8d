package api

import (
	"net/http"

	"goit/contacts-api/internal/model"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserLogout clears the stored session token, immediately invalidating
// every token issued to this user. The window between the middleware's
// lookup and this update is unsynchronized on purpose: if the row is gone
// by now the stale state is reported, not retried.
func (a *API) UserLogout(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)
	user := currentUser(c)

	r := a.DB.Model(model.User{}).
		Where("id = ?", user.ID).
		Update("token", nil)
	if r.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Internal Server Error",
		})

		zap.L().Error("Failed to clear session token", zap.Error(r.Error), zap.String("requestID", requestID))
		return
	}

	if r.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "User not found",
		})
		return
	}

	c.Status(http.StatusNoContent)
}
