package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserCurrent returns the authenticated user's public profile. The
// middleware already resolved the user, no extra store access happens.
func (a *API) UserCurrent(c *gin.Context) {
	c.JSON(http.StatusOK, currentUser(c).Public())
}
