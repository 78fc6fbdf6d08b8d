package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Heartbeat lets load balancers and uptime checks confirm the server is
// alive without touching the database.
func (a *API) Heartbeat(c *gin.Context) {
	c.Status(http.StatusOK)
}
