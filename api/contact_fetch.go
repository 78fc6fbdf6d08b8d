package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) ContactFetch(c *gin.Context) {
	contact, ok := a.fetchContact(c, "Not found")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, contact)
}
