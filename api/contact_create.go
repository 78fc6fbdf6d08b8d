package api

import (
	"net/http"

	"goit/contacts-api/internal/model"
	"goit/contacts-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactCreate validates the submitted fields against the contact schema
// and persists a new contact. Validation runs before any store write, a
// rejected payload never leaves a partial record.
func (a *API) ContactCreate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data validators.CreateContactInput
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Malformed or invalid JSON request body",
		})
		return
	}

	if err := validators.ContactValidator(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": err.Error(),
		})
		return
	}

	contact := model.Contact{
		Name:  data.Name,
		Email: data.Email,
		Phone: data.Phone,
	}

	if err := a.DB.Create(&contact).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Internal Server Error",
		})

		zap.L().Error("Failed to create contact", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusCreated, contact)
}
