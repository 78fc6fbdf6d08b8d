package api

import (
	"net/http"

	"goit/contacts-api/validators"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContactUpdate partially updates a contact: only the fields present in
// the body are validated and written, everything else stays untouched.
func (a *API) ContactUpdate(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data validators.UpdateContactInput
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Malformed or invalid JSON request body",
		})
		return
	}

	if data.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Body must have at least one field",
		})
		return
	}

	if err := validators.ContactValidator(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": err.Error(),
		})
		return
	}

	contact, ok := a.fetchContact(c, "Not found")
	if !ok {
		return
	}

	updates := map[string]any{}
	if data.Name != nil {
		updates["name"] = *data.Name
	}
	if data.Email != nil {
		updates["email"] = *data.Email
	}
	if data.Phone != nil {
		updates["phone"] = *data.Phone
	}
	if data.Favorite != nil {
		updates["favorite"] = *data.Favorite
	}

	if err := a.DB.Model(contact).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Internal Server Error",
		})

		zap.L().Error("Failed to update contact", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.JSON(http.StatusOK, contact)
}
