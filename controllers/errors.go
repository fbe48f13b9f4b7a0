package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/pos-backend/services"
	"github.com/yeremiapane/pos-backend/utils"
)

// respondServiceError maps the service error taxonomy onto HTTP: validation
// failures become 400 with the message, anything else is a persistence
// failure and becomes a generic 500.
func respondServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		utils.RespondError(c, http.StatusBadRequest, validationErr.Message)
		return
	}
	utils.RespondInternalError(c, err)
}
