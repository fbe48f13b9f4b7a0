package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondError writes the `{"error": ...}` failure body the POS clients expect.
func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Error: message})
}

// RespondInternalError logs the real error and hides it behind a generic body.
func RespondInternalError(c *gin.Context, err error) {
	ErrorLogger.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	RespondError(c, http.StatusInternalServerError, "Internal server error!")
}
