package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Success bool         `json:"success"`
	Code    string       `json:"error_code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// Validation renders a binding error as 400 with per-field messages.
func Validation(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, HTTPError{
		Code:    "validation_error",
		Message: "Dados inválidos.",
		Errors:  FieldErrors(err),
	})
}
