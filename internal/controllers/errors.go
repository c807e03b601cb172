package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse тело ответа для всех ошибок HTTP слоя.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Error      string `json:"error"`
}

// Сообщения ошибок.
const (
	MsgInvalidBody        = "Invalid request body"
	MsgInvalidURL         = "Invalid URL"
	MsgInvalidEmail       = "Invalid email"
	MsgPasswordTooShort   = "Password must be at least 6 characters"
	MsgEmailTaken         = "Email already in use"
	MsgInvalidCredentials = "Invalid credentials"
	MsgURLNotFound        = "URL not found"
	MsgInternal           = "Internal server error"
)

// renderError отправляет ошибку единым JSON конвертом. Метка ошибки
// выводится из статуса.
func renderError(ctx *gin.Context, statusCode int, message string) {
	ctx.AbortWithStatusJSON(statusCode, ErrorResponse{
		StatusCode: statusCode,
		Message:    message,
		Error:      http.StatusText(statusCode),
	})
}
