package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "URL Shortener API"
	serviceVersion = "1.0.0"
)

// HealthController контроллер для проверки работоспособности сервиса.
type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// Index обрабатывает GET / запрос.
func (c *HealthController) Index(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"message":   "Hello World!",
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   serviceName,
		"version":   serviceVersion,
	})
}
