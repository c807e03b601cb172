package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/mayaramilanesi/url-shortener-api/internal/config"
	"github.com/mayaramilanesi/url-shortener-api/internal/controllers/middlewares"
)

// RouterParams зависимости роутера.
type RouterParams struct {
	URLService  URLShortener
	UserService Accounts
	AppConf     *config.Config
	Logger      *logrus.Logger
}

func SetupRouter(params RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware(params.Logger))
	r.Use(middlewares.GzipMiddleware())

	jwtSecret := []byte(params.AppConf.JWTSecret)

	healthController := NewHealthController()
	authController := NewAuthController(params.UserService, jwtSecret)
	shortURLController := NewShortURLController(params.URLService, params.AppConf.BaseURL)

	r.GET("/", healthController.Index)
	r.GET("/:code", shortURLController.Redirect)

	auth := r.Group("/auth")
	auth.POST("/signup", authController.Signup)
	auth.POST("/login", authController.Login)

	r.POST("/shorten", middlewares.OptionalAuth(jwtSecret), shortURLController.Shorten)

	urls := r.Group("/urls", middlewares.Auth(jwtSecret))
	urls.GET("", shortURLController.List)
	urls.PATCH("/:id", shortURLController.Update)
	urls.DELETE("/:id", shortURLController.Delete)

	return r
}
