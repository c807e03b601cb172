package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/asaskevich/govalidator"
	"github.com/gin-gonic/gin"

	"github.com/mayaramilanesi/url-shortener-api/internal/services"
	"github.com/mayaramilanesi/url-shortener-api/internal/tokens"
)

const (
	// AccessTokenExpireDuration срок действия access токена.
	AccessTokenExpireDuration = 24 * time.Hour
	// minPasswordLength минимальная длина пароля при регистрации.
	minPasswordLength = 6
)

type authRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	AccessToken string `json:"accessToken"`
}

// AuthController контроллер регистрации и входа пользователей.
type AuthController struct {
	userService Accounts
	jwtSecret   []byte
}

func NewAuthController(userService Accounts, jwtSecret []byte) *AuthController {
	return &AuthController{
		userService: userService,
		jwtSecret:   jwtSecret,
	}
}

// Signup обрабатывает POST /auth/signup запрос.
// Создает пользователя и сразу выдает access токен.
func (c *AuthController) Signup(ctx *gin.Context) {
	req, ok := c.bindCredentials(ctx)
	if !ok {
		return
	}

	user, regErr := c.userService.Register(ctx, req.Email, req.Password)
	if regErr != nil {
		if errors.Is(regErr, services.ErrDuplicateKey) {
			renderError(ctx, http.StatusConflict, MsgEmailTaken)
			return
		}
		renderError(ctx, http.StatusInternalServerError, MsgInternal)
		return
	}

	token, tokenErr := tokens.GenerateAccessToken(user.ID, user.Email, AccessTokenExpireDuration, c.jwtSecret)
	if tokenErr != nil {
		_ = ctx.Error(tokenErr)
		renderError(ctx, http.StatusInternalServerError, MsgInternal)
		return
	}
	ctx.JSON(http.StatusCreated, authResponse{AccessToken: token})
}

// Login обрабатывает POST /auth/login запрос.
// Неизвестный email и неверный пароль дают одинаковый ответ.
func (c *AuthController) Login(ctx *gin.Context) {
	req, ok := c.bindCredentials(ctx)
	if !ok {
		return
	}

	user, authErr := c.userService.Authenticate(ctx, req.Email, req.Password)
	if authErr != nil {
		if errors.Is(authErr, services.ErrInvalidCredentials) {
			renderError(ctx, http.StatusUnauthorized, MsgInvalidCredentials)
			return
		}
		renderError(ctx, http.StatusInternalServerError, MsgInternal)
		return
	}

	token, tokenErr := tokens.GenerateAccessToken(user.ID, user.Email, AccessTokenExpireDuration, c.jwtSecret)
	if tokenErr != nil {
		_ = ctx.Error(tokenErr)
		renderError(ctx, http.StatusInternalServerError, MsgInternal)
		return
	}
	ctx.JSON(http.StatusOK, authResponse{AccessToken: token})
}

func (c *AuthController) bindCredentials(ctx *gin.Context) (*authRequest, bool) {
	var req authRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		renderError(ctx, http.StatusBadRequest, MsgInvalidBody)
		return nil, false
	}
	if !govalidator.IsEmail(req.Email) {
		renderError(ctx, http.StatusBadRequest, MsgInvalidEmail)
		return nil, false
	}
	if len(req.Password) < minPasswordLength {
		renderError(ctx, http.StatusBadRequest, MsgPasswordTooShort)
		return nil, false
	}
	return &req, true
}
