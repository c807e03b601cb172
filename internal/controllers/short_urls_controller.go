package controllers

import (
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/mayaramilanesi/url-shortener-api/internal/controllers/middlewares"
	"github.com/mayaramilanesi/url-shortener-api/internal/models"
	"github.com/mayaramilanesi/url-shortener-api/internal/services"
)

type shortenRequest struct {
	URL string `json:"url"`
}

type shortenResponse struct {
	ShortURL string `json:"shortUrl"`
}

type updateURLRequest struct {
	TargetURL string `json:"targetUrl"`
}

// urlResponse тело ответа с данными короткой ссылки.
type urlResponse struct {
	ID         string    `json:"id"`
	Code       string    `json:"code"`
	TargetURL  string    `json:"targetUrl"`
	ClickCount uint64    `json:"clickCount"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
	OwnerID    *string   `json:"ownerId,omitempty"`
}

func newURLResponse(sURL *models.ShortURL) urlResponse {
	return urlResponse{
		ID:         sURL.ID,
		Code:       sURL.Code,
		TargetURL:  sURL.TargetURL,
		ClickCount: sURL.ClickCount,
		CreatedAt:  sURL.CreatedAt,
		UpdatedAt:  sURL.UpdatedAt,
		OwnerID:    sURL.OwnerID,
	}
}

// ShortURLController контроллер коротких ссылок.
type ShortURLController struct {
	urlService URLShortener
	baseURL    *url.URL
}

func NewShortURLController(urlService URLShortener, baseURL *url.URL) *ShortURLController {
	return &ShortURLController{
		urlService: urlService,
		baseURL:    baseURL,
	}
}

// Shorten обрабатывает POST /shorten запрос. Авторизация опциональна:
// с токеном ссылка привязывается к пользователю, без токена создается анонимной.
func (c *ShortURLController) Shorten(ctx *gin.Context) {
	var req shortenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		renderError(ctx, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	parsedURL, parseErr := validateURL(req.URL)
	if parseErr != nil {
		renderError(ctx, http.StatusBadRequest, MsgInvalidURL)
		return
	}

	var ownerID *string
	if id := ctx.GetString(middlewares.CurrentUserIDKey); id != "" {
		ownerID = &id
	}

	sURL, createErr := c.urlService.Create(ctx, parsedURL.String(), ownerID)
	if createErr != nil {
		_ = ctx.Error(createErr)
		renderError(ctx, http.StatusInternalServerError, MsgInternal)
		return
	}

	ctx.JSON(http.StatusCreated, shortenResponse{
		ShortURL: c.getShortURL(ctx.Request, sURL.Code),
	})
}

// Redirect обрабатывает GET /:code запрос. Успешное разрешение кода
// засчитывает переход.
func (c *ShortURLController) Redirect(ctx *gin.Context) {
	code := ctx.Param("code")

	if len(code) != models.CodeLength {
		renderError(ctx, http.StatusNotFound, MsgURLNotFound)
		return
	}

	sURL, err := c.urlService.ResolveAndCount(ctx, code)
	if err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			renderError(ctx, http.StatusNotFound, MsgURLNotFound)
			return
		}
		_ = ctx.Error(err)
		renderError(ctx, http.StatusInternalServerError, MsgInternal)
		return
	}

	ctx.Redirect(http.StatusFound, sURL.TargetURL)
}

// List обрабатывает GET /urls запрос. Возвращает живые ссылки
// аутентифицированного пользователя, новые в начале.
func (c *ShortURLController) List(ctx *gin.Context) {
	ownerID := ctx.GetString(middlewares.CurrentUserIDKey)

	sURLs, err := c.urlService.ListByOwner(ctx, ownerID)
	if err != nil {
		_ = ctx.Error(err)
		renderError(ctx, http.StatusInternalServerError, MsgInternal)
		return
	}

	resp := make([]urlResponse, 0, len(sURLs))
	for i := range sURLs {
		resp = append(resp, newURLResponse(&sURLs[i]))
	}
	ctx.JSON(http.StatusOK, resp)
}

// Update обрабатывает PATCH /urls/:id запрос. Чужая, удаленная и
// несуществующая записи дают одинаковый 404.
func (c *ShortURLController) Update(ctx *gin.Context) {
	var req updateURLRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		renderError(ctx, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	parsedURL, parseErr := validateURL(req.TargetURL)
	if parseErr != nil {
		renderError(ctx, http.StatusBadRequest, MsgInvalidURL)
		return
	}

	ownerID := ctx.GetString(middlewares.CurrentUserIDKey)
	sURL, err := c.urlService.UpdateTarget(ctx, ctx.Param("id"), ownerID, parsedURL.String())
	if err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			renderError(ctx, http.StatusNotFound, MsgURLNotFound)
			return
		}
		_ = ctx.Error(err)
		renderError(ctx, http.StatusInternalServerError, MsgInternal)
		return
	}
	ctx.JSON(http.StatusOK, newURLResponse(sURL))
}

// Delete обрабатывает DELETE /urls/:id запрос. Семантика ошибок
// идентична Update.
func (c *ShortURLController) Delete(ctx *gin.Context) {
	ownerID := ctx.GetString(middlewares.CurrentUserIDKey)

	if err := c.urlService.SoftDelete(ctx, ctx.Param("id"), ownerID); err != nil {
		if errors.Is(err, services.ErrRecordNotFound) {
			renderError(ctx, http.StatusNotFound, MsgURLNotFound)
			return
		}
		_ = ctx.Error(err)
		renderError(ctx, http.StatusInternalServerError, MsgInternal)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "URL deleted"})
}

// getShortURL вспомогательный метод который создает короткую ссылку.
func (c *ShortURLController) getShortURL(r *http.Request, code string) string {
	var scheme = "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if c.baseURL == nil {
		return fmt.Sprintf("%s://%s/%s", scheme, r.Host, code)
	}
	return fmt.Sprintf("%s/%s", c.baseURL, code)
}
