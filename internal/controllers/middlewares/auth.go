package middlewares

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mayaramilanesi/url-shortener-api/internal/tokens"
)

// CurrentUserIDKey ключ контекста gin с идентификатором пользователя.
// CurrentUserEmailKey ключ контекста gin с email пользователя.
const (
	CurrentUserIDKey    = "currentUserID"
	CurrentUserEmailKey = "currentUserEmail"
)

// Auth требует валидный bearer токен. Без него запрос обрывается с 401.
func Auth(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.Request)
		if !ok {
			abortUnauthorized(c, "Authentication required")
			return
		}
		claims, err := tokens.ValidateAccessToken(tokenString, jwtSecret)
		if err != nil {
			_ = c.Error(err)
			abortUnauthorized(c, "Invalid or expired token")
			return
		}
		setCurrentUser(c, claims)
		c.Next()
	}
}

// OptionalAuth привязывает пользователя к запросу если токен передан.
// Без заголовка запрос идет дальше анонимным, но переданный невалидный
// токен все равно обрывается с 401.
func OptionalAuth(jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c.Request)
		if !ok {
			c.Next()
			return
		}
		claims, err := tokens.ValidateAccessToken(tokenString, jwtSecret)
		if err != nil {
			_ = c.Error(err)
			abortUnauthorized(c, "Invalid or expired token")
			return
		}
		setCurrentUser(c, claims)
		c.Next()
	}
}

func bearerToken(r *http.Request) (string, bool) {
	split := strings.Split(r.Header.Get("Authorization"), " ")
	if len(split) != 2 || split[0] != "Bearer" || split[1] == "" {
		return "", false
	}
	return split[1], true
}

func setCurrentUser(c *gin.Context, claims *tokens.AccessClaims) {
	c.Set(CurrentUserIDKey, claims.UserID())
	c.Set(CurrentUserEmailKey, claims.Email)
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"statusCode": http.StatusUnauthorized,
		"message":    message,
		"error":      http.StatusText(http.StatusUnauthorized),
	})
}
