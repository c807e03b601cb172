package tokens

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// AccessClaims представляет данные access токена пользователя.
// Идентификатор пользователя лежит в стандартном клейме Subject.
type AccessClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// UserID возвращает идентификатор пользователя из токена.
func (c *AccessClaims) UserID() string {
	return c.Subject
}

// GenerateAccessToken создает access токен пользователя.
//
// Параметры:
//   - userID: идентификатор пользователя
//   - email: email пользователя
//   - expire: срок действия токена
//   - key: ключ для подписи токена
//
// Возвращает:
//   - string: сгенерированный JWT токен
//   - error: ошибка генерации токена
func GenerateAccessToken(userID string, email string, expire time.Duration, key []byte) (string, error) {
	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		Email: email,
	}
	token, err := generateJWT(claims, key)
	if err != nil {
		return "", fmt.Errorf("generating access jwt token: %w", err)
	}
	return token, nil
}

// ValidateAccessToken проверяет access токен пользователя.
//
// Параметры:
//   - tokenString: JWT токен в виде строки
//   - key: ключ для проверки подписи
//
// Возвращает:
//   - *AccessClaims: данные токена
//   - error: ошибка проверки (ErrTokenExpired если истек срок действия)
func ValidateAccessToken(tokenString string, key []byte) (*AccessClaims, error) {
	token, err := validateJWT(tokenString, new(AccessClaims), key)
	if err != nil {
		return nil, fmt.Errorf("validating access jwt token: %w", err)
	}

	claims, ok := token.Claims.(*AccessClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid claims")
	}
	if claims.Subject == "" {
		return nil, errors.New("blank subject claim")
	}
	return claims, nil
}

func generateJWT(claims jwt.Claims, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating jwt token: %w", err)
	}
	return tokenString, nil
}

func validateJWT(tokenString string, claims jwt.Claims, key []byte) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return key, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("parsing jwt token: %w", err)
	}

	if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, errors.New("unexpected signing method")
	}

	return token, nil
}
