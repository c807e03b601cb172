package services

import "errors"

var (
	ErrUnknown            = errors.New("[service]: unknown error")
	ErrRecordNotFound     = errors.New("[service]: record not found")
	ErrDuplicateKey       = errors.New("[service]: duplicate key")
	ErrInvalidCredentials = errors.New("[service]: invalid credentials")
	// ErrCodeExhausted исчерпан лимит попыток генерации уникального кода.
	ErrCodeExhausted = errors.New("[service]: short code generation attempts exhausted")
)
