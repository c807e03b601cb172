package memory

import "errors"

// Ошибки уровня kv-хранилища. Слой репозиториев конвертирует их
// в свои sentinel ошибки.
var (
	ErrNotFound     = errors.New("key not found")
	ErrDuplicateKey = errors.New("key already exists")
)
