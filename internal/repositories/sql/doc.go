// Package sql предоставляет реализацию репозиториев поверх gorm.
//
// Все методы репозиториев преобразуют ошибки драйвера в общие ошибки
// уровня репозитория с помощью convertErrorType:
//   - gorm.ErrDuplicatedKey -> repositories.ErrDuplicateKey
//   - gorm.ErrRecordNotFound -> repositories.ErrNotFound
//   - другие ошибки -> repositories.ErrUnknown
package sql
