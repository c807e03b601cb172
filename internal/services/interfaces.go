package services

import (
	"context"

	"github.com/mayaramilanesi/url-shortener-api/internal/models"
)

// ShortURLRepository описывает репозиторий коротких ссылок.
type ShortURLRepository interface {
	// Create создает запись. При занятом коде возвращает repositories.ErrDuplicateKey.
	Create(ctx context.Context, sURL *models.ShortURL) error
	// GetByCode находит живую запись по коду.
	GetByCode(ctx context.Context, code string) (*models.ShortURL, error)
	// ExistsByCodeUnscoped проверяет занятость кода среди всех записей,
	// включая мягко удаленные.
	ExistsByCodeUnscoped(ctx context.Context, code string) (bool, error)
	// GetByIDAndOwner находит живую запись по паре id/владелец.
	GetByIDAndOwner(ctx context.Context, id string, ownerID string) (*models.ShortURL, error)
	// ListByOwner возвращает живые записи владельца, новые в начале.
	ListByOwner(ctx context.Context, ownerID string) ([]models.ShortURL, error)
	// Save перезаписывает существующую запись.
	Save(ctx context.Context, sURL *models.ShortURL) error
	// Delete помечает запись удаленной.
	Delete(ctx context.Context, sURL *models.ShortURL) error
}

// UserRepository описывает репозиторий пользователей.
type UserRepository interface {
	// Create создает пользователя. При занятом email возвращает repositories.ErrDuplicateKey.
	Create(ctx context.Context, user *models.User) error
	// GetByEmail находит живого пользователя по email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}
