package services

import (
	"context"

	"github.com/mayaramilanesi/url-shortener-api/internal/models"
)

// URLShortener интерфейс сервиса коротких ссылок.
type URLShortener interface {
	Create(ctx context.Context, targetURL string, ownerID *string) (*models.ShortURL, error)
	ResolveAndCount(ctx context.Context, code string) (*models.ShortURL, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.ShortURL, error)
	UpdateTarget(ctx context.Context, id string, ownerID string, targetURL string) (*models.ShortURL, error)
	SoftDelete(ctx context.Context, id string, ownerID string) error
}

// Accounts интерфейс сервиса пользователей.
type Accounts interface {
	Register(ctx context.Context, email string, password string) (*models.User, error)
	Authenticate(ctx context.Context, email string, password string) (*models.User, error)
}
