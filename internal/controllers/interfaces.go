package controllers

import (
	"context"

	"github.com/mayaramilanesi/url-shortener-api/internal/models"
)

// URLShortener операции сервиса коротких ссылок, нужные контроллерам.
type URLShortener interface {
	Create(ctx context.Context, targetURL string, ownerID *string) (*models.ShortURL, error)
	ResolveAndCount(ctx context.Context, code string) (*models.ShortURL, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.ShortURL, error)
	UpdateTarget(ctx context.Context, id string, ownerID string, targetURL string) (*models.ShortURL, error)
	SoftDelete(ctx context.Context, id string, ownerID string) error
}

// Accounts операции сервиса пользователей, нужные контроллерам.
type Accounts interface {
	Register(ctx context.Context, email string, password string) (*models.User, error)
	Authenticate(ctx context.Context, email string, password string) (*models.User, error)
}
