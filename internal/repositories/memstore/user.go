package memstore

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mayaramilanesi/url-shortener-api/internal/db"
	"github.com/mayaramilanesi/url-shortener-api/internal/db/memory"
	"github.com/mayaramilanesi/url-shortener-api/internal/models"
	"github.com/mayaramilanesi/url-shortener-api/internal/repositories"
)

// UserRepo репозиторий пользователей в памяти.
type UserRepo struct {
	s *db.MemoryStorage
}

func NewUserRepo(store *db.MemoryStorage) *UserRepo {
	return &UserRepo{s: store}
}

func (r *UserRepo) Create(ctx context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := memory.Set[models.User](ctx, user.Email, user, r.s.Users); err != nil {
		return convertErrorType(err)
	}
	return nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := memory.Get[models.User](ctx, email, r.s.Users)
	if err != nil {
		return nil, convertErrorType(err)
	}
	if user.DeletedAt.Valid {
		return nil, repositories.ErrNotFound
	}
	return user, nil
}
