package memstore

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/mayaramilanesi/url-shortener-api/internal/db"
	"github.com/mayaramilanesi/url-shortener-api/internal/db/memory"
	"github.com/mayaramilanesi/url-shortener-api/internal/models"
	"github.com/mayaramilanesi/url-shortener-api/internal/repositories"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ShortURLRepo репозиторий коротких ссылок в памяти.
type ShortURLRepo struct {
	s *db.MemoryStorage
}

func NewShortURLRepo(store *db.MemoryStorage) *ShortURLRepo {
	return &ShortURLRepo{s: store}
}

// Create создает новую запись. Первичный ключ и таймстемпы выставляются
// здесь же - в sql реализации этим занимается gorm.
func (r *ShortURLRepo) Create(ctx context.Context, sURL *models.ShortURL) error {
	if sURL.ID == "" {
		sURL.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	sURL.CreatedAt = now
	sURL.UpdatedAt = now

	if err := memory.Set[models.ShortURL](ctx, sURL.Code, sURL, r.s.URLs); err != nil {
		return convertErrorType(err)
	}
	return nil
}

func (r *ShortURLRepo) GetByCode(ctx context.Context, code string) (*models.ShortURL, error) {
	sURL, err := memory.Get[models.ShortURL](ctx, code, r.s.URLs)
	if err != nil {
		return nil, convertErrorType(err)
	}
	if sURL.DeletedAt.Valid {
		return nil, repositories.ErrNotFound
	}
	return sURL, nil
}

// ExistsByCodeUnscoped проверяет занятость кода среди всех записей, включая
// мягко удаленные.
func (r *ShortURLRepo) ExistsByCodeUnscoped(ctx context.Context, code string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, repositories.ErrUnknown
	}
	return r.s.URLs.IsExist(code), nil
}

func (r *ShortURLRepo) GetByIDAndOwner(ctx context.Context, id string, ownerID string) (*models.ShortURL, error) {
	found, err := memory.FilterAll[models.ShortURL](ctx, r.s.URLs, func(val models.ShortURL) bool {
		if val.DeletedAt.Valid || val.OwnerID == nil {
			return false
		}
		return val.ID == id && *val.OwnerID == ownerID
	})
	if err != nil {
		return nil, convertErrorType(err)
	}
	if len(found) == 0 {
		return nil, repositories.ErrNotFound
	}
	return &found[0], nil
}

func (r *ShortURLRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.ShortURL, error) {
	found, err := memory.FilterAll[models.ShortURL](ctx, r.s.URLs, func(val models.ShortURL) bool {
		if val.DeletedAt.Valid || val.OwnerID == nil {
			return false
		}
		return *val.OwnerID == ownerID
	})
	if err != nil {
		return nil, convertErrorType(err)
	}
	// Новые записи в начале списка.
	slices.SortStableFunc(found, func(a, b models.ShortURL) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return found, nil
}

// Save перезаписывает существующую запись. Запись должна существовать,
// ключ (код) после создания не меняется.
func (r *ShortURLRepo) Save(ctx context.Context, sURL *models.ShortURL) error {
	if !r.s.URLs.IsExist(sURL.Code) {
		return repositories.ErrNotFound
	}
	sURL.UpdatedAt = time.Now().UTC()
	if err := memory.Put[models.ShortURL](ctx, sURL.Code, sURL, r.s.URLs); err != nil {
		return errors.Wrap(convertErrorType(err), "failed to save record")
	}
	return nil
}

// Delete помечает запись удаленной.
func (r *ShortURLRepo) Delete(ctx context.Context, sURL *models.ShortURL) error {
	sURL.DeletedAt = gorm.DeletedAt{Time: time.Now().UTC(), Valid: true}
	if err := memory.Put[models.ShortURL](ctx, sURL.Code, sURL, r.s.URLs); err != nil {
		return errors.Wrap(convertErrorType(err), "failed to delete record")
	}
	return nil
}
