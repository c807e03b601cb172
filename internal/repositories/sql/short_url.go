package sql

import (
	"context"

	"github.com/mayaramilanesi/url-shortener-api/internal/models"
	"github.com/mayaramilanesi/url-shortener-api/internal/repositories"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ShortURLRepo struct {
	db     *gorm.DB
	logger *logrus.Entry
}

func NewShortURLRepo(db *gorm.DB, logger *logrus.Logger) *ShortURLRepo {
	return &ShortURLRepo{
		db:     db,
		logger: logger.WithField("module", "repository/sql/short_url"),
	}
}

func (r *ShortURLRepo) Create(ctx context.Context, sURL *models.ShortURL) error {
	if err := r.db.WithContext(ctx).Create(sURL).Error; err != nil {
		convErr := convertErrorType(err)
		if !errors.Is(convErr, repositories.ErrDuplicateKey) {
			r.logger.WithError(err).Errorf("failed to create record %+v", *sURL)
		}
		return convErr
	}
	return nil
}

func (r *ShortURLRepo) GetByCode(ctx context.Context, code string) (*models.ShortURL, error) {
	var sURL models.ShortURL
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&sURL).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		r.logger.WithError(err).Errorf("failed to get record by code %s", code)
		return nil, repositories.ErrUnknown
	}
	return &sURL, nil
}

// ExistsByCodeUnscoped проверяет занятость кода среди всех записей, включая
// мягко удаленные. Код удаленной ссылки переиспользовать нельзя.
func (r *ShortURLRepo) ExistsByCodeUnscoped(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Unscoped().
		Model(&models.ShortURL{}).
		Where("code = ?", code).
		Count(&count).Error
	if err != nil {
		r.logger.WithError(err).Errorf("failed to count records by code %s", code)
		return false, repositories.ErrUnknown
	}
	return count > 0, nil
}

func (r *ShortURLRepo) GetByIDAndOwner(ctx context.Context, id string, ownerID string) (*models.ShortURL, error) {
	var sURL models.ShortURL
	err := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&sURL).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrNotFound
		}
		r.logger.WithError(err).Errorf("failed to get record by id %s", id)
		return nil, repositories.ErrUnknown
	}
	return &sURL, nil
}

func (r *ShortURLRepo) ListByOwner(ctx context.Context, ownerID string) ([]models.ShortURL, error) {
	var sURLs []models.ShortURL
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&sURLs).Error
	if err != nil {
		r.logger.WithError(err).Errorf("failed to list records by owner %s", ownerID)
		return nil, repositories.ErrUnknown
	}
	return sURLs, nil
}

// Save перезаписывает существующую запись целиком.
func (r *ShortURLRepo) Save(ctx context.Context, sURL *models.ShortURL) error {
	if err := r.db.WithContext(ctx).Save(sURL).Error; err != nil {
		r.logger.WithError(err).Errorf("failed to save record %+v", *sURL)
		return convertErrorType(err)
	}
	return nil
}

// Delete помечает запись удаленной (выставляет deleted_at).
func (r *ShortURLRepo) Delete(ctx context.Context, sURL *models.ShortURL) error {
	if err := r.db.WithContext(ctx).Delete(sURL).Error; err != nil {
		r.logger.WithError(err).Errorf("failed to delete record %+v", *sURL)
		return convertErrorType(err)
	}
	return nil
}
