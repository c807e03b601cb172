package services

import (
	"context"

	"github.com/mayaramilanesi/url-shortener-api/internal/models"
	"github.com/mayaramilanesi/url-shortener-api/internal/repositories"
	"github.com/pkg/errors"
)

// ShortURLService сервис работает с хранилищем в контексте коротких ссылок.
type ShortURLService struct {
	repo ShortURLRepository
	gen  *CodeGenerator
}

func NewShortURLService(repo ShortURLRepository, gen *CodeGenerator) *ShortURLService {
	return &ShortURLService{repo: repo, gen: gen}
}

// Create генерирует уникальный код и создает запись. Две конкурирующие
// генерации могут пройти проверку уникальности с одним и тем же кодом -
// последней инстанцией служит уникальный индекс хранилища: на ошибке
// дубликата код генерируется заново в рамках общего лимита попыток.
func (s *ShortURLService) Create(ctx context.Context, targetURL string, ownerID *string) (*models.ShortURL, error) {
	for range s.gen.maxAttempts {
		code, genErr := s.gen.Generate(ctx)
		if genErr != nil {
			if errors.Is(genErr, ErrCodeExhausted) {
				return nil, genErr
			}
			return nil, ErrUnknown
		}

		sURL := models.ShortURL{
			Code:      code,
			TargetURL: targetURL,
			OwnerID:   ownerID,
		}
		if createErr := s.repo.Create(ctx, &sURL); createErr != nil {
			if errors.Is(createErr, repositories.ErrDuplicateKey) {
				// Проиграли гонку за код, пробуем заново.
				continue
			}
			return nil, ErrUnknown
		}
		return &sURL, nil
	}
	return nil, errors.Wrapf(ErrCodeExhausted, "after %d attempts", s.gen.maxAttempts)
}

// ResolveAndCount находит живую запись по коду и засчитывает переход.
// Инкремент счетчика без транзакции: при конкурирующих редиректах часть
// инкрементов может потеряться, счетчик приблизительный.
func (s *ShortURLService) ResolveAndCount(ctx context.Context, code string) (*models.ShortURL, error) {
	sURL, err := s.repo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errors.Wrapf(ErrRecordNotFound, "code %s not found", code)
		}
		return nil, ErrUnknown
	}

	sURL.ClickCount++
	if saveErr := s.repo.Save(ctx, sURL); saveErr != nil {
		return nil, ErrUnknown
	}
	return sURL, nil
}

// ListByOwner возвращает живые ссылки владельца, новые в начале.
func (s *ShortURLService) ListByOwner(ctx context.Context, ownerID string) ([]models.ShortURL, error) {
	sURLs, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, ErrUnknown
	}
	return sURLs, nil
}

// UpdateTarget заменяет целевой URL записи владельца. Несуществующая,
// удаленная и чужая записи неразличимы в ответе - наружу всегда уходит
// ErrRecordNotFound, чтобы не раскрывать существование чужих ссылок.
func (s *ShortURLService) UpdateTarget(ctx context.Context, id string, ownerID string, targetURL string) (*models.ShortURL, error) {
	sURL, err := s.findOwned(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	sURL.TargetURL = targetURL
	if saveErr := s.repo.Save(ctx, sURL); saveErr != nil {
		return nil, ErrUnknown
	}
	return sURL, nil
}

// SoftDelete помечает запись владельца удаленной. Семантика ошибок
// идентична UpdateTarget.
func (s *ShortURLService) SoftDelete(ctx context.Context, id string, ownerID string) error {
	sURL, err := s.findOwned(ctx, id, ownerID)
	if err != nil {
		return err
	}

	if delErr := s.repo.Delete(ctx, sURL); delErr != nil {
		return ErrUnknown
	}
	return nil
}

func (s *ShortURLService) findOwned(ctx context.Context, id string, ownerID string) (*models.ShortURL, error) {
	sURL, err := s.repo.GetByIDAndOwner(ctx, id, ownerID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, errors.Wrapf(ErrRecordNotFound, "id %s not found", id)
		}
		return nil, ErrUnknown
	}
	return sURL, nil
}
