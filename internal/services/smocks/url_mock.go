package smocks

import (
	"context"

	"github.com/mayaramilanesi/url-shortener-api/internal/models"
	"github.com/stretchr/testify/mock"
)

type URLMock struct {
	mock.Mock
}

func (u *URLMock) Create(ctx context.Context, targetURL string, ownerID *string) (*models.ShortURL, error) {
	args := u.Called(ctx, targetURL, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.ShortURL), args.Error(1) //nolint:wrapcheck,errcheck
}

func (u *URLMock) ResolveAndCount(ctx context.Context, code string) (*models.ShortURL, error) {
	args := u.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.ShortURL), args.Error(1) //nolint:wrapcheck,errcheck
}

func (u *URLMock) ListByOwner(ctx context.Context, ownerID string) ([]models.ShortURL, error) {
	args := u.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).([]models.ShortURL), args.Error(1) //nolint:wrapcheck,errcheck
}

func (u *URLMock) UpdateTarget(ctx context.Context, id string, ownerID string, targetURL string) (*models.ShortURL, error) {
	args := u.Called(ctx, id, ownerID, targetURL)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.ShortURL), args.Error(1) //nolint:wrapcheck,errcheck
}

func (u *URLMock) SoftDelete(ctx context.Context, id string, ownerID string) error {
	args := u.Called(ctx, id, ownerID)
	return args.Error(0) //nolint:wrapcheck
}
