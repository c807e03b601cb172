package smocks

import (
	"context"

	"github.com/mayaramilanesi/url-shortener-api/internal/models"
	"github.com/stretchr/testify/mock"
)

type UserMock struct {
	mock.Mock
}

func (u *UserMock) Register(ctx context.Context, email string, password string) (*models.User, error) {
	args := u.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.User), args.Error(1) //nolint:wrapcheck,errcheck
}

func (u *UserMock) Authenticate(ctx context.Context, email string, password string) (*models.User, error) {
	args := u.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1) //nolint:wrapcheck,errcheck
	}
	return args.Get(0).(*models.User), args.Error(1) //nolint:wrapcheck,errcheck
}
