package services

import (
	"context"

	"github.com/mayaramilanesi/url-shortener-api/internal/models"
	"github.com/mayaramilanesi/url-shortener-api/internal/repositories"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost стоимость хеширования пароля.
const bcryptCost = 10

// UserService сервис работает с хранилищем в контексте пользователей.
type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register создает пользователя. Уникальность email обеспечивает хранилище,
// занятый email возвращается как ErrDuplicateKey.
func (s *UserService) Register(ctx context.Context, email string, password string) (*models.User, error) {
	hash, hashErr := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if hashErr != nil {
		return nil, ErrUnknown
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
	}
	if createErr := s.repo.Create(ctx, &user); createErr != nil {
		if errors.Is(createErr, repositories.ErrDuplicateKey) {
			return nil, errors.Wrapf(ErrDuplicateKey, "email %s already taken", email)
		}
		return nil, ErrUnknown
	}
	return &user, nil
}

// Authenticate проверяет пару email/пароль. Неизвестный email и неверный
// пароль неразличимы в ответе - наружу всегда уходит ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, email string, password string) (*models.User, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, ErrUnknown
	}

	if cmpErr := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); cmpErr != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
