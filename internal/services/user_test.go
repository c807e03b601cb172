package services

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/mayaramilanesi/url-shortener-api/internal/db"
	"github.com/mayaramilanesi/url-shortener-api/internal/repositories/memstore"
)

type UserServiceSuite struct {
	suite.Suite
	service *UserService
}

func (s *UserServiceSuite) SetupTest() {
	s.service = NewUserService(memstore.NewUserRepo(db.NewMemStorage()))
}

func (s *UserServiceSuite) TestRegister() {
	user, err := s.service.Register(context.Background(), "a@b.com", "secret1")
	s.Require().NoError(err)

	s.NotEmpty(user.ID)
	s.Equal("a@b.com", user.Email)
	s.NotEqual("secret1", user.PasswordHash)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")))
}

func (s *UserServiceSuite) TestRegister_DuplicateEmail() {
	_, err := s.service.Register(context.Background(), "a@b.com", "secret1")
	s.Require().NoError(err)

	// Занятый email дает конфликт независимо от пароля.
	_, dupErr := s.service.Register(context.Background(), "a@b.com", "another-pass")
	s.Require().Error(dupErr)
	s.True(errors.Is(dupErr, ErrDuplicateKey))
}

func (s *UserServiceSuite) TestAuthenticate() {
	registered, err := s.service.Register(context.Background(), "a@b.com", "secret1")
	s.Require().NoError(err)

	user, authErr := s.service.Authenticate(context.Background(), "a@b.com", "secret1")
	s.Require().NoError(authErr)
	s.Equal(registered.ID, user.ID)
}

// TestAuthenticate_FailuresIndistinguishable неверный пароль и неизвестный
// email должны давать одну и ту же ошибку.
func (s *UserServiceSuite) TestAuthenticate_FailuresIndistinguishable() {
	_, err := s.service.Register(context.Background(), "a@b.com", "secret1")
	s.Require().NoError(err)

	_, badPassErr := s.service.Authenticate(context.Background(), "a@b.com", "wrong-pass")
	_, noUserErr := s.service.Authenticate(context.Background(), "nobody@b.com", "secret1")

	s.Require().Error(badPassErr)
	s.Require().Error(noUserErr)
	s.Equal(badPassErr, noUserErr)
	s.True(errors.Is(badPassErr, ErrInvalidCredentials))
}

// Email хранится как есть, сравнение регистрозависимое.
func (s *UserServiceSuite) TestAuthenticate_CaseSensitiveEmail() {
	_, err := s.service.Register(context.Background(), "a@b.com", "secret1")
	s.Require().NoError(err)

	_, authErr := s.service.Authenticate(context.Background(), "A@B.com", "secret1")
	s.Require().Error(authErr)
	s.True(errors.Is(authErr, ErrInvalidCredentials))
}

func TestUserServiceSuite(t *testing.T) {
	suite.Run(t, new(UserServiceSuite))
}
