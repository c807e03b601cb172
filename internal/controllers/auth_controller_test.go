package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mayaramilanesi/url-shortener-api/internal/models"
	"github.com/mayaramilanesi/url-shortener-api/internal/services"
	"github.com/mayaramilanesi/url-shortener-api/internal/services/smocks"
	"github.com/mayaramilanesi/url-shortener-api/internal/tokens"
)

type AuthControllerSuite struct {
	suite.Suite
	userServMock *smocks.UserMock
	router       *gin.Engine
}

func (s *AuthControllerSuite) SetupTest() {
	s.userServMock = new(smocks.UserMock)
	s.router, _ = newTestRouter(new(smocks.URLMock), s.userServMock)
}

func (s *AuthControllerSuite) makeRequest(path, body string) *http.Response {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w.Result()
}

func (s *AuthControllerSuite) decodeToken(res *http.Response) *tokens.AccessClaims {
	var resp authResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&resp))
	s.Require().NotEmpty(resp.AccessToken)

	claims, err := tokens.ValidateAccessToken(resp.AccessToken, []byte(testJWTSecret))
	s.Require().NoError(err)
	return claims
}

func (s *AuthControllerSuite) TestSignup() {
	s.userServMock.On("Register", mock.Anything, "a@b.com", "secret1").
		Return(&models.User{ID: "user-1", Email: "a@b.com"}, nil)

	res := s.makeRequest("/auth/signup", `{"email": "a@b.com", "password": "secret1"}`)
	defer res.Body.Close()

	s.Equal(http.StatusCreated, res.StatusCode)

	claims := s.decodeToken(res)
	s.Equal("user-1", claims.UserID())
	s.Equal("a@b.com", claims.Email)
}

func (s *AuthControllerSuite) TestSignup_DuplicateEmail() {
	s.userServMock.On("Register", mock.Anything, "a@b.com", "secret1").
		Return(nil, services.ErrDuplicateKey)

	res := s.makeRequest("/auth/signup", `{"email": "a@b.com", "password": "secret1"}`)
	defer res.Body.Close()

	s.Equal(http.StatusConflict, res.StatusCode)

	var resp ErrorResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&resp))
	s.Equal(MsgEmailTaken, resp.Message)
}

func (s *AuthControllerSuite) TestSignup_BadPayload() {
	tests := []struct {
		name string
		body string
	}{
		{name: "invalid email", body: `{"email": "not-an-email", "password": "secret1"}`},
		{name: "short password", body: `{"email": "a@b.com", "password": "12345"}`},
		{name: "not json", body: `email=a@b.com`},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			res := s.makeRequest("/auth/signup", tt.body)
			defer res.Body.Close()

			s.Equal(http.StatusBadRequest, res.StatusCode)
		})
	}
	s.userServMock.AssertNumberOfCalls(s.T(), "Register", 0)
}

func (s *AuthControllerSuite) TestLogin() {
	s.userServMock.On("Authenticate", mock.Anything, "a@b.com", "secret1").
		Return(&models.User{ID: "user-1", Email: "a@b.com"}, nil)

	res := s.makeRequest("/auth/login", `{"email": "a@b.com", "password": "secret1"}`)
	defer res.Body.Close()

	s.Equal(http.StatusOK, res.StatusCode)

	claims := s.decodeToken(res)
	s.Equal("user-1", claims.UserID())
}

func (s *AuthControllerSuite) TestLogin_InvalidCredentials() {
	s.userServMock.On("Authenticate", mock.Anything, "a@b.com", "wrong-1").
		Return(nil, services.ErrInvalidCredentials)

	res := s.makeRequest("/auth/login", `{"email": "a@b.com", "password": "wrong-1"}`)
	defer res.Body.Close()

	s.Equal(http.StatusUnauthorized, res.StatusCode)

	var resp ErrorResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&resp))
	s.Equal(MsgInvalidCredentials, resp.Message)
}

func TestAuthControllerSuite(t *testing.T) {
	suite.Run(t, new(AuthControllerSuite))
}
