//go:build unit

package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tavola-api/internal/domain/user"
	"tavola-api/internal/handler/api"
	resdto "tavola-api/internal/handler/dto/response"
	"tavola-api/internal/pkg/config"
	"tavola-api/internal/pkg/cookie"
	"tavola-api/internal/pkg/jwt"
	"tavola-api/internal/usecase"
	"tavola-api/internal/usecase/readmodel"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type stubAuthUseCase struct {
	loginFn       func(ctx context.Context, credentials user.Credentials) (string, *readmodel.AuthorizedUserRM, error)
	currentUserFn func(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error)
}

func (s *stubAuthUseCase) Login(ctx context.Context, credentials user.Credentials) (string, *readmodel.AuthorizedUserRM, error) {
	return s.loginFn(ctx, credentials)
}

func (s *stubAuthUseCase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	return s.currentUserFn(ctx, userID)
}

type AuthHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	stub   *stubAuthUseCase
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.stub = &stubAuthUseCase{}

	cfg := config.NewTestConfig()
	handler := api.NewAuthHandler(s.stub, jwt.NewService(cfg.JWT.Secret, time.Hour), cfg)

	s.router.POST("/api/auth/login", handler.Login)
	s.router.POST("/api/auth/logout", handler.Logout)
}

func (s *AuthHandlerTestSuite) performLogin(body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *AuthHandlerTestSuite) TestLogin() {
	adminRM := &readmodel.AuthorizedUserRM{
		ID:       uuid.New(),
		Email:    "admin@example.com",
		Role:     user.RoleAdmin.String(),
		IsActive: true,
	}

	s.Run("200 sets the session cookie and returns the token", func() {
		s.stub.loginFn = func(_ context.Context, credentials user.Credentials) (string, *readmodel.AuthorizedUserRM, error) {
			s.Equal("admin@example.com", credentials.Email().Value())
			return "issued-token", adminRM, nil
		}

		rec := s.performLogin(`{"email":"admin@example.com","password":"test-password"}`)

		s.Equal(http.StatusOK, rec.Code)

		var body resdto.LoginResponse
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
		s.Equal("issued-token", body.AccessToken)
		s.Equal(adminRM.Email, body.User.Email)

		cookies := rec.Result().Cookies()
		s.Require().NotEmpty(cookies)
		s.Equal(cookie.AccessTokenCookieName, cookies[0].Name)
		s.Equal("issued-token", cookies[0].Value)
		s.True(cookies[0].HttpOnly)
	})

	s.Run("401 on bad credentials", func() {
		s.stub.loginFn = func(context.Context, user.Credentials) (string, *readmodel.AuthorizedUserRM, error) {
			return "", nil, usecase.ErrInvalidCredentials
		}

		rec := s.performLogin(`{"email":"admin@example.com","password":"wrong-password"}`)
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("401 on unknown account", func() {
		s.stub.loginFn = func(context.Context, user.Credentials) (string, *readmodel.AuthorizedUserRM, error) {
			return "", nil, usecase.ErrUserNotFound
		}

		rec := s.performLogin(`{"email":"nobody@example.com","password":"test-password"}`)
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("400 on malformed email", func() {
		rec := s.performLogin(`{"email":"not-an-email","password":"test-password"}`)
		s.Equal(http.StatusBadRequest, rec.Code)
	})

	s.Run("400 on missing password", func() {
		rec := s.performLogin(`{"email":"admin@example.com"}`)
		s.Equal(http.StatusBadRequest, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("204 clears the session cookie", func() {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
		rec := httptest.NewRecorder()
		s.router.ServeHTTP(rec, req)

		s.Equal(http.StatusNoContent, rec.Code)

		cookies := rec.Result().Cookies()
		s.Require().NotEmpty(cookies)
		s.Equal(cookie.AccessTokenCookieName, cookies[0].Name)
		s.Empty(cookies[0].Value)
		s.Negative(cookies[0].MaxAge)
	})
}
