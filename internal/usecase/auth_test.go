//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"tavola-api/internal/domain/user"
	"tavola-api/internal/infra/memstore"
	"tavola-api/internal/pkg/jwt"
	"tavola-api/internal/usecase"

	"github.com/stretchr/testify/suite"
)

type AuthUseCaseTestSuite struct {
	suite.Suite
	store      *memstore.UserStore
	jwtService *jwt.Service
	uc         usecase.AuthUseCase
}

func TestAuthUseCaseSuite(t *testing.T) {
	suite.Run(t, new(AuthUseCaseTestSuite))
}

func (s *AuthUseCaseTestSuite) SetupTest() {
	s.store = memstore.NewUserStore()
	s.Require().NoError(s.store.Seed("admin@tavola.local", "correct-horse"))
	s.jwtService = jwt.NewService("test-secret", time.Hour)
	s.uc = usecase.NewAuthUseCase(s.store, s.jwtService)
}

func (s *AuthUseCaseTestSuite) credentials(email, pass string) user.Credentials {
	e, err := user.NewEmail(email)
	s.Require().NoError(err)
	p, err := user.NewPassword(pass)
	s.Require().NoError(err)
	return user.NewCredentials(e, p)
}

func (s *AuthUseCaseTestSuite) TestLogin() {
	s.Run("valid credentials return a usable token", func() {
		token, userRM, err := s.uc.Login(s.T().Context(), s.credentials("admin@tavola.local", "correct-horse"))
		s.Require().NoError(err)

		s.Equal("admin@tavola.local", userRM.Email)
		s.Equal(user.RoleAdmin.String(), userRM.Role)

		claims, err := s.jwtService.ValidateToken(token)
		s.Require().NoError(err)
		s.Equal(userRM.ID, claims.UserID)
		s.Equal(user.RoleAdmin.String(), claims.Role)
	})

	s.Run("login records the time", func() {
		_, userRM, err := s.uc.Login(s.T().Context(), s.credentials("admin@tavola.local", "correct-horse"))
		s.Require().NoError(err)

		current, err := s.uc.GetCurrentUser(s.T().Context(), userRM.ID)
		s.Require().NoError(err)
		s.NotNil(current.LastLogin)
	})

	s.Run("wrong password is rejected", func() {
		_, _, err := s.uc.Login(s.T().Context(), s.credentials("admin@tavola.local", "wrong-password"))
		s.ErrorIs(err, usecase.ErrInvalidCredentials)
	})

	s.Run("unknown email is rejected", func() {
		_, _, err := s.uc.Login(s.T().Context(), s.credentials("nobody@tavola.local", "correct-horse"))
		s.ErrorIs(err, usecase.ErrUserNotFound)
	})

	s.Run("empty seed password leaves no account", func() {
		empty := memstore.NewUserStore()
		s.Require().NoError(empty.Seed("admin@tavola.local", ""))
		uc := usecase.NewAuthUseCase(empty, s.jwtService)

		_, _, err := uc.Login(s.T().Context(), s.credentials("admin@tavola.local", "correct-horse"))
		s.ErrorIs(err, usecase.ErrUserNotFound)
	})
}

func (s *AuthUseCaseTestSuite) TestGetCurrentUser() {
	s.Run("returns the seeded account", func() {
		_, userRM, err := s.uc.Login(s.T().Context(), s.credentials("admin@tavola.local", "correct-horse"))
		s.Require().NoError(err)

		current, err := s.uc.GetCurrentUser(s.T().Context(), userRM.ID)
		s.Require().NoError(err)
		s.Equal(userRM.ID, current.ID)
	})
}
