package memstore

import (
	"context"
	"sync"
	"time"

	"tavola-api/internal/domain/user"
	"tavola-api/internal/infra"
	"tavola-api/internal/pkg/password"
	"tavola-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type userRecord struct {
	rm           readmodel.AuthorizedUserRM
	passwordHash string
}

type UserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]*userRecord
}

func NewUserStore() *UserStore {
	return &UserStore{
		users: map[uuid.UUID]*userRecord{},
	}
}

// Seed inserts the bootstrap administrator account. Called once at startup;
// without a database there is no migration that could insert it. An empty
// password leaves the store empty, which disables the admin panel entirely.
func (s *UserStore) Seed(email, plainPassword string) error {
	if plainPassword == "" {
		return nil
	}

	emailVO, err := user.NewEmail(email)
	if err != nil {
		return err
	}
	hash, err := password.HashPassword(plainPassword)
	if err != nil {
		return err
	}
	admin := user.NewUser(emailVO, hash, user.RoleAdmin)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[admin.ID()] = &userRecord{
		rm: readmodel.AuthorizedUserRM{
			ID:       admin.ID(),
			Email:    admin.Email().Value(),
			Role:     admin.Role().String(),
			IsActive: admin.IsActive(),
		},
		passwordHash: admin.PasswordHash(),
	}
	return nil
}

func (s *UserStore) FindByEmail(_ context.Context, email user.Email) (*readmodel.AuthorizedUserRM, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rec := range s.users {
		if rec.rm.Email == email.Value() {
			out := rec.rm
			return &out, rec.passwordHash, nil
		}
	}
	return nil, "", infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
}

func (s *UserStore) FindByID(_ context.Context, id uuid.UUID) (*readmodel.AuthorizedUserRM, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.users[id]
	if !ok {
		return nil, infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	out := rec.rm
	return &out, nil
}

func (s *UserStore) UpdateLastLogin(_ context.Context, userID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.users[userID]
	if !ok {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	now := time.Now()
	rec.rm.LastLogin = &now
	return nil
}
