// Package memstore implements every repository port against process-local
// state. It backs the service when no database is configured, with the same
// observable semantics as the Postgres repositories (ordering, conflict
// detection, not-found reporting). Nothing survives a restart, by design.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"tavola-api/internal/domain/reservation"
	"tavola-api/internal/infra"
	"tavola-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type ReservationStore struct {
	mu      sync.Mutex
	records map[uuid.UUID]*readmodel.ReservationRM
	order   []uuid.UUID // insertion order, breaks created_at ties
}

func NewReservationStore() *ReservationStore {
	return &ReservationStore{
		records: map[uuid.UUID]*readmodel.ReservationRM{},
	}
}

func (s *ReservationStore) Create(_ context.Context, res *reservation.Reservation) (*readmodel.ReservationRM, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := res.Details()
	rm := &readmodel.ReservationRM{
		ID:              res.ID(),
		Name:            d.Name,
		Email:           d.Email,
		Phone:           d.Phone,
		Date:            d.Date,
		Time:            d.Time,
		Guests:          d.Guests,
		SpecialRequests: d.SpecialRequests,
		Status:          res.Status().String(),
		CreatedAt:       res.CreatedAt(),
	}

	s.records[rm.ID] = rm
	s.order = append(s.order, rm.ID)
	return copyReservation(rm), nil
}

func (s *ReservationStore) FindByID(_ context.Context, id uuid.UUID) (*readmodel.ReservationRM, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rm, ok := s.records[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return copyReservation(rm), nil
}

func (s *ReservationStore) FindAll(_ context.Context) ([]*readmodel.ReservationRM, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*readmodel.ReservationRM, 0, len(s.order))
	// Walk insertion order backwards so equal timestamps stay newest-first.
	for i := len(s.order) - 1; i >= 0; i-- {
		result = append(result, copyReservation(s.records[s.order[i]]))
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

// RespondIfPending performs the check and the write under one lock, matching
// the atomicity of the SQL conditional update.
func (s *ReservationStore) RespondIfPending(_ context.Context, id uuid.UUID, status reservation.Status, respondedAt time.Time) (*readmodel.ReservationRM, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rm, ok := s.records[id]
	if !ok {
		return nil, infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	if rm.Status != reservation.StatusPending.String() {
		return nil, infra.WrapRepoErr("reservation already responded", nil, infra.KindConflict)
	}

	rm.Status = status.String()
	t := respondedAt
	rm.RespondedAt = &t
	return copyReservation(rm), nil
}

func copyReservation(rm *readmodel.ReservationRM) *readmodel.ReservationRM {
	out := *rm
	if rm.RespondedAt != nil {
		t := *rm.RespondedAt
		out.RespondedAt = &t
	}
	return &out
}
