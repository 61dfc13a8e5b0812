//go:build unit

package memstore_test

import (
	"testing"
	"time"

	"tavola-api/internal/domain/reservation"
	"tavola-api/internal/infra"
	"tavola-api/internal/infra/memstore"
	"tavola-api/internal/usecase/readmodel"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPending(t *testing.T, name string, createdAt time.Time) *reservation.Reservation {
	t.Helper()
	res, err := reservation.NewReservation(reservation.GuestDetails{
		Name:   name,
		Email:  "guest@example.com",
		Phone:  "+39 055 123456",
		Date:   "2026-09-12",
		Time:   "19:30",
		Guests: "2",
	}, createdAt)
	require.NoError(t, err)
	return res
}

func TestReservationStoreRoundTrip(t *testing.T) {
	ctx := t.Context()
	store := memstore.NewReservationStore()
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	res := newPending(t, "Mario Rossi", now)
	created, err := store.Create(ctx, res)
	require.NoError(t, err)

	found, err := store.FindByID(ctx, res.ID())
	require.NoError(t, err)

	want := &readmodel.ReservationRM{
		ID:        res.ID(),
		Name:      "Mario Rossi",
		Email:     "guest@example.com",
		Phone:     "+39 055 123456",
		Date:      "2026-09-12",
		Time:      "19:30",
		Guests:    "2",
		Status:    "pending",
		CreatedAt: now,
	}
	if diff := cmp.Diff(want, found); diff != "" {
		t.Errorf("FindByID mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(created, found); diff != "" {
		t.Errorf("Create and FindByID disagree (-created +found):\n%s", diff)
	}
}

func TestReservationStoreFindByIDUnknown(t *testing.T) {
	store := memstore.NewReservationStore()

	_, err := store.FindByID(t.Context(), uuid.New())
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestReservationStoreFindAllNewestFirst(t *testing.T) {
	ctx := t.Context()
	store := memstore.NewReservationStore()
	base := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	first := newPending(t, "first", base)
	second := newPending(t, "second", base.Add(time.Minute))
	third := newPending(t, "third", base.Add(2*time.Minute))
	for _, r := range []*reservation.Reservation{first, second, third} {
		_, err := store.Create(ctx, r)
		require.NoError(t, err)
	}

	all, err := store.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[0].Name)
	assert.Equal(t, "second", all[1].Name)
	assert.Equal(t, "first", all[2].Name)
}

func TestReservationStoreRespondIfPending(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	respondedAt := now.Add(time.Hour)

	t.Run("pending transitions and records the response time", func(t *testing.T) {
		store := memstore.NewReservationStore()
		res := newPending(t, "Mario Rossi", now)
		_, err := store.Create(ctx, res)
		require.NoError(t, err)

		updated, err := store.RespondIfPending(ctx, res.ID(), reservation.StatusAccepted, respondedAt)
		require.NoError(t, err)
		assert.Equal(t, "accepted", updated.Status)
		require.NotNil(t, updated.RespondedAt)
		assert.Equal(t, respondedAt, *updated.RespondedAt)
	})

	t.Run("unknown id is not found", func(t *testing.T) {
		store := memstore.NewReservationStore()

		_, err := store.RespondIfPending(ctx, uuid.New(), reservation.StatusAccepted, respondedAt)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("second response conflicts and leaves the record alone", func(t *testing.T) {
		store := memstore.NewReservationStore()
		res := newPending(t, "Mario Rossi", now)
		_, err := store.Create(ctx, res)
		require.NoError(t, err)

		_, err = store.RespondIfPending(ctx, res.ID(), reservation.StatusAccepted, respondedAt)
		require.NoError(t, err)

		_, err = store.RespondIfPending(ctx, res.ID(), reservation.StatusRejected, respondedAt.Add(time.Minute))
		assert.True(t, infra.IsKind(err, infra.KindConflict))

		current, err := store.FindByID(ctx, res.ID())
		require.NoError(t, err)
		assert.Equal(t, "accepted", current.Status)
		assert.Equal(t, respondedAt, *current.RespondedAt)
	})
}

func TestReservationStoreReturnsCopies(t *testing.T) {
	ctx := t.Context()
	store := memstore.NewReservationStore()
	res := newPending(t, "Mario Rossi", time.Now())
	_, err := store.Create(ctx, res)
	require.NoError(t, err)

	found, err := store.FindByID(ctx, res.ID())
	require.NoError(t, err)
	found.Name = "mutated"

	again, err := store.FindByID(ctx, res.ID())
	require.NoError(t, err)
	assert.Equal(t, "Mario Rossi", again.Name)
}
