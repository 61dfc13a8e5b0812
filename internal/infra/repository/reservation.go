package repository

import (
	"context"
	"errors"
	"time"

	"tavola-api/internal/domain/reservation"
	"tavola-api/internal/infra"
	"tavola-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const reservationColumns = `id, name, email, phone, visit_date, visit_time, guests, special_requests, status, responded_at, created_at`

type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) (*readmodel.ReservationRM, error) {
	d := res.Details()

	row := r.pool.QueryRow(ctx, `
		INSERT INTO reservations (id, name, email, phone, visit_date, visit_time, guests, special_requests, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+reservationColumns,
		res.ID(), d.Name, d.Email, d.Phone, d.Date, d.Time, d.Guests, d.SpecialRequests,
		res.Status().String(), res.CreatedAt(),
	)

	rm, err := scanReservation(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create reservation", err)
	}
	return rm, nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id)

	rm, err := scanReservation(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return rm, nil
}

func (r *ReservationRepository) FindAll(ctx context.Context) ([]*readmodel.ReservationRM, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+reservationColumns+` FROM reservations ORDER BY created_at DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list reservations", err)
	}
	defer rows.Close()

	var result []*readmodel.ReservationRM
	for rows.Next() {
		rm, err := scanReservation(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}

	return result, nil
}

// RespondIfPending is a single conditional write: the WHERE clause on status
// makes the pending-only precondition atomic, so two racing admin responses
// cannot both succeed. Zero rows affected means either the id is unknown or
// the reservation already left pending; a follow-up read tells the two apart.
func (r *ReservationRepository) RespondIfPending(ctx context.Context, id uuid.UUID, status reservation.Status, respondedAt time.Time) (*readmodel.ReservationRM, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE reservations
		SET status = $2, responded_at = $3
		WHERE id = $1 AND status = 'pending'
		RETURNING `+reservationColumns,
		id, status.String(), respondedAt,
	)

	rm, err := scanReservation(row)
	if err == nil {
		return rm, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, infra.WrapRepoErr("failed to update reservation status", err)
	}

	var current string
	if lookupErr := r.pool.QueryRow(ctx, `SELECT status FROM reservations WHERE id = $1`, id).Scan(&current); lookupErr != nil {
		if errors.Is(lookupErr, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", lookupErr, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to check reservation status", lookupErr)
	}

	return nil, infra.WrapRepoErr("reservation already responded", err, infra.KindConflict)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner) (*readmodel.ReservationRM, error) {
	var rm readmodel.ReservationRM
	err := row.Scan(
		&rm.ID,
		&rm.Name,
		&rm.Email,
		&rm.Phone,
		&rm.Date,
		&rm.Time,
		&rm.Guests,
		&rm.SpecialRequests,
		&rm.Status,
		&rm.RespondedAt,
		&rm.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
