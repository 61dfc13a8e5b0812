package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"tavola-api/internal/domain/reservation"
	"tavola-api/internal/infra"
	"tavola-api/internal/pkg/clock"
	"tavola-api/internal/pkg/errs"
	"tavola-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrReservationNotFound   = errors.New("reservation not found")
	ErrMissingFields         = errors.New("missing required fields")
	ErrInvalidResponseStatus = errors.New("invalid response status")
	ErrAlreadyResponded      = errors.New("reservation already responded")

	// Error markers for categorization
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)

// ReservationRepository is the single source of truth for reservations. Two
// implementations exist (Postgres, in-process memory) with identical
// semantics; which one backs the service is a startup decision.
type ReservationRepository interface {
	Create(ctx context.Context, res *reservation.Reservation) (*readmodel.ReservationRM, error)
	FindByID(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error)
	// FindAll returns every reservation, newest first.
	FindAll(ctx context.Context) ([]*readmodel.ReservationRM, error)
	// RespondIfPending persists the pending -> terminal transition as one
	// conditional write. It fails with KindConflict when the reservation has
	// already been responded to, so two racing admin actions cannot both win.
	RespondIfPending(ctx context.Context, id uuid.UUID, status reservation.Status, respondedAt time.Time) (*readmodel.ReservationRM, error)
}

// Mailer delivers one transactional email synchronously. One attempt, no
// retry; the caller decides what a failure means.
type Mailer interface {
	Send(ctx context.Context, to, toName, subject, plainBody, htmlBody string) error
}

type SubmitReservationParams struct {
	Name            string
	Email           string
	Phone           string
	Date            string
	Time            string
	Guests          string
	SpecialRequests string
}

type IntakeResult struct {
	ID        uuid.UUID
	CreatedAt time.Time
}

// RespondResult reports the two independent outcomes of an admin response:
// the state transition (always committed when this struct is returned) and
// the best-effort guest notification.
type RespondResult struct {
	Reservation *readmodel.ReservationRM
	EmailSent   bool
	EmailError  string
}

type ReservationUseCase interface {
	SubmitReservation(ctx context.Context, params SubmitReservationParams) (*IntakeResult, error)
	GetReservation(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error)
	ListReservations(ctx context.Context) ([]*readmodel.ReservationRM, error)
	RespondToReservation(ctx context.Context, id uuid.UUID, rawStatus string) (*RespondResult, error)
}

type reservationUseCaseImpl struct {
	reservationRepo ReservationRepository
	mailer          Mailer
	clock           clock.Clock
}

func NewReservationUseCase(
	reservationRepo ReservationRepository,
	mailer Mailer,
	clock clock.Clock,
) ReservationUseCase {
	return &reservationUseCaseImpl{
		reservationRepo: reservationRepo,
		mailer:          mailer,
		clock:           clock,
	}
}

func (r *reservationUseCaseImpl) SubmitReservation(ctx context.Context, params SubmitReservationParams) (*IntakeResult, error) {
	entity, err := reservation.NewReservation(reservation.GuestDetails{
		Name:            params.Name,
		Email:           params.Email,
		Phone:           params.Phone,
		Date:            params.Date,
		Time:            params.Time,
		Guests:          params.Guests,
		SpecialRequests: params.SpecialRequests,
	}, r.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrMissingFields)
	}

	rm, err := r.reservationRepo.Create(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	// Deliberately small response: the full record is available through the
	// admin listing. Intake never sends email; only the admin response does.
	return &IntakeResult{ID: rm.ID, CreatedAt: rm.CreatedAt}, nil
}

func (r *reservationUseCaseImpl) GetReservation(ctx context.Context, id uuid.UUID) (*readmodel.ReservationRM, error) {
	rm, err := r.reservationRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (r *reservationUseCaseImpl) ListReservations(ctx context.Context) ([]*readmodel.ReservationRM, error) {
	rms, err := r.reservationRepo.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rms, nil
}

func (r *reservationUseCaseImpl) RespondToReservation(ctx context.Context, id uuid.UUID, rawStatus string) (*RespondResult, error) {
	status, err := reservation.NewResponseStatus(rawStatus)
	if err != nil {
		return nil, ErrInvalidResponseStatus
	}

	rm, err := r.reservationRepo.RespondIfPending(ctx, id, status, r.clock.Now())
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, ErrReservationNotFound
		case infra.IsKind(err, infra.KindConflict):
			return nil, ErrAlreadyResponded
		default:
			return nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
	}

	result := &RespondResult{Reservation: rm, EmailSent: true}

	// The transition is already durable. A failed notification must never
	// undo it; the admin sees the flag and can follow up by phone.
	msg := buildReservationEmail(rm, status)
	if sendErr := r.mailer.Send(ctx, rm.Email, rm.Name, msg.Subject, msg.PlainBody, msg.HTMLBody); sendErr != nil {
		slog.Warn("reservation response email failed",
			"reservation_id", rm.ID,
			"status", status.String(),
			"error", sendErr.Error(),
		)
		result.EmailSent = false
		result.EmailError = sendErr.Error()
	}

	return result, nil
}
