package reservation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidResponseStatus = errors.New("invalid response status")
	ErrAlreadyResponded      = errors.New("reservation already responded")
)

// GuestDetails carries the guest-supplied booking request fields. The slot
// fields (date, time, guests) are opaque strings: there is no calendar or
// availability validation at this layer.
type GuestDetails struct {
	Name            string
	Email           string
	Phone           string
	Date            string
	Time            string
	Guests          string
	SpecialRequests string
}

type Reservation struct {
	id          uuid.UUID
	details     GuestDetails
	status      Status
	respondedAt *time.Time
	createdAt   time.Time
}

// NewReservation validates an intake submission and produces a pending
// reservation. All six required fields must be non-empty after trimming.
func NewReservation(details GuestDetails, now time.Time) (*Reservation, error) {
	details = trimDetails(details)

	required := []string{
		details.Name,
		details.Email,
		details.Phone,
		details.Date,
		details.Time,
		details.Guests,
	}
	for _, v := range required {
		if v == "" {
			return nil, ErrMissingRequiredFields
		}
	}

	return &Reservation{
		id:        uuid.New(),
		details:   details,
		status:    StatusPending,
		createdAt: now,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	details GuestDetails,
	status Status,
	respondedAt *time.Time,
	createdAt time.Time,
) *Reservation {
	return &Reservation{
		id:          id,
		details:     details,
		status:      status,
		respondedAt: respondedAt,
		createdAt:   createdAt,
	}
}

// Respond applies the single legal transition pending -> accepted|rejected.
// A reservation that has already left pending can never transition again.
func (r *Reservation) Respond(status Status, now time.Time) error {
	if !status.IsTerminal() {
		return ErrInvalidResponseStatus
	}
	if r.status != StatusPending {
		return ErrAlreadyResponded
	}
	r.status = status
	r.respondedAt = &now
	return nil
}

func (r *Reservation) IsPending() bool {
	return r.status == StatusPending
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) Details() GuestDetails   { return r.details }
func (r *Reservation) Status() Status          { return r.status }
func (r *Reservation) RespondedAt() *time.Time { return r.respondedAt }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }

func trimDetails(d GuestDetails) GuestDetails {
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.TrimSpace(d.Email)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Date = strings.TrimSpace(d.Date)
	d.Time = strings.TrimSpace(d.Time)
	d.Guests = strings.TrimSpace(d.Guests)
	d.SpecialRequests = strings.TrimSpace(d.SpecialRequests)
	return d
}
