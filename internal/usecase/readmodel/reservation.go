// Package readmodel holds the flat read-side views the repositories return to
// the usecase layer. They are plain data and safe to serialize directly.
package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type ReservationRM struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	Date            string     `json:"date"`
	Time            string     `json:"time"`
	Guests          string     `json:"guests"`
	SpecialRequests string     `json:"specialRequests"`
	Status          string     `json:"status"`
	RespondedAt     *time.Time `json:"respondedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
}
