package response

import (
	"time"

	"tavola-api/internal/usecase"
	"tavola-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type IntakeResponse struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromIntakeResult(result *usecase.IntakeResult) IntakeResponse {
	return IntakeResponse{
		ID:        result.ID,
		CreatedAt: result.CreatedAt,
	}
}

// RespondResponse always separates "did the state change" (it did, or this
// response would not exist) from "was the guest notified".
type RespondResponse struct {
	Reservation *readmodel.ReservationRM `json:"reservation"`
	EmailSent   bool                     `json:"emailSent"`
	Error       string                   `json:"error,omitempty"`
}

func FromRespondResult(result *usecase.RespondResult) RespondResponse {
	return RespondResponse{
		Reservation: result.Reservation,
		EmailSent:   result.EmailSent,
		Error:       result.EmailError,
	}
}
