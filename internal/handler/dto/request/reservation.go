package request

import (
	"tavola-api/internal/usecase"
)

// SubmitReservationRequest carries a guest booking submission. Date, time and
// guests stay strings on purpose: the restaurant reads them, no calendar
// logic does.
type SubmitReservationRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Phone           string `json:"phone" binding:"required"`
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	Guests          string `json:"guests" binding:"required"`
	SpecialRequests string `json:"specialRequests"`
}

func (r SubmitReservationRequest) ToParams() usecase.SubmitReservationParams {
	return usecase.SubmitReservationParams{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Date:            r.Date,
		Time:            r.Time,
		Guests:          r.Guests,
		SpecialRequests: r.SpecialRequests,
	}
}

type RespondReservationRequest struct {
	Status string `json:"status" binding:"required"`
}
