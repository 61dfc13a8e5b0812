package request

import (
	"encoding/json"

	"tavola-api/internal/usecase"
)

type UpsertSectionRequest struct {
	Payload json.RawMessage `json:"payload" binding:"required"`
}

type UpdateSettingsRequest struct {
	Name         string `json:"name" binding:"required"`
	Tagline      string `json:"tagline"`
	Address      string `json:"address"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	OpeningHours string `json:"openingHours"`
}

func (r UpdateSettingsRequest) ToParams() usecase.UpdateSettingsParams {
	return usecase.UpdateSettingsParams{
		Name:         r.Name,
		Tagline:      r.Tagline,
		Address:      r.Address,
		Phone:        r.Phone,
		Email:        r.Email,
		OpeningHours: r.OpeningHours,
	}
}
