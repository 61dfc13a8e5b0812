package response

import (
	"tavola-api/internal/usecase/readmodel"
)

type LoginResponse struct {
	AccessToken string                      `json:"accessToken"`
	User        *readmodel.AuthorizedUserRM `json:"user"`
}
