package readmodel

import (
	"encoding/json"
	"time"
)

// ContentSectionRM is one keyed block of editorial copy (hero, about, home,
// branding). The payload is opaque JSON owned by the admin UI.
type ContentSectionRM struct {
	Key       string          `json:"key"`
	Payload   json.RawMessage `json:"payload"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

type SettingsRM struct {
	Name         string    `json:"name"`
	Tagline      string    `json:"tagline"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	OpeningHours string    `json:"openingHours"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
