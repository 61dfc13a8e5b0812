package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type MenuCategoryRM struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	DisplayOrder int          `json:"displayOrder"`
	Items        []MenuItemRM `json:"items"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

type MenuItemRM struct {
	ID           uuid.UUID `json:"id"`
	CategoryID   uuid.UUID `json:"categoryId"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Price        string    `json:"price"`
	ImageURL     string    `json:"imageUrl"`
	Available    bool      `json:"available"`
	DisplayOrder int       `json:"displayOrder"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
