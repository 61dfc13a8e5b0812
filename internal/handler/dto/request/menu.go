package request

import (
	"tavola-api/internal/usecase"

	"github.com/google/uuid"
)

type CategoryRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	DisplayOrder int    `json:"displayOrder"`
}

func (r CategoryRequest) ToParams() usecase.CreateCategoryParams {
	return usecase.CreateCategoryParams{
		Name:         r.Name,
		Description:  r.Description,
		DisplayOrder: r.DisplayOrder,
	}
}

type CreateItemRequest struct {
	CategoryID   uuid.UUID `json:"categoryId" binding:"required"`
	Name         string    `json:"name" binding:"required"`
	Description  string    `json:"description"`
	Price        string    `json:"price" binding:"required"`
	ImageURL     string    `json:"imageUrl"`
	Available    *bool     `json:"available"`
	DisplayOrder int       `json:"displayOrder"`
}

func (r CreateItemRequest) ToParams() usecase.CreateMenuItemParams {
	available := true
	if r.Available != nil {
		available = *r.Available
	}
	return usecase.CreateMenuItemParams{
		CategoryID:   r.CategoryID,
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		ImageURL:     r.ImageURL,
		Available:    available,
		DisplayOrder: r.DisplayOrder,
	}
}

type UpdateItemRequest struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	Price        string `json:"price" binding:"required"`
	ImageURL     string `json:"imageUrl"`
	Available    *bool  `json:"available"`
	DisplayOrder int    `json:"displayOrder"`
}

func (r UpdateItemRequest) ToParams() usecase.UpdateMenuItemParams {
	available := true
	if r.Available != nil {
		available = *r.Available
	}
	return usecase.UpdateMenuItemParams{
		Name:         r.Name,
		Description:  r.Description,
		Price:        r.Price,
		ImageURL:     r.ImageURL,
		Available:    available,
		DisplayOrder: r.DisplayOrder,
	}
}
