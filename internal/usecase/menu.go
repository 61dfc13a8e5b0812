package usecase

import (
	"context"
	"errors"

	"tavola-api/internal/domain/menu"
	"tavola-api/internal/infra"
	"tavola-api/internal/pkg/errs"
	"tavola-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound     = errors.New("menu category not found")
	ErrMenuItemNotFound     = errors.New("menu item not found")
	ErrMenuValidationFailed = errors.New("menu validation failed")
)

type MenuRepository interface {
	// FindCategories returns all categories with their items nested, ordered
	// by display order then name.
	FindCategories(ctx context.Context) ([]*readmodel.MenuCategoryRM, error)
	CreateCategory(ctx context.Context, c *menu.Category) (*readmodel.MenuCategoryRM, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, name, description string, displayOrder int) (*readmodel.MenuCategoryRM, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	CreateItem(ctx context.Context, i *menu.Item) (*readmodel.MenuItemRM, error)
	UpdateItem(ctx context.Context, id uuid.UUID, params UpdateMenuItemParams) (*readmodel.MenuItemRM, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

type CreateCategoryParams struct {
	Name         string
	Description  string
	DisplayOrder int
}

type CreateMenuItemParams struct {
	CategoryID   uuid.UUID
	Name         string
	Description  string
	Price        string
	ImageURL     string
	Available    bool
	DisplayOrder int
}

type UpdateMenuItemParams struct {
	Name         string
	Description  string
	Price        string
	ImageURL     string
	Available    bool
	DisplayOrder int
}

type MenuUseCase interface {
	GetMenu(ctx context.Context) ([]*readmodel.MenuCategoryRM, error)
	CreateCategory(ctx context.Context, params CreateCategoryParams) (*readmodel.MenuCategoryRM, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, params CreateCategoryParams) (*readmodel.MenuCategoryRM, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	CreateItem(ctx context.Context, params CreateMenuItemParams) (*readmodel.MenuItemRM, error)
	UpdateItem(ctx context.Context, id uuid.UUID, params UpdateMenuItemParams) (*readmodel.MenuItemRM, error)
	DeleteItem(ctx context.Context, id uuid.UUID) error
}

type menuUseCaseImpl struct {
	menuRepo MenuRepository
}

func NewMenuUseCase(menuRepo MenuRepository) MenuUseCase {
	return &menuUseCaseImpl{menuRepo: menuRepo}
}

func (m *menuUseCaseImpl) GetMenu(ctx context.Context) ([]*readmodel.MenuCategoryRM, error) {
	categories, err := m.menuRepo.FindCategories(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return categories, nil
}

func (m *menuUseCaseImpl) CreateCategory(ctx context.Context, params CreateCategoryParams) (*readmodel.MenuCategoryRM, error) {
	entity, err := menu.NewCategory(params.Name, params.Description, params.DisplayOrder)
	if err != nil {
		return nil, errs.Mark(err, ErrMenuValidationFailed)
	}

	rm, err := m.menuRepo.CreateCategory(ctx, entity)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (m *menuUseCaseImpl) UpdateCategory(ctx context.Context, id uuid.UUID, params CreateCategoryParams) (*readmodel.MenuCategoryRM, error) {
	if _, err := menu.NewCategory(params.Name, params.Description, params.DisplayOrder); err != nil {
		return nil, errs.Mark(err, ErrMenuValidationFailed)
	}

	rm, err := m.menuRepo.UpdateCategory(ctx, id, params.Name, params.Description, params.DisplayOrder)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (m *menuUseCaseImpl) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	if err := m.menuRepo.DeleteCategory(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrCategoryNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}

func (m *menuUseCaseImpl) CreateItem(ctx context.Context, params CreateMenuItemParams) (*readmodel.MenuItemRM, error) {
	entity, err := menu.NewItem(
		params.CategoryID,
		params.Name,
		params.Description,
		params.Price,
		params.ImageURL,
		params.Available,
		params.DisplayOrder,
	)
	if err != nil {
		return nil, errs.Mark(err, ErrMenuValidationFailed)
	}

	rm, err := m.menuRepo.CreateItem(ctx, entity)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (m *menuUseCaseImpl) UpdateItem(ctx context.Context, id uuid.UUID, params UpdateMenuItemParams) (*readmodel.MenuItemRM, error) {
	rm, err := m.menuRepo.UpdateItem(ctx, id, params)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrMenuItemNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func (m *menuUseCaseImpl) DeleteItem(ctx context.Context, id uuid.UUID) error {
	if err := m.menuRepo.DeleteItem(ctx, id); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return ErrMenuItemNotFound
		}
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return nil
}
