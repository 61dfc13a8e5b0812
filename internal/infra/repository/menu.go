package repository

import (
	"context"
	"errors"

	"tavola-api/internal/domain/menu"
	"tavola-api/internal/infra"
	"tavola-api/internal/usecase"
	"tavola-api/internal/usecase/readmodel"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	categoryColumns = `id, name, description, display_order, updated_at`
	itemColumns     = `id, category_id, name, description, price, image_url, available, display_order, updated_at`

	foreignKeyViolation = "23503"
)

type MenuRepository struct {
	pool *pgxpool.Pool
}

func NewMenuRepository(pool *pgxpool.Pool) *MenuRepository {
	return &MenuRepository{pool: pool}
}

func (r *MenuRepository) FindCategories(ctx context.Context) ([]*readmodel.MenuCategoryRM, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+categoryColumns+` FROM menu_categories ORDER BY display_order, name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu categories", err)
	}
	defer rows.Close()

	var categories []*readmodel.MenuCategoryRM
	byID := map[uuid.UUID]*readmodel.MenuCategoryRM{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan menu category row", err)
		}
		c.Items = []readmodel.MenuItemRM{}
		categories = append(categories, c)
		byID[c.ID] = c
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate menu categories", err)
	}

	itemRows, err := r.pool.Query(ctx, `
		SELECT `+itemColumns+` FROM menu_items ORDER BY display_order, name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu items", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		i, err := scanItem(itemRows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan menu item row", err)
		}
		if c, ok := byID[i.CategoryID]; ok {
			c.Items = append(c.Items, *i)
		}
	}
	if err := itemRows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate menu items", err)
	}

	return categories, nil
}

func (r *MenuRepository) CreateCategory(ctx context.Context, c *menu.Category) (*readmodel.MenuCategoryRM, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO menu_categories (id, name, description, display_order, updated_at)
		VALUES ($1, $2, $3, $4, now())
		RETURNING `+categoryColumns,
		c.ID(), c.Name(), c.Description(), c.DisplayOrder(),
	)

	rm, err := scanCategory(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create menu category", err)
	}
	rm.Items = []readmodel.MenuItemRM{}
	return rm, nil
}

func (r *MenuRepository) UpdateCategory(ctx context.Context, id uuid.UUID, name, description string, displayOrder int) (*readmodel.MenuCategoryRM, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE menu_categories
		SET name = $2, description = $3, display_order = $4, updated_at = now()
		WHERE id = $1
		RETURNING `+categoryColumns,
		id, name, description, displayOrder,
	)

	rm, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("menu category not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update menu category", err)
	}
	rm.Items = []readmodel.MenuItemRM{}
	return rm, nil
}

func (r *MenuRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	// Items cascade via the schema's ON DELETE CASCADE.
	tag, err := r.pool.Exec(ctx, `DELETE FROM menu_categories WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete menu category", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("menu category not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *MenuRepository) CreateItem(ctx context.Context, i *menu.Item) (*readmodel.MenuItemRM, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO menu_items (id, category_id, name, description, price, image_url, available, display_order, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
		RETURNING `+itemColumns,
		i.ID(), i.CategoryID(), i.Name(), i.Description(), i.Price(), i.ImageURL(), i.Available(), i.DisplayOrder(),
	)

	rm, err := scanItem(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return nil, infra.WrapRepoErr("menu category not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to create menu item", err)
	}
	return rm, nil
}

func (r *MenuRepository) UpdateItem(ctx context.Context, id uuid.UUID, params usecase.UpdateMenuItemParams) (*readmodel.MenuItemRM, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE menu_items
		SET name = $2, description = $3, price = $4, image_url = $5, available = $6, display_order = $7, updated_at = now()
		WHERE id = $1
		RETURNING `+itemColumns,
		id, params.Name, params.Description, params.Price, params.ImageURL, params.Available, params.DisplayOrder,
	)

	rm, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("menu item not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to update menu item", err)
	}
	return rm, nil
}

func (r *MenuRepository) DeleteItem(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete menu item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("menu item not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanCategory(row rowScanner) (*readmodel.MenuCategoryRM, error) {
	var rm readmodel.MenuCategoryRM
	err := row.Scan(&rm.ID, &rm.Name, &rm.Description, &rm.DisplayOrder, &rm.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}

func scanItem(row rowScanner) (*readmodel.MenuItemRM, error) {
	var rm readmodel.MenuItemRM
	err := row.Scan(&rm.ID, &rm.CategoryID, &rm.Name, &rm.Description, &rm.Price, &rm.ImageURL, &rm.Available, &rm.DisplayOrder, &rm.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
