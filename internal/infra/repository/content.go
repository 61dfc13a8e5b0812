package repository

import (
	"context"
	"encoding/json"
	"errors"

	"tavola-api/internal/infra"
	"tavola-api/internal/usecase"
	"tavola-api/internal/usecase/readmodel"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ContentRepository struct {
	pool *pgxpool.Pool
}

func NewContentRepository(pool *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{pool: pool}
}

func (r *ContentRepository) FindSections(ctx context.Context) ([]*readmodel.ContentSectionRM, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT key, payload, updated_at FROM content_sections ORDER BY key`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list content sections", err)
	}
	defer rows.Close()

	var sections []*readmodel.ContentSectionRM
	for rows.Next() {
		s, err := scanSection(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan content section row", err)
		}
		sections = append(sections, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate content sections", err)
	}

	return sections, nil
}

func (r *ContentRepository) FindSection(ctx context.Context, key string) (*readmodel.ContentSectionRM, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT key, payload, updated_at FROM content_sections WHERE key = $1`, key)

	s, err := scanSection(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("content section not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find content section", err)
	}
	return s, nil
}

func (r *ContentRepository) UpsertSection(ctx context.Context, key string, payload json.RawMessage) (*readmodel.ContentSectionRM, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO content_sections (key, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()
		RETURNING key, payload, updated_at`,
		key, []byte(payload),
	)

	s, err := scanSection(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to upsert content section", err)
	}
	return s, nil
}

func scanSection(row rowScanner) (*readmodel.ContentSectionRM, error) {
	var rm readmodel.ContentSectionRM
	var payload []byte
	if err := row.Scan(&rm.Key, &payload, &rm.UpdatedAt); err != nil {
		return nil, err
	}
	rm.Payload = json.RawMessage(payload)
	return &rm, nil
}

// SettingsRepository reads and writes the singleton settings row.
type SettingsRepository struct {
	pool *pgxpool.Pool
}

func NewSettingsRepository(pool *pgxpool.Pool) *SettingsRepository {
	return &SettingsRepository{pool: pool}
}

const settingsColumns = `name, tagline, address, phone, email, opening_hours, updated_at`

func (r *SettingsRepository) Find(ctx context.Context) (*readmodel.SettingsRM, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+settingsColumns+` FROM settings WHERE id = 1`)

	s, err := scanSettings(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("settings not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find settings", err)
	}
	return s, nil
}

func (r *SettingsRepository) Update(ctx context.Context, params usecase.UpdateSettingsParams) (*readmodel.SettingsRM, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO settings (id, name, tagline, address, phone, email, opening_hours, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, now())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			tagline = EXCLUDED.tagline,
			address = EXCLUDED.address,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			opening_hours = EXCLUDED.opening_hours,
			updated_at = now()
		RETURNING `+settingsColumns,
		params.Name, params.Tagline, params.Address, params.Phone, params.Email, params.OpeningHours,
	)

	s, err := scanSettings(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to update settings", err)
	}
	return s, nil
}

func scanSettings(row rowScanner) (*readmodel.SettingsRM, error) {
	var rm readmodel.SettingsRM
	err := row.Scan(&rm.Name, &rm.Tagline, &rm.Address, &rm.Phone, &rm.Email, &rm.OpeningHours, &rm.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &rm, nil
}
