package usecase

import (
	"context"
	"encoding/json"
	"errors"

	"tavola-api/internal/infra"
	"tavola-api/internal/pkg/errs"
	"tavola-api/internal/usecase/readmodel"
)

var (
	ErrSectionNotFound  = errors.New("content section not found")
	ErrInvalidSection   = errors.New("invalid content section")
	ErrSettingsNotFound = errors.New("settings not found")
)

// Section keys the public site knows how to render. The admin panel can only
// edit these; arbitrary keys are rejected at the boundary.
var knownSectionKeys = map[string]bool{
	"hero":     true,
	"about":    true,
	"home":     true,
	"branding": true,
	"gallery":  true,
	"contact":  true,
}

type ContentRepository interface {
	FindSections(ctx context.Context) ([]*readmodel.ContentSectionRM, error)
	FindSection(ctx context.Context, key string) (*readmodel.ContentSectionRM, error)
	UpsertSection(ctx context.Context, key string, payload json.RawMessage) (*readmodel.ContentSectionRM, error)
}

type SettingsRepository interface {
	Find(ctx context.Context) (*readmodel.SettingsRM, error)
	Update(ctx context.Context, params UpdateSettingsParams) (*readmodel.SettingsRM, error)
}

type UpdateSettingsParams struct {
	Name         string
	Tagline      string
	Address      string
	Phone        string
	Email        string
	OpeningHours string
}

type ContentUseCase interface {
	ListSections(ctx context.Context) ([]*readmodel.ContentSectionRM, error)
	GetSection(ctx context.Context, key string) (*readmodel.ContentSectionRM, error)
	UpsertSection(ctx context.Context, key string, payload json.RawMessage) (*readmodel.ContentSectionRM, error)
	GetSettings(ctx context.Context) (*readmodel.SettingsRM, error)
	UpdateSettings(ctx context.Context, params UpdateSettingsParams) (*readmodel.SettingsRM, error)
}

type contentUseCaseImpl struct {
	contentRepo  ContentRepository
	settingsRepo SettingsRepository
}

func NewContentUseCase(contentRepo ContentRepository, settingsRepo SettingsRepository) ContentUseCase {
	return &contentUseCaseImpl{
		contentRepo:  contentRepo,
		settingsRepo: settingsRepo,
	}
}

func (c *contentUseCaseImpl) ListSections(ctx context.Context) ([]*readmodel.ContentSectionRM, error) {
	sections, err := c.contentRepo.FindSections(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return sections, nil
}

func (c *contentUseCaseImpl) GetSection(ctx context.Context, key string) (*readmodel.ContentSectionRM, error) {
	if !knownSectionKeys[key] {
		return nil, ErrInvalidSection
	}

	section, err := c.contentRepo.FindSection(ctx, key)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSectionNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return section, nil
}

func (c *contentUseCaseImpl) UpsertSection(ctx context.Context, key string, payload json.RawMessage) (*readmodel.ContentSectionRM, error) {
	if !knownSectionKeys[key] || !json.Valid(payload) {
		return nil, ErrInvalidSection
	}

	section, err := c.contentRepo.UpsertSection(ctx, key, payload)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return section, nil
}

func (c *contentUseCaseImpl) GetSettings(ctx context.Context) (*readmodel.SettingsRM, error) {
	settings, err := c.settingsRepo.Find(ctx)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrSettingsNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return settings, nil
}

func (c *contentUseCaseImpl) UpdateSettings(ctx context.Context, params UpdateSettingsParams) (*readmodel.SettingsRM, error) {
	settings, err := c.settingsRepo.Update(ctx, params)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return settings, nil
}
