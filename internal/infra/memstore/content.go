package memstore

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"tavola-api/internal/infra"
	"tavola-api/internal/usecase"
	"tavola-api/internal/usecase/readmodel"
)

type ContentStore struct {
	mu       sync.Mutex
	sections map[string]*readmodel.ContentSectionRM
}

func NewContentStore() *ContentStore {
	return &ContentStore{
		sections: map[string]*readmodel.ContentSectionRM{},
	}
}

func (s *ContentStore) FindSections(_ context.Context) ([]*readmodel.ContentSectionRM, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*readmodel.ContentSectionRM, 0, len(s.sections))
	for _, sec := range s.sections {
		result = append(result, copySection(sec))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })

	return result, nil
}

func (s *ContentStore) FindSection(_ context.Context, key string) (*readmodel.ContentSectionRM, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sec, ok := s.sections[key]
	if !ok {
		return nil, infra.WrapRepoErr("content section not found", nil, infra.KindNotFound)
	}
	return copySection(sec), nil
}

func (s *ContentStore) UpsertSection(_ context.Context, key string, payload json.RawMessage) (*readmodel.ContentSectionRM, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sec := &readmodel.ContentSectionRM{
		Key:       key,
		Payload:   append(json.RawMessage(nil), payload...),
		UpdatedAt: time.Now(),
	}
	s.sections[key] = sec
	return copySection(sec), nil
}

func copySection(sec *readmodel.ContentSectionRM) *readmodel.ContentSectionRM {
	out := *sec
	out.Payload = append(json.RawMessage(nil), sec.Payload...)
	return &out
}

// SettingsStore holds the singleton settings value. It starts populated with
// placeholder copy so a fresh dev instance renders something.
type SettingsStore struct {
	mu       sync.Mutex
	settings readmodel.SettingsRM
}

func NewSettingsStore() *SettingsStore {
	return &SettingsStore{
		settings: readmodel.SettingsRM{
			Name:         "Tavola",
			Tagline:      "Seasonal Italian cooking",
			OpeningHours: "Tue-Sun 17:00-23:00",
			UpdatedAt:    time.Now(),
		},
	}
}

func (s *SettingsStore) Find(_ context.Context) (*readmodel.SettingsRM, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.settings
	return &out, nil
}

func (s *SettingsStore) Update(_ context.Context, params usecase.UpdateSettingsParams) (*readmodel.SettingsRM, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = readmodel.SettingsRM{
		Name:         params.Name,
		Tagline:      params.Tagline,
		Address:      params.Address,
		Phone:        params.Phone,
		Email:        params.Email,
		OpeningHours: params.OpeningHours,
		UpdatedAt:    time.Now(),
	}

	out := s.settings
	return &out, nil
}
