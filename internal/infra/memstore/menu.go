package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"tavola-api/internal/domain/menu"
	"tavola-api/internal/infra"
	"tavola-api/internal/usecase"
	"tavola-api/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type MenuStore struct {
	mu         sync.Mutex
	categories map[uuid.UUID]*readmodel.MenuCategoryRM
	items      map[uuid.UUID]*readmodel.MenuItemRM
}

func NewMenuStore() *MenuStore {
	return &MenuStore{
		categories: map[uuid.UUID]*readmodel.MenuCategoryRM{},
		items:      map[uuid.UUID]*readmodel.MenuItemRM{},
	}
}

func (s *MenuStore) FindCategories(_ context.Context) ([]*readmodel.MenuCategoryRM, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*readmodel.MenuCategoryRM, 0, len(s.categories))
	for _, c := range s.categories {
		out := *c
		out.Items = []readmodel.MenuItemRM{}
		for _, i := range s.items {
			if i.CategoryID == c.ID {
				out.Items = append(out.Items, *i)
			}
		}
		sort.Slice(out.Items, func(a, b int) bool {
			if out.Items[a].DisplayOrder != out.Items[b].DisplayOrder {
				return out.Items[a].DisplayOrder < out.Items[b].DisplayOrder
			}
			return out.Items[a].Name < out.Items[b].Name
		})
		result = append(result, &out)
	}
	sort.Slice(result, func(a, b int) bool {
		if result[a].DisplayOrder != result[b].DisplayOrder {
			return result[a].DisplayOrder < result[b].DisplayOrder
		}
		return result[a].Name < result[b].Name
	})

	return result, nil
}

func (s *MenuStore) CreateCategory(_ context.Context, c *menu.Category) (*readmodel.MenuCategoryRM, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rm := &readmodel.MenuCategoryRM{
		ID:           c.ID(),
		Name:         c.Name(),
		Description:  c.Description(),
		DisplayOrder: c.DisplayOrder(),
		Items:        []readmodel.MenuItemRM{},
		UpdatedAt:    time.Now(),
	}
	s.categories[rm.ID] = rm

	out := *rm
	return &out, nil
}

func (s *MenuStore) UpdateCategory(_ context.Context, id uuid.UUID, name, description string, displayOrder int) (*readmodel.MenuCategoryRM, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rm, ok := s.categories[id]
	if !ok {
		return nil, infra.WrapRepoErr("menu category not found", nil, infra.KindNotFound)
	}

	rm.Name = name
	rm.Description = description
	rm.DisplayOrder = displayOrder
	rm.UpdatedAt = time.Now()

	out := *rm
	out.Items = []readmodel.MenuItemRM{}
	return &out, nil
}

func (s *MenuStore) DeleteCategory(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[id]; !ok {
		return infra.WrapRepoErr("menu category not found", nil, infra.KindNotFound)
	}
	delete(s.categories, id)
	for itemID, i := range s.items {
		if i.CategoryID == id {
			delete(s.items, itemID)
		}
	}
	return nil
}

func (s *MenuStore) CreateItem(_ context.Context, i *menu.Item) (*readmodel.MenuItemRM, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categories[i.CategoryID()]; !ok {
		return nil, infra.WrapRepoErr("menu category not found", nil, infra.KindNotFound)
	}

	rm := &readmodel.MenuItemRM{
		ID:           i.ID(),
		CategoryID:   i.CategoryID(),
		Name:         i.Name(),
		Description:  i.Description(),
		Price:        i.Price(),
		ImageURL:     i.ImageURL(),
		Available:    i.Available(),
		DisplayOrder: i.DisplayOrder(),
		UpdatedAt:    time.Now(),
	}
	s.items[rm.ID] = rm

	out := *rm
	return &out, nil
}

func (s *MenuStore) UpdateItem(_ context.Context, id uuid.UUID, params usecase.UpdateMenuItemParams) (*readmodel.MenuItemRM, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rm, ok := s.items[id]
	if !ok {
		return nil, infra.WrapRepoErr("menu item not found", nil, infra.KindNotFound)
	}

	rm.Name = params.Name
	rm.Description = params.Description
	rm.Price = params.Price
	rm.ImageURL = params.ImageURL
	rm.Available = params.Available
	rm.DisplayOrder = params.DisplayOrder
	rm.UpdatedAt = time.Now()

	out := *rm
	return &out, nil
}

func (s *MenuStore) DeleteItem(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return infra.WrapRepoErr("menu item not found", nil, infra.KindNotFound)
	}
	delete(s.items, id)
	return nil
}
