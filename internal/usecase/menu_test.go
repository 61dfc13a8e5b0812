//go:build unit

package usecase_test

import (
	"testing"

	"tavola-api/internal/infra/memstore"
	"tavola-api/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type MenuUseCaseTestSuite struct {
	suite.Suite
	uc usecase.MenuUseCase
}

func TestMenuUseCaseSuite(t *testing.T) {
	suite.Run(t, new(MenuUseCaseTestSuite))
}

func (s *MenuUseCaseTestSuite) SetupTest() {
	s.uc = usecase.NewMenuUseCase(memstore.NewMenuStore())
}

func (s *MenuUseCaseTestSuite) createCategory(name string, order int) uuid.UUID {
	rm, err := s.uc.CreateCategory(s.T().Context(), usecase.CreateCategoryParams{
		Name:         name,
		DisplayOrder: order,
	})
	s.Require().NoError(err)
	return rm.ID
}

func (s *MenuUseCaseTestSuite) TestCategories() {
	s.Run("created categories come back ordered", func() {
		s.createCategory("Desserts", 3)
		s.createCategory("Antipasti", 1)
		s.createCategory("Primi", 2)

		categories, err := s.uc.GetMenu(s.T().Context())
		s.Require().NoError(err)
		s.Require().Len(categories, 3)
		s.Equal("Antipasti", categories[0].Name)
		s.Equal("Primi", categories[1].Name)
		s.Equal("Desserts", categories[2].Name)
	})

	s.Run("empty name fails validation", func() {
		_, err := s.uc.CreateCategory(s.T().Context(), usecase.CreateCategoryParams{Name: "  "})
		s.ErrorIs(err, usecase.ErrMenuValidationFailed)
	})

	s.Run("updating an unknown category is not found", func() {
		_, err := s.uc.UpdateCategory(s.T().Context(), uuid.New(), usecase.CreateCategoryParams{Name: "Secondi"})
		s.ErrorIs(err, usecase.ErrCategoryNotFound)
	})

	s.Run("deleting a category removes its items from the menu", func() {
		categoryID := s.createCategory("Antipasti", 1)
		_, err := s.uc.CreateItem(s.T().Context(), usecase.CreateMenuItemParams{
			CategoryID: categoryID,
			Name:       "Bruschetta",
			Price:      "8",
			Available:  true,
		})
		s.Require().NoError(err)

		s.Require().NoError(s.uc.DeleteCategory(s.T().Context(), categoryID))

		categories, err := s.uc.GetMenu(s.T().Context())
		s.Require().NoError(err)
		s.Empty(categories)
	})
}

func (s *MenuUseCaseTestSuite) TestItems() {
	s.Run("items nest under their category sorted by display order", func() {
		categoryID := s.createCategory("Primi", 1)
		for _, item := range []struct {
			name  string
			order int
		}{
			{name: "Tagliatelle al ragu", order: 2},
			{name: "Risotto ai funghi", order: 1},
		} {
			_, err := s.uc.CreateItem(s.T().Context(), usecase.CreateMenuItemParams{
				CategoryID:   categoryID,
				Name:         item.name,
				Price:        "14",
				Available:    true,
				DisplayOrder: item.order,
			})
			s.Require().NoError(err)
		}

		categories, err := s.uc.GetMenu(s.T().Context())
		s.Require().NoError(err)
		s.Require().Len(categories, 1)
		s.Require().Len(categories[0].Items, 2)
		s.Equal("Risotto ai funghi", categories[0].Items[0].Name)
		s.Equal("Tagliatelle al ragu", categories[0].Items[1].Name)
	})

	s.Run("item under an unknown category is refused", func() {
		_, err := s.uc.CreateItem(s.T().Context(), usecase.CreateMenuItemParams{
			CategoryID: uuid.New(),
			Name:       "Tiramisu",
			Price:      "7",
		})
		s.ErrorIs(err, usecase.ErrCategoryNotFound)
	})

	s.Run("missing price fails validation", func() {
		categoryID := s.createCategory("Dolci", 1)
		_, err := s.uc.CreateItem(s.T().Context(), usecase.CreateMenuItemParams{
			CategoryID: categoryID,
			Name:       "Tiramisu",
		})
		s.ErrorIs(err, usecase.ErrMenuValidationFailed)
	})

	s.Run("update and delete honor not found", func() {
		_, err := s.uc.UpdateItem(s.T().Context(), uuid.New(), usecase.UpdateMenuItemParams{Name: "x", Price: "1"})
		s.ErrorIs(err, usecase.ErrMenuItemNotFound)

		s.ErrorIs(s.uc.DeleteItem(s.T().Context(), uuid.New()), usecase.ErrMenuItemNotFound)
	})
}
