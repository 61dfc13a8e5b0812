package api

import (
	"errors"
	"net/http"

	reqdto "tavola-api/internal/handler/dto/request"
	"tavola-api/internal/handler/httperr"
	"tavola-api/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MenuHandler struct {
	menuUseCase usecase.MenuUseCase
}

func NewMenuHandler(menuUseCase usecase.MenuUseCase) *MenuHandler {
	return &MenuHandler{menuUseCase: menuUseCase}
}

// @Summary Get menu
// @Description Full menu, categories with nested items, in display order
// @Tags menu
// @Produce json
// @Success 200 {array} readmodel.MenuCategoryRM
// @Router /menu [get]
func (h *MenuHandler) GetMenu(c *gin.Context) {
	categories, err := h.menuUseCase.GetMenu(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *MenuHandler) CreateCategory(c *gin.Context) {
	var req reqdto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	category, err := h.menuUseCase.CreateCategory(c.Request.Context(), req.ToParams())
	if err != nil {
		h.writeMenuError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *MenuHandler) UpdateCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu category not found"})
		return
	}

	var req reqdto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	category, err := h.menuUseCase.UpdateCategory(c.Request.Context(), id, req.ToParams())
	if err != nil {
		h.writeMenuError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *MenuHandler) DeleteCategory(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu category not found"})
		return
	}

	if err := h.menuUseCase.DeleteCategory(c.Request.Context(), id); err != nil {
		h.writeMenuError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *MenuHandler) CreateItem(c *gin.Context) {
	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	item, err := h.menuUseCase.CreateItem(c.Request.Context(), req.ToParams())
	if err != nil {
		h.writeMenuError(c, err)
		return
	}

	c.JSON(http.StatusCreated, item)
}

func (h *MenuHandler) UpdateItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	var req reqdto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	item, err := h.menuUseCase.UpdateItem(c.Request.Context(), id, req.ToParams())
	if err != nil {
		h.writeMenuError(c, err)
		return
	}

	c.JSON(http.StatusOK, item)
}

func (h *MenuHandler) DeleteItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}

	if err := h.menuUseCase.DeleteItem(c.Request.Context(), id); err != nil {
		h.writeMenuError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *MenuHandler) writeMenuError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu category not found"})
	case errors.Is(err, usecase.ErrMenuItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
	case errors.Is(err, usecase.ErrMenuValidationFailed):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid menu data"})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
