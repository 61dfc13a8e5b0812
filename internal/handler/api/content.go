package api

import (
	"errors"
	"net/http"

	reqdto "tavola-api/internal/handler/dto/request"
	"tavola-api/internal/handler/httperr"
	"tavola-api/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ContentHandler struct {
	contentUseCase usecase.ContentUseCase
}

func NewContentHandler(contentUseCase usecase.ContentUseCase) *ContentHandler {
	return &ContentHandler{contentUseCase: contentUseCase}
}

// @Summary List content sections
// @Description All editorial sections the public pages render
// @Tags content
// @Produce json
// @Success 200 {array} readmodel.ContentSectionRM
// @Router /content [get]
func (h *ContentHandler) ListSections(c *gin.Context) {
	sections, err := h.contentUseCase.ListSections(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, sections)
}

func (h *ContentHandler) GetSection(c *gin.Context) {
	section, err := h.contentUseCase.GetSection(c.Request.Context(), c.Param("key"))
	if err != nil {
		h.writeContentError(c, err)
		return
	}

	c.JSON(http.StatusOK, section)
}

func (h *ContentHandler) UpsertSection(c *gin.Context) {
	var req reqdto.UpsertSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	section, err := h.contentUseCase.UpsertSection(c.Request.Context(), c.Param("key"), req.Payload)
	if err != nil {
		h.writeContentError(c, err)
		return
	}

	c.JSON(http.StatusOK, section)
}

func (h *ContentHandler) GetSettings(c *gin.Context) {
	settings, err := h.contentUseCase.GetSettings(c.Request.Context())
	if err != nil {
		h.writeContentError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *ContentHandler) UpdateSettings(c *gin.Context) {
	var req reqdto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	settings, err := h.contentUseCase.UpdateSettings(c.Request.Context(), req.ToParams())
	if err != nil {
		h.writeContentError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (h *ContentHandler) writeContentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrInvalidSection):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown content section"})
	case errors.Is(err, usecase.ErrSectionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Content section not found"})
	case errors.Is(err, usecase.ErrSettingsNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Settings not configured"})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
