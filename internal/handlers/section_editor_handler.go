package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/niko9090/glos-italy-website-sub000/internal/models"
	"github.com/niko9090/glos-italy-website-sub000/internal/service"
	"github.com/niko9090/glos-italy-website-sub000/pkg/logger"
)

// SectionEditorHandler exposes the section mutations used by the editing
// overlay: add, update, delete, duplicate and the two reorder moves.
type SectionEditorHandler struct {
	editor *service.SectionEditorService
}

func NewSectionEditorHandler(editor *service.SectionEditorService) *SectionEditorHandler {
	return &SectionEditorHandler{editor: editor}
}

// AddSection appends a new section to a page.
// POST /api/admin/pages/:id/sections
func (h *SectionEditorHandler) AddSection(c *gin.Context) {
	pageID, ok := h.pageID(c)
	if !ok {
		return
	}

	var req models.AddSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	page, err := h.editor.AddSection(pageID, req)
	if err != nil {
		h.respondError(c, err, pageID, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

// UpdateSection applies a partial update to one section.
// PUT /api/admin/pages/:id/sections/:key
func (h *SectionEditorHandler) UpdateSection(c *gin.Context) {
	pageID, key, ok := h.pageIDAndKey(c)
	if !ok {
		return
	}

	var req models.UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	page, err := h.editor.UpdateSection(pageID, key, req)
	if err != nil {
		h.respondError(c, err, pageID, key)
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

// DeleteSection removes one section by key.
// DELETE /api/admin/pages/:id/sections/:key
func (h *SectionEditorHandler) DeleteSection(c *gin.Context) {
	pageID, key, ok := h.pageIDAndKey(c)
	if !ok {
		return
	}

	page, err := h.editor.DeleteSection(pageID, key)
	if err != nil {
		h.respondError(c, err, pageID, key)
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

// MoveSectionUp swaps a section with its predecessor.
// POST /api/admin/pages/:id/sections/:key/move-up
func (h *SectionEditorHandler) MoveSectionUp(c *gin.Context) {
	pageID, key, ok := h.pageIDAndKey(c)
	if !ok {
		return
	}

	page, err := h.editor.MoveSectionUp(pageID, key)
	if err != nil {
		h.respondError(c, err, pageID, key)
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

// MoveSectionDown swaps a section with its successor.
// POST /api/admin/pages/:id/sections/:key/move-down
func (h *SectionEditorHandler) MoveSectionDown(c *gin.Context) {
	pageID, key, ok := h.pageIDAndKey(c)
	if !ok {
		return
	}

	page, err := h.editor.MoveSectionDown(pageID, key)
	if err != nil {
		h.respondError(c, err, pageID, key)
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

// DuplicateSection inserts a copy of a section after the original.
// POST /api/admin/pages/:id/sections/:key/duplicate
func (h *SectionEditorHandler) DuplicateSection(c *gin.Context) {
	pageID, key, ok := h.pageIDAndKey(c)
	if !ok {
		return
	}

	page, err := h.editor.DuplicateSection(pageID, key)
	if err != nil {
		h.respondError(c, err, pageID, key)
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

func (h *SectionEditorHandler) pageID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page id"})
		return 0, false
	}
	return uint(id), true
}

func (h *SectionEditorHandler) pageIDAndKey(c *gin.Context) (uint, string, bool) {
	pageID, ok := h.pageID(c)
	if !ok {
		return 0, "", false
	}

	key := c.Param("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "section key is required"})
		return 0, "", false
	}
	return pageID, key, true
}

func (h *SectionEditorHandler) respondError(c *gin.Context, err error, pageID uint, key string) {
	switch {
	case errors.Is(err, service.ErrMutationInFlight):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrSectionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnknownSectionType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "page not found"})
	default:
		logger.Error(err, "Section mutation failed", map[string]interface{}{
			"page_id":     pageID,
			"section_key": key,
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update sections"})
	}
}
