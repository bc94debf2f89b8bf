package handlers

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/niko9090/glos-italy-website-sub000/internal/sections"
)

// SectionCatalogHandler lets the editing UI discover the available section
// types and their schemas.
type SectionCatalogHandler struct {
	registry *sections.Registry
}

func NewSectionCatalogHandler(registry *sections.Registry) *SectionCatalogHandler {
	return &SectionCatalogHandler{registry: registry}
}

// GetAvailableSections returns metadata for all visible section types.
// GET /api/admin/sections/available
func (h *SectionCatalogHandler) GetAvailableSections(c *gin.Context) {
	metadata := h.registry.ListMetadata()

	sort.Slice(metadata, func(i, j int) bool {
		if metadata[i].Category != metadata[j].Category {
			return metadata[i].Category < metadata[j].Category
		}
		return metadata[i].Type < metadata[j].Type
	})

	c.JSON(http.StatusOK, gin.H{"sections": metadata})
}
