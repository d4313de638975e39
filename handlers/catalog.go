package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"miohost/catalog"
)

// CatalogHandler exposes the static guest content to clients that render
// it outside a live session (onboarding screens, the desk console).
type CatalogHandler struct {
	Catalog *catalog.Catalog
}

// NewCatalogHandler wires a CatalogHandler.
func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{Catalog: c}
}

// GetChips returns the chip sets. With ?intent= it returns the
// contextual set for that intent, falling back to the quick chips.
func (h *CatalogHandler) GetChips(c *gin.Context) {
	if last := c.Query("intent"); last != "" {
		c.JSON(http.StatusOK, gin.H{"chips": h.Catalog.ChipsFor(last)})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"quick":     h.Catalog.QuickChips,
		"secondary": h.Catalog.SecondaryChips,
	})
}

// GetPlaces returns all points of interest.
func (h *CatalogHandler) GetPlaces(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"places": h.Catalog.Places})
}

// GetServices returns the bookable service definitions.
func (h *CatalogHandler) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": h.Catalog.Services})
}
