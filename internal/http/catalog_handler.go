package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mood-filter/internal/catalog"
)

// CatalogHandler expone el catalogo de categorias.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: c}
}

// List maneja GET /catalog.
func (h *CatalogHandler) List(c *gin.Context) {
	if h.catalog == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog not configured"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": h.catalog.Entries()})
}
