package handler

import (
	"net/http"

	"descentcheck/internal/catalog"
)

// CatalogHandler serves the static question catalog
type CatalogHandler struct {
	catalog *catalog.Catalog
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

// List handles GET /v1/questions
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	questions := h.catalog.All()
	if section := r.URL.Query().Get("section"); section != "" {
		questions = h.catalog.BySection(section)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": questions,
		"count":     len(questions),
	})
}
