package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jpmanalo/bakepos-counter/internal/application/service"
	"github.com/jpmanalo/bakepos-counter/internal/presentation/http/dto/response"
	"github.com/jpmanalo/bakepos-counter/pkg/apperror"
)

// CatalogHandler serves the product sections of the order screen.
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// GetCatalog returns the three product sections in display order.
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	sections, err := h.catalogService.Sections(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Catalog retrieved", gin.H{"sections": sections})
}

// Refresh reloads the catalog from the bakery backend.
func (h *CatalogHandler) Refresh(c *gin.Context) {
	if err := h.catalogService.Load(c.Request.Context()); err != nil {
		response.Error(c, apperror.NewAppError(502, "Failed to refresh catalog"))
		return
	}

	count, err := h.catalogService.ProductCount(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Catalog refreshed", gin.H{"products": count})
}
