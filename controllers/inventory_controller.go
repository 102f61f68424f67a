package controllers

import (
	"net/http"

	"drop-service/catalog"
	"drop-service/repository"

	"github.com/gin-gonic/gin"
)

// InventoryController exposes the read-only sale-status diagnostic. The UI
// uses it to grey out sold items; the authoritative decision never reads it.
type InventoryController struct {
	catalog catalog.Catalog
	repo    repository.InventoryRepository
}

// NewInventoryController creates a new InventoryController.
func NewInventoryController(cat catalog.Catalog, repo repository.InventoryRepository) *InventoryController {
	return &InventoryController{catalog: cat, repo: repo}
}

// Status handles GET /inventory-status
func (ic *InventoryController) Status(ctx *gin.Context) {
	items := ic.catalog.Items()
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}

	statuses, err := ic.repo.Statuses(ctx.Request.Context(), ids)
	if err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "Inventory store unavailable"})
		return
	}

	ctx.JSON(http.StatusOK, statuses)
}
