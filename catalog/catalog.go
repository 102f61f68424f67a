package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"drop-service/models"
)

// Catalog is the read-only product listing the core consumes. It is refreshed
// out of band by the import tooling; nothing in this service mutates it.
type Catalog interface {
	// ItemByID looks up a single item by its identifier.
	ItemByID(id string) (models.Item, bool)

	// Items returns every catalog entry in file order.
	Items() []models.Item
}

type staticCatalog struct {
	byID  map[string]models.Item
	order []models.Item
}

// NewStatic builds an in-memory catalog from a fixed item list.
func NewStatic(items []models.Item) Catalog {
	byID := make(map[string]models.Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return &staticCatalog{byID: byID, order: items}
}

// Load reads the product catalog from a JSON file.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var items []models.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	for _, item := range items {
		if item.ID == "" {
			return nil, fmt.Errorf("catalog entry missing id")
		}
		if len(item.SizeMap) == 0 {
			return nil, fmt.Errorf("catalog entry %q has no size map", item.ID)
		}
	}

	return NewStatic(items), nil
}

func (c *staticCatalog) ItemByID(id string) (models.Item, bool) {
	item, ok := c.byID[id]
	return item, ok
}

func (c *staticCatalog) Items() []models.Item {
	return c.order
}
