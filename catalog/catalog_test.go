package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"drop-service/catalog"
	"drop-service/models"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	cat, err := catalog.Load(filepath.Join("testdata", "products.json"))

	assert.NoError(t, err)
	assert.Len(t, cat.Items(), 2)

	item, ok := cat.ItemByID("design-001")
	assert.True(t, ok)
	assert.Equal(t, "Monochrome Orbit", item.Name)
	assert.Equal(t, int64(4200), item.PriceCents)
	assert.Equal(t, int64(4013), item.SizeMap["M"].VariantID)

	_, ok = cat.ItemByID("design-999")
	assert.False(t, ok)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := catalog.Load(filepath.Join("testdata", "nope.json"))
	assert.Error(t, err)
}

func TestLoad_RejectsEntryWithoutSizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	err := os.WriteFile(path, []byte(`[{"id":"design-003","name":"No Sizes","price_cents":1000,"currency":"usd","print_file_url":"x","size_map":{}}]`), 0o644)
	assert.NoError(t, err)

	_, err = catalog.Load(path)
	assert.Error(t, err)
}

func TestNewStatic(t *testing.T) {
	cat := catalog.NewStatic([]models.Item{
		{ID: "a", SizeMap: map[string]models.SizeVariant{"M": {VariantID: 1}}},
		{ID: "b", SizeMap: map[string]models.SizeVariant{"M": {VariantID: 2}}},
	})

	assert.Len(t, cat.Items(), 2)
	item, ok := cat.ItemByID("b")
	assert.True(t, ok)
	assert.Equal(t, int64(2), item.SizeMap["M"].VariantID)
}
