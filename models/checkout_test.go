package models_test

import (
	"testing"

	"drop-service/models"

	"github.com/stretchr/testify/assert"
)

func TestIntentFromMetadata(t *testing.T) {
	intent := models.CheckoutIntent{
		ItemID:       "design-007",
		Size:         "M",
		VariantID:    112,
		PriceCents:   4200,
		PrintFileURL: "https://cdn.example.com/prints/design-007.png",
	}

	got, err := models.IntentFromMetadata(intent.Metadata())

	assert.NoError(t, err)
	assert.Equal(t, intent, got)
}

func TestIntentFromMetadata_MissingRequiredField(t *testing.T) {
	for _, key := range []string{models.MetaItemID, models.MetaSize, models.MetaVariantID, models.MetaPrintFileURL} {
		meta := models.CheckoutIntent{
			ItemID:       "design-007",
			Size:         "M",
			VariantID:    112,
			PrintFileURL: "https://cdn.example.com/x.png",
		}.Metadata()
		delete(meta, key)

		_, err := models.IntentFromMetadata(meta)
		assert.Error(t, err, "expected error with %s removed", key)
	}
}

func TestIntentFromMetadata_BadVariantID(t *testing.T) {
	meta := models.CheckoutIntent{
		ItemID:       "design-007",
		Size:         "M",
		VariantID:    112,
		PrintFileURL: "https://cdn.example.com/x.png",
	}.Metadata()
	meta[models.MetaVariantID] = "not-a-number"

	_, err := models.IntentFromMetadata(meta)
	assert.Error(t, err)
}

func TestIntentFromMetadata_PriceOptional(t *testing.T) {
	meta := models.CheckoutIntent{
		ItemID:       "design-007",
		Size:         "M",
		VariantID:    112,
		PriceCents:   4200,
		PrintFileURL: "https://cdn.example.com/x.png",
	}.Metadata()
	delete(meta, models.MetaPriceCents)

	got, err := models.IntentFromMetadata(meta)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), got.PriceCents)
}

func TestExternalOrderID(t *testing.T) {
	assert.Equal(t, "DROP-design-007-cs_live_1", models.ExternalOrderID("design-007", "cs_live_1"))
}
