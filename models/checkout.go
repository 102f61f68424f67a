package models

import (
	"fmt"
	"strconv"
)

// CheckoutRequest is the payload for POST /checkout.
type CheckoutRequest struct {
	ItemID string `json:"item_id" binding:"required"`
	Size   string `json:"size" binding:"required"`
}

// CheckoutResponse carries the provider-hosted checkout URL back to the caller.
type CheckoutResponse struct {
	CheckoutURL string `json:"checkout_url"`
}

// Metadata keys used to carry a CheckoutIntent through the Stripe checkout
// session. The webhook reconstructs the intent from these, so the confirmation
// path never has to re-query the catalog.
const (
	MetaItemID       = "item_id"
	MetaSize         = "size"
	MetaVariantID    = "variant_id"
	MetaPriceCents   = "price_cents"
	MetaPrintFileURL = "print_file_url"
)

// CheckoutIntent is everything needed to complete fulfillment after payment.
// It has no storage of its own; its only durability is the Stripe session's
// metadata blob.
type CheckoutIntent struct {
	ItemID       string
	Size         string
	VariantID    int64
	PriceCents   int64
	PrintFileURL string
}

// Metadata serializes the intent into the Stripe session metadata map.
func (i CheckoutIntent) Metadata() map[string]string {
	return map[string]string{
		MetaItemID:       i.ItemID,
		MetaSize:         i.Size,
		MetaVariantID:    strconv.FormatInt(i.VariantID, 10),
		MetaPriceCents:   strconv.FormatInt(i.PriceCents, 10),
		MetaPrintFileURL: i.PrintFileURL,
	}
}

// IntentFromMetadata rebuilds a CheckoutIntent from session metadata,
// validating that every field required for fulfillment is present.
func IntentFromMetadata(meta map[string]string) (CheckoutIntent, error) {
	var intent CheckoutIntent

	for _, key := range []string{MetaItemID, MetaSize, MetaVariantID, MetaPrintFileURL} {
		if meta[key] == "" {
			return intent, fmt.Errorf("missing metadata field %q", key)
		}
	}

	variantID, err := strconv.ParseInt(meta[MetaVariantID], 10, 64)
	if err != nil {
		return intent, fmt.Errorf("invalid metadata field %q: %v", MetaVariantID, err)
	}

	intent = CheckoutIntent{
		ItemID:       meta[MetaItemID],
		Size:         meta[MetaSize],
		VariantID:    variantID,
		PrintFileURL: meta[MetaPrintFileURL],
	}
	// Price is informational on the confirmation path; tolerate its absence.
	if raw := meta[MetaPriceCents]; raw != "" {
		if price, err := strconv.ParseInt(raw, 10, 64); err == nil {
			intent.PriceCents = price
		}
	}
	return intent, nil
}
