// Package pricing computes cart item prices, order totals, discount
// application and order numbering for the storefront. Everything here is
// pure: callers fetch product and discount documents and pass them in.
package pricing

import (
	"strings"

	"milkbites/models"
)

const (
	// KaastengelSurcharge is added once per selected variant name that
	// contains "Kaastengel".
	KaastengelSurcharge int64 = 10000

	// FlatDeliveryFee is charged on every delivery order. Pickup is free.
	// The configurable jabodetabek_fee in settings is not read here.
	FlatDeliveryFee int64 = 25000

	surchargeVariant = "Kaastengel"
)

// Selection is the normalized customization payload: a flat list of chosen
// variant names. Two wire shapes are accepted, see NormalizeSelection.
type Selection struct {
	Variants []string
}

// NormalizeSelection flattens a raw customization payload into a Selection.
// The new shape nests lists per variant type: {"variant_types": {"cookies":
// ["Kaastengel", ...]}}; only the "cookies" list carries surcharges. The
// legacy shape is a flat {"variants": [...]} where a bare string is treated
// as a one-element list. A non-empty variant_types map wins over variants.
// Unknown shapes normalize to an empty selection.
func NormalizeSelection(raw map[string]any) Selection {
	if raw == nil {
		return Selection{}
	}

	if vt, ok := raw["variant_types"].(map[string]any); ok && len(vt) > 0 {
		return Selection{Variants: toStringList(vt["cookies"])}
	}

	if v, ok := raw["variants"]; ok {
		return Selection{Variants: toStringList(v)}
	}

	return Selection{}
}

func toStringList(v any) []string {
	switch val := v.(type) {
	case string:
		return []string{val}
	case []string:
		return val
	case []any:
		var out []string
		for _, e := range val {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// ComputeItemPrice resolves the frozen unit price for a cart item: the
// product's base price plus the Kaastengel surcharge for each selected
// variant name containing the surcharge variant (case-sensitive substring
// match). Products without requires_customization always price at base,
// whatever the customization payload says. Inputs are never mutated.
func ComputeItemPrice(product models.Product, customization map[string]any) int64 {
	price := product.Price
	if !product.RequiresCustomization || customization == nil {
		return price
	}

	sel := NormalizeSelection(customization)
	for _, name := range sel.Variants {
		if strings.Contains(name, surchargeVariant) {
			price += KaastengelSurcharge
		}
	}
	return price
}

// Totals is the monetary breakdown of an order.
type Totals struct {
	Total          int64 `json:"total"`
	ShippingFee    int64 `json:"shipping_fee"`
	DiscountAmount int64 `json:"discount_amount"`
	FinalAmount    int64 `json:"final_amount"`
}

// ComputeOrderTotals sums the frozen item prices, applies the shipping fee
// for the delivery type and the discount, if any. A discount only counts
// when it is active and the item total meets its minimum purchase; validity
// dates are deliberately not checked here (the validate endpoint does
// that). Fixed discounts are uncapped, so FinalAmount can go negative.
func ComputeOrderTotals(items []models.CartItem, deliveryType string, discount *models.Discount) Totals {
	var total int64
	for _, item := range items {
		total += item.Price * int64(item.Quantity)
	}

	var shippingFee int64
	if deliveryType != models.DeliveryTypePickup {
		shippingFee = FlatDeliveryFee
	}

	var discountAmount int64
	if discount != nil && discount.Active && total >= discount.MinPurchase {
		discountAmount = Amount(*discount, total)
	}

	return Totals{
		Total:          total,
		ShippingFee:    shippingFee,
		DiscountAmount: discountAmount,
		FinalAmount:    total + shippingFee - discountAmount,
	}
}

// Amount computes the rupiah value of a discount against an item total.
// Percentage values are whole-number percents with integer division.
func Amount(d models.Discount, total int64) int64 {
	if d.Type == models.DiscountPercentage {
		return total * d.Value / 100
	}
	return d.Value
}
