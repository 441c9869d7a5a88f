package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"milkbites/models"
)

func TestComputeItemPrice(t *testing.T) {
	hampers := models.Product{
		ProductID:             "p-hampers",
		Name:                  "Deluxe Hampers",
		Price:                 350000,
		Category:              "Hampers",
		RequiresCustomization: true,
	}
	babka := models.Product{
		ProductID: "p-babka",
		Name:      "Chocolate Babka",
		Price:     95000,
		Category:  "Babka",
	}

	tests := []struct {
		name          string
		product       models.Product
		customization map[string]any
		want          int64
	}{
		{
			name:    "plain product without customization",
			product: babka,
			want:    95000,
		},
		{
			name:    "non-customizable product ignores customization payload",
			product: babka,
			customization: map[string]any{
				"variant_types": map[string]any{"cookies": []any{"Kaastengel"}},
			},
			want: 95000,
		},
		{
			name:          "customizable product with nil customization",
			product:       hampers,
			customization: nil,
			want:          350000,
		},
		{
			name:    "one Kaastengel in cookies list",
			product: hampers,
			customization: map[string]any{
				"variant_types": map[string]any{"cookies": []any{"Kaastengel", "Nastar"}},
			},
			want: 350000 + 10000,
		},
		{
			name:    "two Kaastengel picks surcharge twice",
			product: hampers,
			customization: map[string]any{
				"variant_types": map[string]any{"cookies": []any{"Kaastengel", "Kaastengel Premium", "Putri Salju"}},
			},
			want: 350000 + 20000,
		},
		{
			name:    "substring match inside a longer variant name",
			product: hampers,
			customization: map[string]any{
				"variant_types": map[string]any{"cookies": []any{"Mini Kaastengel Box"}},
			},
			want: 350000 + 10000,
		},
		{
			name:    "case sensitive, lowercase does not match",
			product: hampers,
			customization: map[string]any{
				"variant_types": map[string]any{"cookies": []any{"kaastengel"}},
			},
			want: 350000,
		},
		{
			name:    "legacy variants list",
			product: hampers,
			customization: map[string]any{
				"variants": []any{"Kaastengel", "Nastar"},
			},
			want: 350000 + 10000,
		},
		{
			name:    "legacy bare string normalizes to one-element list",
			product: hampers,
			customization: map[string]any{
				"variants": "Kaastengel",
			},
			want: 350000 + 10000,
		},
		{
			name:    "non-empty variant_types shadows legacy variants",
			product: hampers,
			customization: map[string]any{
				"variant_types": map[string]any{"brownies": []any{"Fudge"}},
				"variants":      "Kaastengel",
			},
			want: 350000,
		},
		{
			name:    "empty variant_types falls through to legacy variants",
			product: hampers,
			customization: map[string]any{
				"variant_types": map[string]any{},
				"variants":      "Kaastengel",
			},
			want: 350000 + 10000,
		},
		{
			name:          "neither shape present",
			product:       hampers,
			customization: map[string]any{"note": "no nuts please"},
			want:          350000,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputeItemPrice(tc.product, tc.customization))
		})
	}
}

func TestComputeItemPriceDoesNotMutateInput(t *testing.T) {
	customization := map[string]any{"variants": "Kaastengel"}
	product := models.Product{Price: 100000, RequiresCustomization: true}

	ComputeItemPrice(product, customization)

	assert.Equal(t, map[string]any{"variants": "Kaastengel"}, customization)
	assert.Equal(t, int64(100000), product.Price)
}

func TestComputeOrderTotals(t *testing.T) {
	items := []models.CartItem{
		{ProductID: "p1", Quantity: 2, Price: 95000},
		{ProductID: "p2", Quantity: 1, Price: 360000},
	}
	// total = 2*95000 + 360000 = 550000

	t.Run("pickup has no shipping fee", func(t *testing.T) {
		got := ComputeOrderTotals(items, models.DeliveryTypePickup, nil)
		assert.Equal(t, Totals{Total: 550000, ShippingFee: 0, DiscountAmount: 0, FinalAmount: 550000}, got)
	})

	t.Run("delivery charges the flat fee", func(t *testing.T) {
		got := ComputeOrderTotals(items, models.DeliveryTypeDelivery, nil)
		assert.Equal(t, Totals{Total: 550000, ShippingFee: 25000, DiscountAmount: 0, FinalAmount: 575000}, got)
	})

	t.Run("percentage discount above minimum", func(t *testing.T) {
		items := []models.CartItem{{ProductID: "p1", Quantity: 1, Price: 1200000}}
		d := &models.Discount{
			Code: "HEMAT5", Type: models.DiscountPercentage, Value: 5,
			MinPurchase: 1000000, Active: true,
		}
		got := ComputeOrderTotals(items, models.DeliveryTypeDelivery, d)
		assert.Equal(t, int64(60000), got.DiscountAmount)
		assert.Equal(t, int64(1165000), got.FinalAmount)
	})

	t.Run("discount below minimum purchase is ignored", func(t *testing.T) {
		d := &models.Discount{
			Code: "HEMAT5", Type: models.DiscountPercentage, Value: 5,
			MinPurchase: 1000000, Active: true,
		}
		got := ComputeOrderTotals(items, models.DeliveryTypeDelivery, d)
		assert.Zero(t, got.DiscountAmount)
	})

	t.Run("inactive discount is ignored", func(t *testing.T) {
		d := &models.Discount{
			Code: "OLD", Type: models.DiscountFixed, Value: 50000,
			MinPurchase: 0, Active: false,
		}
		got := ComputeOrderTotals(items, models.DeliveryTypeDelivery, d)
		assert.Zero(t, got.DiscountAmount)
	})

	t.Run("fixed discount is uncapped and can push final negative", func(t *testing.T) {
		items := []models.CartItem{{ProductID: "p1", Quantity: 1, Price: 50000}}
		d := &models.Discount{
			Code: "MEGA", Type: models.DiscountFixed, Value: 100000,
			MinPurchase: 0, Active: true,
		}
		got := ComputeOrderTotals(items, models.DeliveryTypeDelivery, d)
		assert.Equal(t, int64(100000), got.DiscountAmount)
		assert.Equal(t, int64(-25000), got.FinalAmount)
	})

	t.Run("empty cart totals to the shipping fee", func(t *testing.T) {
		got := ComputeOrderTotals(nil, models.DeliveryTypeDelivery, nil)
		assert.Equal(t, Totals{Total: 0, ShippingFee: 25000, DiscountAmount: 0, FinalAmount: 25000}, got)
	})
}
