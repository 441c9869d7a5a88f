package pricing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"milkbites/models"
)

func TestValidateDiscount(t *testing.T) {
	now := time.Date(2025, 1, 23, 15, 30, 0, 0, time.UTC)

	base := models.Discount{
		Code:        "HEMAT5",
		Type:        models.DiscountPercentage,
		Value:       5,
		MinPurchase: 1000000,
		Active:      true,
	}

	t.Run("nil discount is not found", func(t *testing.T) {
		_, err := ValidateDiscount(nil, 1200000, now)
		assert.ErrorIs(t, err, ErrDiscountNotFound)
	})

	t.Run("inactive discount is not found", func(t *testing.T) {
		d := base
		d.Active = false
		_, err := ValidateDiscount(&d, 1200000, now)
		assert.ErrorIs(t, err, ErrDiscountNotFound)
	})

	t.Run("valid percentage discount", func(t *testing.T) {
		d := base
		amount, err := ValidateDiscount(&d, 1200000, now)
		require.NoError(t, err)
		assert.Equal(t, int64(60000), amount)
	})

	t.Run("valid fixed discount", func(t *testing.T) {
		d := base
		d.Type = models.DiscountFixed
		d.Value = 75000
		amount, err := ValidateDiscount(&d, 1200000, now)
		require.NoError(t, err)
		assert.Equal(t, int64(75000), amount)
	})

	t.Run("below minimum purchase", func(t *testing.T) {
		d := base
		_, err := ValidateDiscount(&d, 500000, now)
		assert.ErrorIs(t, err, ErrBelowMinPurchase)
	})

	t.Run("not yet valid", func(t *testing.T) {
		d := base
		d.ValidFrom = "2025-02-01"
		_, err := ValidateDiscount(&d, 1200000, now)
		assert.ErrorIs(t, err, ErrDiscountNotYetValid)
	})

	t.Run("valid from today is inclusive", func(t *testing.T) {
		d := base
		d.ValidFrom = "2025-01-23"
		_, err := ValidateDiscount(&d, 1200000, now)
		assert.NoError(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		d := base
		d.ValidUntil = "2025-01-22"
		_, err := ValidateDiscount(&d, 1200000, now)
		assert.ErrorIs(t, err, ErrDiscountExpired)
	})

	t.Run("valid until today is inclusive", func(t *testing.T) {
		d := base
		d.ValidUntil = "2025-01-23"
		_, err := ValidateDiscount(&d, 1200000, now)
		assert.NoError(t, err)
	})

	t.Run("window bounds as RFC3339 timestamps compare on dates", func(t *testing.T) {
		d := base
		d.ValidFrom = "2025-01-23T23:00:00Z"
		_, err := ValidateDiscount(&d, 1200000, now)
		assert.NoError(t, err)
	})
}

func TestGenerateOrderNumber(t *testing.T) {
	date := time.Date(2025, 1, 23, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, "MB202501230004", GenerateOrderNumber(4, date))
	assert.Equal(t, "MB202501230001", GenerateOrderNumber(1, date))
	// the sequence never resets per day, so it simply keeps growing
	assert.Equal(t, "MB202501239999", GenerateOrderNumber(9999, date))
	assert.Equal(t, "MB2025012310000", GenerateOrderNumber(10000, date))
}
