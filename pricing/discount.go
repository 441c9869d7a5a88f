package pricing

import (
	"errors"
	"time"

	"milkbites/models"
)

// Discount validation failures.
var (
	ErrDiscountNotFound    = errors.New("discount code not found or inactive")
	ErrDiscountNotYetValid = errors.New("discount not yet valid")
	ErrDiscountExpired     = errors.New("discount has expired")
	ErrBelowMinPurchase    = errors.New("minimum purchase not met")
)

// ValidateDiscount checks a looked-up discount against an item total at a
// given moment and returns the discount amount. The caller resolves the
// code; a nil or inactive discount fails with ErrDiscountNotFound. The
// validity window is inclusive and compared on calendar dates, not
// timestamps.
func ValidateDiscount(d *models.Discount, total int64, now time.Time) (int64, error) {
	if d == nil || !d.Active {
		return 0, ErrDiscountNotFound
	}

	today := dateOnly(now)
	if d.ValidFrom != "" {
		from, err := parseDate(d.ValidFrom)
		if err == nil && today.Before(from) {
			return 0, ErrDiscountNotYetValid
		}
	}
	if d.ValidUntil != "" {
		until, err := parseDate(d.ValidUntil)
		if err == nil && today.After(until) {
			return 0, ErrDiscountExpired
		}
	}

	if total < d.MinPurchase {
		return 0, ErrBelowMinPurchase
	}

	return Amount(*d, total), nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// parseDate accepts a calendar date, optionally with a time part.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return dateOnly(t), nil
}
