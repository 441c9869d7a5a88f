package models

import "time"

// Discount types.
const (
	DiscountPercentage = "percentage"
	DiscountFixed      = "fixed"
)

// Discount is a promo code. Codes are unique and case-sensitive. Value is
// a whole-number percent for percentage discounts, rupiah for fixed ones.
// ValidFrom/ValidUntil are inclusive ISO-8601 calendar dates; empty means
// unbounded on that side.
type Discount struct {
	DiscountID  string    `json:"discountid" bson:"discountid"`
	Code        string    `json:"code" bson:"code"`
	Type        string    `json:"discount_type" bson:"discount_type"`
	Value       int64     `json:"discount_value" bson:"discount_value"`
	MinPurchase int64     `json:"min_purchase" bson:"min_purchase"`
	ValidFrom   string    `json:"valid_from,omitempty" bson:"valid_from,omitempty"`
	ValidUntil  string    `json:"valid_until,omitempty" bson:"valid_until,omitempty"`
	Active      bool      `json:"active" bson:"active"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
