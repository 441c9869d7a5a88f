package models

import "time"

// ShippingSettingsID is the fixed id of the singleton settings document.
const ShippingSettingsID = "shipping_settings"

// ShippingSettings holds the configurable delivery fees. The order
// creation path currently charges a flat fee and does not read
// JabodetabekFee; the two are kept separate on purpose.
type ShippingSettings struct {
	ID             string    `json:"id" bson:"id"`
	JabodetabekFee int64     `json:"jabodetabek_fee" bson:"jabodetabek_fee"`
	PickupFee      int64     `json:"pickup_fee" bson:"pickup_fee"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}
