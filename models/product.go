package models

import "time"

// Product is a catalog entry. Prices are integer rupiah; there is no
// subunit in this currency.
type Product struct {
	ProductID             string         `json:"productid" bson:"productid"`
	Name                  string         `json:"name" bson:"name"`
	Description           string         `json:"description" bson:"description"`
	Price                 int64          `json:"price" bson:"price"`
	Category              string         `json:"category" bson:"category"` // Cookies, Babka, Cake, Hampers
	ImageURL              string         `json:"image_url" bson:"image_url"`
	ThumbURL              string         `json:"thumb_url,omitempty" bson:"thumb_url,omitempty"`
	RequiresCustomization bool           `json:"requires_customization" bson:"requires_customization"`
	CustomizationOptions  map[string]any `json:"customization_options,omitempty" bson:"customization_options,omitempty"`
	Stock                 int            `json:"stock" bson:"stock"`
	Active                bool           `json:"active" bson:"active"`
	CreatedAt             time.Time      `json:"created_at" bson:"created_at"`
}
