package models

import "time"

// Address belongs to exactly one user. At most one address per user may
// have IsDefault set at any time.
type Address struct {
	AddressID   string    `json:"addressid" bson:"addressid"`
	UserID      string    `json:"userid" bson:"userid"`
	FullAddress string    `json:"full_address" bson:"full_address"`
	City        string    `json:"city" bson:"city"`
	PostalCode  string    `json:"postal_code" bson:"postal_code"`
	IsDefault   bool      `json:"is_default" bson:"is_default"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}
