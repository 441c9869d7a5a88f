package models

import "time"

// CartItem is a snapshot line in a cart or order. Price is the resolved
// unit price, customization surcharge included, frozen at add time. Later
// product price changes never touch existing cart items or orders.
type CartItem struct {
	ProductID     string         `json:"product_id" bson:"product_id"`
	Name          string         `json:"name,omitempty" bson:"name,omitempty"`
	Quantity      int            `json:"quantity" bson:"quantity"`
	Customization map[string]any `json:"customization,omitempty" bson:"customization,omitempty"`
	Price         int64          `json:"price" bson:"price"`
}

// Cart is the single cart document per user.
type Cart struct {
	CartID    string     `json:"cartid" bson:"cartid"`
	UserID    string     `json:"userid" bson:"userid"`
	Items     []CartItem `json:"items" bson:"items"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updated_at"`
}
