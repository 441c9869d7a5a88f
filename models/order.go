package models

import "time"

// Order statuses.
const (
	OrderPending    = "pending"
	OrderConfirmed  = "confirmed"
	OrderProcessing = "processing"
	OrderCompleted  = "completed"
	OrderCancelled  = "cancelled"
)

// Delivery types.
const (
	DeliveryTypeDelivery = "delivery"
	DeliveryTypePickup   = "pickup"
)

// Order is a finalized order with a frozen item snapshot.
// FinalAmount = TotalAmount + ShippingFee - DiscountAmount and may go
// negative when a fixed discount exceeds the rest; that is not clamped.
type Order struct {
	OrderID         string     `json:"orderid" bson:"orderid"`
	OrderNumber     string     `json:"order_number" bson:"order_number"`
	UserID          string     `json:"userid" bson:"userid"`
	Items           []CartItem `json:"items" bson:"items"`
	TotalAmount     int64      `json:"total_amount" bson:"total_amount"`
	ShippingFee     int64      `json:"shipping_fee" bson:"shipping_fee"`
	DiscountAmount  int64      `json:"discount_amount" bson:"discount_amount"`
	FinalAmount     int64      `json:"final_amount" bson:"final_amount"`
	DiscountCode    string     `json:"discount_code,omitempty" bson:"discount_code,omitempty"`
	DeliveryType    string     `json:"delivery_type" bson:"delivery_type"`
	DeliveryAddress string     `json:"delivery_address,omitempty" bson:"delivery_address,omitempty"`
	PickupLocation  string     `json:"pickup_location,omitempty" bson:"pickup_location,omitempty"`
	PickupDate      string     `json:"pickup_date,omitempty" bson:"pickup_date,omitempty"`
	PaymentProof    string     `json:"payment_proof,omitempty" bson:"payment_proof,omitempty"`
	Status          string     `json:"status" bson:"status"`
	Notes           string     `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" bson:"updated_at"`
}

// ValidOrderStatus reports whether s is one of the known statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderProcessing, OrderCompleted, OrderCancelled:
		return true
	}
	return false
}
