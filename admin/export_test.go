package admin

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"milkbites/models"
)

func TestBuildOrdersCSV(t *testing.T) {
	created := time.Date(2025, 1, 23, 10, 30, 0, 0, time.UTC)
	orders := []models.Order{
		{
			OrderNumber:  "MB202501230001",
			UserID:       "u1",
			TotalAmount:  550000,
			ShippingFee:  25000,
			FinalAmount:  575000,
			DeliveryType: models.DeliveryTypeDelivery,
			Status:       models.OrderPending,
			CreatedAt:    created,
		},
		{
			OrderNumber:  "MB202501230002",
			UserID:       "u2",
			TotalAmount:  95000,
			ShippingFee:  0,
			FinalAmount:  95000,
			DeliveryType: models.DeliveryTypePickup,
			Status:       models.OrderCompleted,
			CreatedAt:    created,
		},
	}
	names := map[string]string{"u1": "Budi Santoso"}

	data, err := buildOrdersCSV(orders, names)
	require.NoError(t, err)

	want := "Order Number,Date,Customer,Total Amount,Shipping Fee,Final Amount,Delivery Type,Status\n" +
		"MB202501230001,2025-01-23 10:30,Budi Santoso,550000,25000,575000,delivery,pending\n" +
		"MB202501230002,2025-01-23 10:30,Unknown,95000,0,95000,pickup,completed\n"
	assert.Equal(t, want, string(data))
}

func TestBuildOrdersCSVEmpty(t *testing.T) {
	data, err := buildOrdersCSV(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "Order Number,Date,Customer,Total Amount,Shipping Fee,Final Amount,Delivery Type,Status\n", string(data))
}
