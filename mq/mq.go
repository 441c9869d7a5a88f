// Package mq pushes order lifecycle events through Redis pub/sub so other
// processes (and the admin live feed) see them without polling Mongo.
package mq

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"milkbites/rdx"
)

const orderEventsChannel = "order-events"

// OrderEvent is the payload published on every order state change.
type OrderEvent struct {
	Type        string    `json:"type"` // order-created, order-status-updated, payment-proof-uploaded
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	UserID      string    `json:"user_id,omitempty"`
	Status      string    `json:"status,omitempty"`
	FinalAmount int64     `json:"final_amount,omitempty"`
	At          time.Time `json:"at"`
}

// Emit publishes an order event. Failures are logged and swallowed; the
// event stream is best effort and never blocks the request path.
func Emit(eventType string, event OrderEvent) {
	event.Type = eventType
	event.At = time.Now()

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("mq: failed to marshal %s event: %v", eventType, err)
		return
	}

	if err := rdx.Conn.Publish(context.Background(), orderEventsChannel, data).Err(); err != nil {
		log.Printf("mq: failed to publish %s event: %v", eventType, err)
	}
}

// StartOrderEventsWorker subscribes to the order events channel and hands
// each raw payload to relay. It runs until the process exits.
func StartOrderEventsWorker(relay func(data []byte)) {
	sub := rdx.Conn.Subscribe(context.Background(), orderEventsChannel)
	ch := sub.Channel()

	log.Println("mq: listening for order events")

	for msg := range ch {
		relay([]byte(msg.Payload))
	}
}
