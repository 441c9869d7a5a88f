package admin

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"time"

	"milkbites/db"
	"milkbites/models"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

var exportHeader = []string{
	"Order Number", "Date", "Customer", "Total Amount",
	"Shipping Fee", "Final Amount", "Delivery Type", "Status",
}

// buildOrdersCSV renders orders to CSV bytes; names maps user id to the
// customer's full name, missing entries render as Unknown.
func buildOrdersCSV(orders []models.Order, names map[string]string) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(exportHeader); err != nil {
		return nil, err
	}

	for _, order := range orders {
		customer := names[order.UserID]
		if customer == "" {
			customer = "Unknown"
		}
		record := []string{
			order.OrderNumber,
			order.CreatedAt.Format("2006-01-02 15:04"),
			customer,
			fmt.Sprintf("%d", order.TotalAmount),
			fmt.Sprintf("%d", order.ShippingFee),
			fmt.Sprintf("%d", order.FinalAmount),
			order.DeliveryType,
			order.Status,
		}
		if err := writer.Write(record); err != nil {
			return nil, err
		}
	}

	writer.Flush()
	return buf.Bytes(), writer.Error()
}

// ExportOrdersCSV streams every order as a CSV download.
func ExportOrdersCSV(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	cursor, err := db.OrderCollection.Find(ctx, bson.M{})
	if err != nil {
		log.Println("ExportOrdersCSV Find error:", err)
		http.Error(w, "Could not retrieve orders", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		log.Println("ExportOrdersCSV cursor.All error:", err)
		http.Error(w, "Error reading order data", http.StatusInternalServerError)
		return
	}

	// Resolve customer names in one query instead of per order
	userIDs := make([]string, 0, len(orders))
	seen := make(map[string]bool)
	for _, order := range orders {
		if !seen[order.UserID] {
			seen[order.UserID] = true
			userIDs = append(userIDs, order.UserID)
		}
	}

	names := make(map[string]string, len(userIDs))
	if len(userIDs) > 0 {
		userCursor, err := db.UserCollection.Find(ctx, bson.M{"userid": bson.M{"$in": userIDs}})
		if err == nil {
			var users []models.User
			if err := userCursor.All(ctx, &users); err == nil {
				for _, u := range users {
					names[u.UserID] = u.FullName
				}
			}
			userCursor.Close(ctx)
		}
	}

	data, err := buildOrdersCSV(orders, names)
	if err != nil {
		log.Println("ExportOrdersCSV build error:", err)
		http.Error(w, "Failed to build CSV", http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("orders_%s.csv", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.Write(data)
}
