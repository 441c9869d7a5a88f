package admin

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"milkbites/db"
	"milkbites/models"
	"milkbites/mq"
	"milkbites/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"
)

// GetAllOrders returns every order, newest first, for the back office.
func GetAllOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	findOpts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := db.OrderCollection.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		log.Println("GetAllOrders Find error:", err)
		http.Error(w, "Could not retrieve orders", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		log.Println("GetAllOrders cursor.All error:", err)
		http.Error(w, "Error reading order data", http.StatusInternalServerError)
		return
	}
	if len(orders) == 0 {
		orders = []models.Order{}
	}

	utils.RespondWithJSON(w, http.StatusOK, orders)
}

// UpdateOrderStatus moves an order through its lifecycle:
// pending, confirmed, processing, completed, cancelled.
func UpdateOrderStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if !models.ValidOrderStatus(input.Status) {
		http.Error(w, "Invalid order status", http.StatusBadRequest)
		return
	}

	orderID := ps.ByName("orderid")
	result, err := db.OrderCollection.UpdateOne(ctx,
		bson.M{"orderid": orderID},
		bson.M{"$set": bson.M{"status": input.Status, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		log.Println("UpdateOrderStatus UpdateOne error:", err)
		http.Error(w, "Failed to update order", http.StatusInternalServerError)
		return
	}
	if result.MatchedCount == 0 {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	mq.Emit("order-status-updated", mq.OrderEvent{
		OrderID: orderID,
		Status:  input.Status,
	})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Order status updated"})
}

// InitAdmin bootstraps the first admin account. No-op when one exists.
func InitAdmin(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err := db.UserCollection.FindOne(ctx, bson.M{"role": "admin"}).Err()
	if err == nil {
		utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Admin already exists"})
		return
	}
	if err != mongo.ErrNoDocuments {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	password := "admin123"
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Failed to hash password", http.StatusInternalServerError)
		return
	}

	adminUser := models.User{
		UserID:    uuid.NewString(),
		Email:     "admin@milkbites.com",
		WhatsApp:  "08123456789",
		FullName:  "Admin Milkbites",
		Password:  string(hashedPassword),
		Role:      []string{"admin", "user"},
		CreatedAt: time.Now().UTC(),
	}

	if _, err := db.UserCollection.InsertOne(ctx, adminUser); err != nil {
		http.Error(w, "Failed to create admin", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message":  "Admin created",
		"whatsapp": adminUser.WhatsApp,
		"password": password,
	})
}
