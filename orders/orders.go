package orders

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"milkbites/cart"
	"milkbites/db"
	"milkbites/filemgr"
	"milkbites/models"
	"milkbites/mq"
	"milkbites/pricing"
	"milkbites/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// nextOrderSeq atomically increments the store-lifetime order counter.
// Two concurrent checkouts can never mint the same order number.
func nextOrderSeq(ctx context.Context) (int64, error) {
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var counter struct {
		Seq int64 `bson:"seq"`
	}
	err := db.CounterCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": "orders"},
		bson.M{"$inc": bson.M{"seq": 1}},
		opts,
	).Decode(&counter)
	return counter.Seq, err
}

// CreateOrder freezes the submitted items into an order, computes totals
// and clears the cart. Item prices arrive already frozen from the cart.
func CreateOrder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		Items           []models.CartItem `json:"items"`
		DeliveryType    string            `json:"delivery_type"`
		DeliveryAddress string            `json:"delivery_address"`
		PickupLocation  string            `json:"pickup_location"`
		PickupDate      string            `json:"pickup_date"`
		DiscountCode    string            `json:"discount_code"`
		Notes           string            `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if len(input.Items) == 0 {
		http.Error(w, "Order has no items", http.StatusBadRequest)
		return
	}
	if input.DeliveryType != models.DeliveryTypeDelivery && input.DeliveryType != models.DeliveryTypePickup {
		http.Error(w, "Invalid delivery type", http.StatusBadRequest)
		return
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 || item.Price < 0 {
			http.Error(w, "Missing or invalid fields", http.StatusBadRequest)
			return
		}
	}

	// Discount lookup; inactive or unknown codes silently apply nothing,
	// matching the storefront behavior.
	var discount *models.Discount
	if input.DiscountCode != "" {
		var d models.Discount
		err := db.DiscountCollection.FindOne(ctx, bson.M{"code": input.DiscountCode, "active": true}).Decode(&d)
		if err == nil {
			discount = &d
		} else if err != mongo.ErrNoDocuments {
			log.Println("CreateOrder discount lookup error:", err)
			http.Error(w, "Failed to create order", http.StatusInternalServerError)
			return
		}
	}

	totals := pricing.ComputeOrderTotals(input.Items, input.DeliveryType, discount)

	seq, err := nextOrderSeq(ctx)
	if err != nil {
		log.Println("CreateOrder counter error:", err)
		http.Error(w, "Failed to create order", http.StatusInternalServerError)
		return
	}

	now := time.Now().UTC()
	order := models.Order{
		OrderID:         uuid.NewString(),
		OrderNumber:     pricing.GenerateOrderNumber(seq, now),
		UserID:          userID,
		Items:           input.Items,
		TotalAmount:     totals.Total,
		ShippingFee:     totals.ShippingFee,
		DiscountAmount:  totals.DiscountAmount,
		FinalAmount:     totals.FinalAmount,
		DiscountCode:    input.DiscountCode,
		DeliveryType:    input.DeliveryType,
		DeliveryAddress: input.DeliveryAddress,
		PickupLocation:  input.PickupLocation,
		PickupDate:      input.PickupDate,
		Status:          models.OrderPending,
		Notes:           input.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if _, err := db.OrderCollection.InsertOne(ctx, order); err != nil {
		log.Println("CreateOrder InsertOne error:", err)
		http.Error(w, "Failed to create order", http.StatusInternalServerError)
		return
	}

	if err := cart.Clear(ctx, userID); err != nil {
		log.Println("CreateOrder cart clear error:", err)
	}

	mq.Emit("order-created", mq.OrderEvent{
		OrderID:     order.OrderID,
		OrderNumber: order.OrderNumber,
		UserID:      userID,
		Status:      order.Status,
		FinalAmount: order.FinalAmount,
	})

	utils.RespondWithJSON(w, http.StatusCreated, order)
}

// GetOrders lists the caller's orders, newest first.
func GetOrders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	findOpts := options.Find().SetSort(bson.M{"created_at": -1})
	cursor, err := db.OrderCollection.Find(ctx, bson.M{"userid": userID}, findOpts)
	if err != nil {
		log.Println("GetOrders Find error:", err)
		http.Error(w, "Could not retrieve orders", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		log.Println("GetOrders cursor.All error:", err)
		http.Error(w, "Error reading order data", http.StatusInternalServerError)
		return
	}
	if len(orders) == 0 {
		orders = []models.Order{}
	}

	utils.RespondWithJSON(w, http.StatusOK, orders)
}

// GetOrder returns one of the caller's orders.
func GetOrder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var order models.Order
	err := db.OrderCollection.FindOne(ctx, bson.M{
		"orderid": ps.ByName("orderid"),
		"userid":  userID,
	}).Decode(&order)
	if err != nil {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, order)
}

// UploadPaymentProof attaches a payment proof file to one of the caller's
// orders. The file is stored as an opaque blob on disk.
func UploadPaymentProof(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "Payment proof file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename, err := filemgr.SaveFile(file, header, filemgr.PaymentProofDir)
	if err != nil {
		log.Println("UploadPaymentProof save error:", err)
		http.Error(w, "Failed to store payment proof", http.StatusInternalServerError)
		return
	}

	result, err := db.OrderCollection.UpdateOne(ctx,
		bson.M{"orderid": ps.ByName("orderid"), "userid": userID},
		bson.M{"$set": bson.M{
			"payment_proof": "/static/paymentproof/" + filename,
			"updated_at":    time.Now().UTC(),
		}},
	)
	if err != nil {
		log.Println("UploadPaymentProof UpdateOne error:", err)
		http.Error(w, "Failed to update order", http.StatusInternalServerError)
		return
	}
	if result.MatchedCount == 0 {
		http.Error(w, "Order not found", http.StatusNotFound)
		return
	}

	mq.Emit("payment-proof-uploaded", mq.OrderEvent{
		OrderID: ps.ByName("orderid"),
		UserID:  userID,
	})

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Payment proof uploaded"})
}
