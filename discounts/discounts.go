package discounts

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"milkbites/db"
	"milkbites/models"
	"milkbites/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// CreateDiscount registers a promo code. Admin only (enforced by routing).
func CreateDiscount(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var discount models.Discount
	if err := json.NewDecoder(r.Body).Decode(&discount); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if discount.Code == "" || (discount.Type != models.DiscountPercentage && discount.Type != models.DiscountFixed) {
		http.Error(w, "Missing or invalid fields", http.StatusBadRequest)
		return
	}

	// Codes are unique and case-sensitive
	if err := db.DiscountCollection.FindOne(ctx, bson.M{"code": discount.Code}).Err(); err == nil {
		http.Error(w, "Discount code already exists", http.StatusConflict)
		return
	}

	discount.DiscountID = uuid.NewString()
	discount.CreatedAt = time.Now().UTC()

	if _, err := db.DiscountCollection.InsertOne(ctx, discount); err != nil {
		log.Println("CreateDiscount InsertOne error:", err)
		http.Error(w, "Failed to create discount", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, discount)
}

// GetDiscounts lists all promo codes for the back office.
func GetDiscounts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := db.DiscountCollection.Find(ctx, bson.M{})
	if err != nil {
		log.Println("GetDiscounts Find error:", err)
		http.Error(w, "Could not retrieve discounts", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var items []models.Discount
	if err := cursor.All(ctx, &items); err != nil {
		log.Println("GetDiscounts cursor.All error:", err)
		http.Error(w, "Error reading discount data", http.StatusInternalServerError)
		return
	}
	if len(items) == 0 {
		items = []models.Discount{}
	}

	utils.RespondWithJSON(w, http.StatusOK, items)
}

// UpdateDiscount replaces a promo code's rule fields.
func UpdateDiscount(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input models.Discount
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	result, err := db.DiscountCollection.UpdateOne(ctx,
		bson.M{"discountid": ps.ByName("discountid")},
		bson.M{"$set": bson.M{
			"code":           input.Code,
			"discount_type":  input.Type,
			"discount_value": input.Value,
			"min_purchase":   input.MinPurchase,
			"valid_from":     input.ValidFrom,
			"valid_until":    input.ValidUntil,
			"active":         input.Active,
		}},
	)
	if err != nil {
		log.Println("UpdateDiscount UpdateOne error:", err)
		http.Error(w, "Failed to update discount", http.StatusInternalServerError)
		return
	}
	if result.MatchedCount == 0 {
		http.Error(w, "Discount not found", http.StatusNotFound)
		return
	}

	var updated models.Discount
	if err := db.DiscountCollection.FindOne(ctx, bson.M{"discountid": ps.ByName("discountid")}).Decode(&updated); err != nil {
		http.Error(w, "Discount not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, updated)
}
