package cart

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"milkbites/db"
	"milkbites/models"
	"milkbites/pricing"
	"milkbites/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetCart returns the user's cart, creating an empty one on first access.
func GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	cart, err := loadOrCreateCart(ctx, userID)
	if err != nil {
		log.Println("GetCart error:", err)
		http.Error(w, "Could not retrieve cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, cart)
}

func loadOrCreateCart(ctx context.Context, userID string) (models.Cart, error) {
	var cart models.Cart
	err := db.CartCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&cart)
	if err == mongo.ErrNoDocuments {
		cart = models.Cart{
			CartID:    uuid.NewString(),
			UserID:    userID,
			Items:     []models.CartItem{},
			UpdatedAt: time.Now().UTC(),
		}
		_, err = db.CartCollection.InsertOne(ctx, cart)
	}
	if cart.Items == nil {
		cart.Items = []models.CartItem{}
	}
	return cart, err
}

// AddToCart resolves the unit price once, customization surcharge included,
// and freezes it on the item. An item with the same product and an
// identical customization payload merges by incrementing quantity.
func AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		ProductID     string         `json:"product_id"`
		Quantity      int            `json:"quantity"`
		Customization map[string]any `json:"customization"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if input.ProductID == "" || input.Quantity <= 0 {
		http.Error(w, "Missing or invalid fields", http.StatusBadRequest)
		return
	}

	var product models.Product
	err := db.ProductCollection.FindOne(ctx, bson.M{"productid": input.ProductID}).Decode(&product)
	if err != nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	item := models.CartItem{
		ProductID:     input.ProductID,
		Name:          product.Name,
		Quantity:      input.Quantity,
		Customization: input.Customization,
		Price:         pricing.ComputeItemPrice(product, input.Customization),
	}

	cart, err := loadOrCreateCart(ctx, userID)
	if err != nil {
		log.Println("AddToCart load cart error:", err)
		http.Error(w, "Could not retrieve cart", http.StatusInternalServerError)
		return
	}

	merged := false
	for i, existing := range cart.Items {
		if existing.ProductID == item.ProductID && customizationKey(existing.Customization) == customizationKey(item.Customization) {
			cart.Items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, item)
	}

	_, err = db.CartCollection.UpdateOne(ctx,
		bson.M{"userid": userID},
		bson.M{"$set": bson.M{"items": cart.Items, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		log.Println("AddToCart UpdateOne error:", err)
		http.Error(w, "Failed to add to cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{"message": "Item added to cart"})
}

// customizationKey produces a canonical identity for a customization
// payload so decoded BSON and fresh JSON compare equal.
func customizationKey(c map[string]any) string {
	if len(c) == 0 {
		return ""
	}
	data, err := json.Marshal(c)
	if err != nil {
		return ""
	}
	return string(data)
}

// RemoveFromCart drops every cart line for the given product.
func RemoveFromCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	_, err := db.CartCollection.UpdateOne(ctx,
		bson.M{"userid": userID},
		bson.M{
			"$pull": bson.M{"items": bson.M{"product_id": ps.ByName("productid")}},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		log.Println("RemoveFromCart UpdateOne error:", err)
		http.Error(w, "Failed to remove item", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Item removed from cart"})
}

// ClearCart empties the user's cart.
func ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := Clear(ctx, userID); err != nil {
		log.Println("ClearCart error:", err)
		http.Error(w, "Failed to clear cart", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Cart cleared"})
}

// Clear empties a cart outside of a request, e.g. after checkout.
func Clear(ctx context.Context, userID string) error {
	_, err := db.CartCollection.UpdateOne(ctx,
		bson.M{"userid": userID},
		bson.M{"$set": bson.M{"items": []models.CartItem{}, "updated_at": time.Now().UTC()}},
	)
	return err
}
