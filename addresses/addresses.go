package addresses

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

// clearDefaults unsets is_default on every address of the user. Combined
// with the follow-up set-one write this keeps at most one default; a crash
// in between can transiently leave zero defaults, never two.
func clearDefaults(ctx context.Context, userID string) error {
	_, err := db.AddressCollection.UpdateMany(ctx,
		bson.M{"userid": userID},
		bson.M{"$set": bson.M{"is_default": false}},
	)
	return err
}

// CreateAddress adds an address to the caller's address book. Setting
// is_default clears the flag on all other addresses first.
func CreateAddress(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		FullAddress string `json:"full_address"`
		City        string `json:"city"`
		PostalCode  string `json:"postal_code"`
		IsDefault   bool   `json:"is_default"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if input.FullAddress == "" || input.City == "" {
		http.Error(w, "Missing or invalid fields", http.StatusBadRequest)
		return
	}

	if input.IsDefault {
		if err := clearDefaults(ctx, userID); err != nil {
			log.Println("CreateAddress clearDefaults error:", err)
			http.Error(w, "Failed to save address", http.StatusInternalServerError)
			return
		}
	}

	address := models.Address{
		AddressID:   uuid.NewString(),
		UserID:      userID,
		FullAddress: input.FullAddress,
		City:        input.City,
		PostalCode:  input.PostalCode,
		IsDefault:   input.IsDefault,
		CreatedAt:   time.Now().UTC(),
	}

	if _, err := db.AddressCollection.InsertOne(ctx, address); err != nil {
		log.Println("CreateAddress InsertOne error:", err)
		http.Error(w, "Failed to save address", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, address)
}

// UpdateAddress edits one of the caller's addresses; promoting it to
// default demotes every other address.
func UpdateAddress(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var input struct {
		FullAddress string `json:"full_address"`
		City        string `json:"city"`
		PostalCode  string `json:"postal_code"`
		IsDefault   bool   `json:"is_default"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if input.IsDefault {
		if err := clearDefaults(ctx, userID); err != nil {
			log.Println("UpdateAddress clearDefaults error:", err)
			http.Error(w, "Failed to update address", http.StatusInternalServerError)
			return
		}
	}

	result, err := db.AddressCollection.UpdateOne(ctx,
		bson.M{"addressid": ps.ByName("addressid"), "userid": userID},
		bson.M{"$set": bson.M{
			"full_address": input.FullAddress,
			"city":         input.City,
			"postal_code":  input.PostalCode,
			"is_default":   input.IsDefault,
		}},
	)
	if err != nil {
		log.Println("UpdateAddress UpdateOne error:", err)
		http.Error(w, "Failed to update address", http.StatusInternalServerError)
		return
	}
	if result.MatchedCount == 0 {
		http.Error(w, "Address not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Address updated"})
}

// GetAddresses lists the caller's address book.
func GetAddresses(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	cursor, err := db.AddressCollection.Find(ctx, bson.M{"userid": userID})
	if err != nil {
		log.Println("GetAddresses Find error:", err)
		http.Error(w, "Could not retrieve addresses", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var addresses []models.Address
	if err := cursor.All(ctx, &addresses); err != nil {
		log.Println("GetAddresses cursor.All error:", err)
		http.Error(w, "Error reading address data", http.StatusInternalServerError)
		return
	}
	if len(addresses) == 0 {
		addresses = []models.Address{}
	}

	utils.RespondWithJSON(w, http.StatusOK, addresses)
}

// DeleteAddress removes one of the caller's addresses.
func DeleteAddress(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	result, err := db.AddressCollection.DeleteOne(ctx, bson.M{
		"addressid": ps.ByName("addressid"),
		"userid":    userID,
	})
	if err != nil {
		log.Println("DeleteAddress DeleteOne error:", err)
		http.Error(w, "Failed to delete address", http.StatusInternalServerError)
		return
	}
	if result.DeletedCount == 0 {
		http.Error(w, "Address not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Address deleted"})
}
