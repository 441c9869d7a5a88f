package settings

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"milkbites/db"
	"milkbites/models"
	"milkbites/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func defaultShippingSettings() models.ShippingSettings {
	return models.ShippingSettings{
		ID:             models.ShippingSettingsID,
		JabodetabekFee: 25000,
		PickupFee:      0,
		UpdatedAt:      time.Now().UTC(),
	}
}

// GetShippingSettings returns the singleton settings document, creating
// it with defaults on first read.
func GetShippingSettings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var settings models.ShippingSettings
	err := db.SettingsCollection.FindOne(ctx, bson.M{"id": models.ShippingSettingsID}).Decode(&settings)
	if err == mongo.ErrNoDocuments {
		settings = defaultShippingSettings()
		if _, err := db.SettingsCollection.InsertOne(ctx, settings); err != nil {
			log.Println("GetShippingSettings InsertOne error:", err)
			http.Error(w, "Failed to initialize settings", http.StatusInternalServerError)
			return
		}
	} else if err != nil {
		log.Println("GetShippingSettings FindOne error:", err)
		http.Error(w, "Failed to load settings", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, settings)
}

// UpdateShippingSettings upserts the delivery fee configuration.
func UpdateShippingSettings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input struct {
		JabodetabekFee *int64 `json:"jabodetabek_fee"`
		PickupFee      *int64 `json:"pickup_fee"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	update := bson.M{"updated_at": time.Now().UTC()}
	if input.JabodetabekFee != nil {
		if *input.JabodetabekFee < 0 {
			http.Error(w, "Fee cannot be negative", http.StatusBadRequest)
			return
		}
		update["jabodetabek_fee"] = *input.JabodetabekFee
	}
	if input.PickupFee != nil {
		if *input.PickupFee < 0 {
			http.Error(w, "Fee cannot be negative", http.StatusBadRequest)
			return
		}
		update["pickup_fee"] = *input.PickupFee
	}

	_, err := db.SettingsCollection.UpdateOne(ctx,
		bson.M{"id": models.ShippingSettingsID},
		bson.M{"$set": update, "$setOnInsert": bson.M{"id": models.ShippingSettingsID}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		log.Println("UpdateShippingSettings UpdateOne error:", err)
		http.Error(w, "Failed to update settings", http.StatusInternalServerError)
		return
	}

	var settings models.ShippingSettings
	if err := db.SettingsCollection.FindOne(ctx, bson.M{"id": models.ShippingSettingsID}).Decode(&settings); err != nil {
		log.Println("UpdateShippingSettings FindOne error:", err)
		http.Error(w, "Failed to load settings", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, settings)
}
