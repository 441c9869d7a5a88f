package discounts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"milkbites/db"
	"milkbites/models"
	"milkbites/pricing"
	"milkbites/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// ValidateDiscount checks a code against a cart total before checkout.
// The code must match exactly (case-sensitive) and be active.
func ValidateDiscount(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input struct {
		Code  string `json:"code"`
		Total int64  `json:"total"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	var discount *models.Discount
	var d models.Discount
	err := db.DiscountCollection.FindOne(ctx, bson.M{"code": input.Code, "active": true}).Decode(&d)
	if err == nil {
		discount = &d
	}

	amount, err := pricing.ValidateDiscount(discount, input.Total, time.Now().UTC())
	if err != nil {
		status := http.StatusBadRequest
		msg := "Discount cannot be applied"
		switch {
		case errors.Is(err, pricing.ErrDiscountNotFound):
			status = http.StatusNotFound
			msg = "Invalid discount code"
		case errors.Is(err, pricing.ErrDiscountNotYetValid):
			msg = "Discount not yet valid"
		case errors.Is(err, pricing.ErrDiscountExpired):
			msg = "Discount has expired"
		case errors.Is(err, pricing.ErrBelowMinPurchase):
			msg = "Minimum purchase not met"
		}
		utils.RespondWithError(w, status, msg)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"valid":           true,
		"code":            input.Code,
		"discount_amount": amount,
	})
}
