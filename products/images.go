package products

import (
	"context"
	"log"
	"net/http"
	"time"

	"milkbites/db"
	"milkbites/filemgr"
	"milkbites/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// UploadProductImage accepts a multipart "image" file, stores the original
// plus a 300px thumbnail and records both URLs on the product.
func UploadProductImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	productID := ps.ByName("productid")

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !utils.ValidateImageFileType(w, header) {
		return
	}

	fileName, thumbName, err := filemgr.SaveImageWithThumb(file, filemgr.ProductPicDir)
	if err != nil {
		log.Println("UploadProductImage save error:", err)
		http.Error(w, "Failed to store image", http.StatusInternalServerError)
		return
	}

	imageURL := "/static/productpic/" + fileName
	thumbURL := "/static/productpic/" + thumbName

	result, err := db.ProductCollection.UpdateOne(ctx,
		bson.M{"productid": productID},
		bson.M{"$set": bson.M{"image_url": imageURL, "thumb_url": thumbURL}},
	)
	if err != nil {
		log.Println("UploadProductImage UpdateOne error:", err)
		http.Error(w, "Failed to update product", http.StatusInternalServerError)
		return
	}
	if result.MatchedCount == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	invalidateListCache()

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"image_url": imageURL,
		"thumb_url": thumbURL,
	})
}
