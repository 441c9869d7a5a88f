package filemgr

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// Upload directories, relative to the working directory.
const (
	PaymentProofDir = "static/paymentproof"
	ProductPicDir   = "static/productpic"
)

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// SaveFile persists an uploaded file under folder with a generated name and
// returns the stored filename.
func SaveFile(file multipart.File, header *multipart.FileHeader, folder string) (string, error) {
	if err := ensureDir(folder); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	filename := uuid.NewString() + filepath.Ext(header.Filename)
	out, err := os.Create(filepath.Join(folder, filename))
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, file); err != nil {
		return "", err
	}

	return filename, nil
}

// SaveImageWithThumb decodes an uploaded image, stores the original as JPEG
// and writes a 300px-wide thumbnail next to it under thumb/. Returns the
// image and thumbnail paths relative to folder's static route.
func SaveImageWithThumb(file multipart.File, folder string) (string, string, error) {
	img, err := imaging.Decode(file)
	if err != nil {
		return "", "", fmt.Errorf("failed to decode image: %w", err)
	}

	uniqueID := uuid.NewString()
	fileName := uniqueID + ".jpg"

	thumbDir := filepath.Join(folder, "thumb")
	if err := ensureDir(thumbDir); err != nil {
		return "", "", fmt.Errorf("failed to create thumbnail directory: %w", err)
	}

	originalPath := filepath.Join(folder, fileName)
	if err := imaging.Save(img, originalPath); err != nil {
		return "", "", fmt.Errorf("failed to save original image: %w", err)
	}

	thumbImg := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumbImg, filepath.Join(thumbDir, fileName)); err != nil {
		return "", "", fmt.Errorf("failed to save thumbnail: %w", err)
	}

	return fileName, filepath.Join("thumb", fileName), nil
}
