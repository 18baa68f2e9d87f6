package main

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"quickbite/internal/models"

	"github.com/google/uuid"
)

const (
	maxBannerImages = 5
	maxImageSize    = 5 << 20
)

// uploadFilename builds a collision-resistant name from a nanosecond
// timestamp and a UUID, keeping only the original extension.
func uploadFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), uuid.NewString(), ext)
}

// sniffImage reads the first bytes of the file and checks for an image
// content type. The client-declared header is not trusted.
func sniffImage(file multipart.File) (bool, error) {
	buf := make([]byte, 512)
	n, err := file.Read(buf)
	if err != nil && err != io.EOF {
		return false, err
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		return false, err
	}
	return strings.HasPrefix(http.DetectContentType(buf[:n]), "image/"), nil
}

func (app *application) uploadImages(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		app.fail(w, http.StatusBadRequest, "invalid multipart request")
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		app.fail(w, http.StatusBadRequest, "no images uploaded")
		return
	}
	if len(files) > maxBannerImages {
		app.fail(w, http.StatusBadRequest, "a maximum of 5 images is allowed")
		return
	}

	uploaded := make([]string, 0, len(files))
	for _, header := range files {
		if header.Size > maxImageSize {
			app.fail(w, http.StatusBadRequest, "each image must be 5MB or smaller")
			return
		}

		file, err := header.Open()
		if err != nil {
			app.serverError(w, err)
			return
		}

		ok, err := sniffImage(file)
		if err != nil {
			file.Close()
			app.serverError(w, err)
			return
		}
		if !ok {
			file.Close()
			app.fail(w, http.StatusBadRequest, "only image files are allowed")
			return
		}

		name := uploadFilename(header.Filename)
		dst, err := os.Create(filepath.Join(app.uploadDir, name))
		if err != nil {
			file.Close()
			app.serverError(w, err)
			return
		}
		_, err = io.Copy(dst, file)
		dst.Close()
		file.Close()
		if err != nil {
			app.serverError(w, err)
			return
		}

		uploaded = append(uploaded, name)
	}

	app.writeJSON(w, http.StatusOK, map[string]any{
		"success":       true,
		"uploadedFiles": uploaded,
	})
}

// serveUpload hands back a stored banner image. The name is reduced to
// its base to keep path traversal out of the upload directory.
func (app *application) serveUpload(w http.ResponseWriter, r *http.Request) {
	name := filepath.Base(r.URL.Query().Get(":file"))
	if name == "." || name == "/" {
		app.fail(w, http.StatusBadRequest, "invalid file name")
		return
	}
	http.ServeFile(w, r, filepath.Join(app.uploadDir, name))
}

type bannerForm struct {
	ImagesQuantity int      `json:"images_quantity"`
	ImagesName     []string `json:"images_name"`
}

// validBannerSet enforces images_quantity == len(images_name) <= 5.
func validBannerSet(quantity int, names []string) bool {
	return quantity == len(names) && quantity > 0 && quantity <= maxBannerImages
}

func (app *application) updateBanner(w http.ResponseWriter, r *http.Request) {
	sellerID, err := app.sellerFromSession(r)
	if err != nil {
		app.fail(w, http.StatusUnauthorized, "please log in as a seller")
		return
	}

	var form bannerForm
	if err := app.decodeJSON(r, &form); err != nil {
		app.fail(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if !validBannerSet(form.ImagesQuantity, form.ImagesName) {
		app.fail(w, http.StatusBadRequest, "images_quantity must match images_name and be at most 5")
		return
	}

	hotel, err := app.db.GetHotelBySeller(sellerID)
	if err != nil {
		if errors.Is(err, models.ErrNoRecord) {
			app.fail(w, http.StatusNotFound, "create a shop first")
			return
		}
		app.serverError(w, err)
		return
	}

	banner := models.SellerBanner{
		SellerID:       sellerID,
		HotelName:      hotel.HotelName,
		CityName:       hotel.CityName,
		ImagesQuantity: form.ImagesQuantity,
		ImagesName:     form.ImagesName,
	}
	if err := app.db.UpsertSellerBanner(banner); err != nil {
		app.serverError(w, err)
		return
	}

	app.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "banner updated",
	})
}

func (app *application) getBanners(w http.ResponseWriter, r *http.Request) {
	sellerID, err := app.sellerFromSession(r)
	if err != nil {
		app.fail(w, http.StatusUnauthorized, "please log in as a seller")
		return
	}

	banner, err := app.db.GetSellerBanner(sellerID)
	if errors.Is(err, models.ErrNoRecord) {
		app.writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"banners": nil,
		})
		return
	}
	if err != nil {
		app.serverError(w, err)
		return
	}
	app.writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"banners": banner,
	})
}
