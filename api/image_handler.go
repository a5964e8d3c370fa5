package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/authorpages/author-site-backend/database"
	"github.com/authorpages/author-site-backend/errs"
	"github.com/authorpages/author-site-backend/models"
	"github.com/authorpages/author-site-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type imageHandler struct {
	responder   Responder
	logger      zerolog.Logger
	imageRepo   *database.ImageRepo
	objectStore services.ObjectStore
}

func newImageHandler(imageRepo *database.ImageRepo, objectStore services.ObjectStore) imageHandler {
	logger := log.With().Str("handlerName", "imageHandler").Logger()

	return imageHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		imageRepo:   imageRepo,
		objectStore: objectStore,
	}
}

// getAllImages lists the gallery records
// @Summary Get all images
// @Tags Gallery
// @Produce json
// @Success 200 {array} models.Image "Uploaded image records"
// @Router /images [get]
func (h imageHandler) getAllImages() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		images, err := h.imageRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewPersistenceError("list", "images", err))
			return
		}

		h.responder.WriteJSON(w, images)
	}
}

// signUpload issues a presigned PUT URL so the client can upload directly to
// the object store. The backend never sees the file bytes.
func (h imageHandler) signUpload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename := r.URL.Query().Get("filename")
		if filename == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing filename"))
			return
		}
		contentType := r.URL.Query().Get("type")
		if contentType == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing type"))
			return
		}

		key := services.NewObjectKey(filename)
		uploadURL, err := h.objectStore.PresignUpload(r.Context(), key, contentType)
		if err != nil {
			h.logger.Error().Err(err).Str("key", key).Msg("Failed to presign upload")
			h.responder.WriteError(w, errs.NewInternalError("failed to sign upload"))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"key": key,
			"url": uploadURL,
		})
	}
}

// completeUpload records a finished upload as a gallery image. Mirrors the
// upload collaborator's completion payload: name, url, key, size, type and
// the file's last-modified time.
func (h imageHandler) completeUpload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload uploadCompleteRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if err := validatePayload(payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		now := time.Now()
		updatedAt := now
		if payload.LastModified > 0 {
			updatedAt = time.UnixMilli(payload.LastModified)
		}

		image := models.Image{
			Name:      payload.Name,
			URL:       payload.URL,
			Key:       payload.Key,
			Size:      payload.Size,
			Type:      payload.Type,
			CreatedAt: now,
			UpdatedAt: updatedAt,
		}

		if err := h.imageRepo.Add(&image); err != nil {
			h.responder.WriteError(w, errs.NewPersistenceError("create", "images", err))
			return
		}

		h.logger.Info().Str("key", image.Key).Str("url", image.URL).Msg("Upload recorded")

		w.WriteHeader(http.StatusCreated)
		h.responder.WriteJSON(w, image)
	}
}

// deleteImage removes a gallery record and the stored object behind it.
// Deleting an id that no longer exists is a no-op success, matching post
// deletion semantics.
func (h imageHandler) deleteImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		imageID, err := parseID(chi.URLParam(r, "imageID"), "imageID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		image, err := h.imageRepo.FindByID(imageID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.responder.WriteJSON(w, map[string]string{
				"status":  "success",
				"message": "image deleted successfully",
			})
			return
		}
		if err != nil {
			h.responder.WriteError(w, errs.NewPersistenceError("find", "images", err))
			return
		}

		if image.Key != "" {
			if err := h.objectStore.Delete(r.Context(), image.Key); err != nil {
				h.logger.Error().Err(err).Str("key", image.Key).Msg("Failed to delete stored object")
				h.responder.WriteError(w, errs.NewInternalError("failed to delete stored object"))
				return
			}
		}

		if err := h.imageRepo.Delete(imageID); err != nil {
			h.responder.WriteError(w, errs.NewPersistenceError("delete", "images", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "image deleted successfully",
		})
	}
}
