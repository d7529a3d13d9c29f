package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbercraft/internal/audit"
	"github.com/BruksfildServices01/barbercraft/internal/httperr"
	"github.com/BruksfildServices01/barbercraft/internal/httpresp"
	"github.com/BruksfildServices01/barbercraft/internal/middleware"
	"github.com/BruksfildServices01/barbercraft/internal/models"
	"github.com/BruksfildServices01/barbercraft/internal/storage"
)

const imageField = "image"

// ======================================================
// HANDLER
// ======================================================

type ImageHandler struct {
	db    *gorm.DB
	store storage.ObjectStore
	audit *audit.Dispatcher
	log   *zap.Logger
}

// NewImageHandler takes a nil store when no bucket is configured; uploads
// then answer 503.
func NewImageHandler(db *gorm.DB, store storage.ObjectStore, audit *audit.Dispatcher, log *zap.Logger) *ImageHandler {
	return &ImageHandler{db: db, store: store, audit: audit, log: log}
}

func (h *ImageHandler) UploadServiceImage(c *gin.Context) {
	var service models.Service
	h.upload(c, "service", &service, msgServiceNotFound)
}

func (h *ImageHandler) UploadProductImage(c *gin.Context) {
	var product models.Product
	h.upload(c, "product", &product, msgProductNotFound)
}

// ======================================================
// UPLOAD
// ======================================================

// upload converts the multipart "image" file to WebP, stores it under
// <entity>s/<id>-<uuid>.webp and points record.image at its public URL.
func (h *ImageHandler) upload(c *gin.Context, entity string, record any, notFound string) {
	id, ok := pathID(c, notFound)
	if !ok {
		return
	}
	if h.store == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "Image storage not configured")
		return
	}

	ctx := c.Request.Context()

	if err := h.db.WithContext(ctx).First(record, id).Error; err != nil {
		if httperr.IsNotFound(err) {
			httperr.NotFound(c, notFound)
			return
		}
		httperr.Respond(c, h.log, err, "Failed to upload image")
		return
	}

	// --------------------------------------------------
	// Decode and re-encode
	// --------------------------------------------------
	fh, err := c.FormFile(imageField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httperr.Write(c, http.StatusRequestEntityTooLarge, "Image must be at most 10 MB")
			return
		}
		httperr.BadRequest(c, "Image file is required")
		return
	}
	if fh.Size > storage.MaxImageBytes {
		httperr.Write(c, http.StatusRequestEntityTooLarge, "Image must be at most 10 MB")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.Respond(c, h.log, err, "Failed to upload image")
		return
	}
	defer f.Close()

	body, err := storage.ToWebP(f)
	switch {
	case errors.Is(err, storage.ErrImageInvalid):
		httperr.BadRequest(c, "Unsupported image format")
		return
	case errors.Is(err, storage.ErrImageTooLarge):
		httperr.Write(c, http.StatusRequestEntityTooLarge, "Image must be at most 10 MB")
		return
	case err != nil:
		httperr.Respond(c, h.log, err, "Failed to upload image")
		return
	}

	// --------------------------------------------------
	// Store and link
	// --------------------------------------------------
	key := fmt.Sprintf("%ss/%d-%s.webp", entity, id, uuid.NewString())
	url, err := h.store.Put(ctx, key, "image/webp", body)
	if err != nil {
		h.log.Error("image upload failed", zap.String("key", key), zap.Error(err))
		httperr.Write(c, http.StatusBadGateway, "Failed to upload image")
		return
	}

	if err := h.db.WithContext(ctx).Model(record).Update("image", url).Error; err != nil {
		httperr.Respond(c, h.log, err, "Failed to upload image")
		return
	}
	if err := h.db.WithContext(ctx).First(record, id).Error; err != nil {
		httperr.Respond(c, h.log, err, "Failed to upload image")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   uintPtr(middleware.UserID(c)),
		Action:   audit.ActionImageUploaded,
		Entity:   entity,
		EntityID: &id,
		Metadata: map[string]any{"url": url, "bytes": len(body)},
	})

	httpresp.OK(c, record)
}
