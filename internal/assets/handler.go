// Package assets exposes the external asset host: program images are
// uploaded here once and referenced by stable public URL from the catalog.
package assets

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/southlake-academy/admin-api/pkg/response"
	"github.com/southlake-academy/admin-api/pkg/storage"
)

// Uploader is the storage surface the upload handler needs.
type Uploader interface {
	UploadImage(ctx context.Context, key, contentType string, body io.Reader, contentLength int64) (string, error)
}

// Handler handles asset upload HTTP endpoints.
type Handler struct {
	uploader     Uploader
	uploadPreset string
	logger       *zap.Logger
}

// NewHandler creates an assets handler. uploadPreset is the shared value
// the multipart form must present, mirroring the hosted-upload contract
// the admin UI already speaks.
func NewHandler(uploader Uploader, uploadPreset string, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{uploader: uploader, uploadPreset: uploadPreset, logger: logger}
}

// UploadImage handles POST /api/assets/images: multipart "file" plus an
// "upload_preset" field. Returns {"secure_url": ...} pointing at the
// stored object.
func (h *Handler) UploadImage(c *gin.Context) {
	if h.uploader == nil {
		response.Internal(c, "asset storage not configured")
		return
	}
	if preset := c.PostForm("upload_preset"); preset != h.uploadPreset {
		response.BadRequest(c, "invalid upload preset")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	if fileHeader.Size > storage.MaxImageSize {
		response.BadRequest(c, "file too large")
		return
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if !storage.ValidateImageType(contentType, fileHeader.Filename) {
		response.BadRequest(c, "unsupported file type")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Internal(c, "failed to read file")
		return
	}
	defer file.Close()

	if contentType == "" {
		contentType = storage.ContentTypeForFilename(fileHeader.Filename)
	}
	key := storage.ImageKey(uuid.New().String(), fileHeader.Filename)
	url, err := h.uploader.UploadImage(c.Request.Context(), key, contentType, file, fileHeader.Size)
	if err != nil {
		h.logger.Error("image upload failed", zap.Error(err), zap.String("key", key))
		response.Internal(c, "failed to upload image")
		return
	}

	response.OK(c, gin.H{"secure_url": url})
}
