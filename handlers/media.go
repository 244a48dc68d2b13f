package handlers

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/amigdala/cms-backend/internal/media"
	"github.com/amigdala/cms-backend/internal/media/service"
	"github.com/amigdala/cms-backend/internal/storage"
	"github.com/amigdala/cms-backend/pkg/logger"
	"github.com/amigdala/cms-backend/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// MediaHandler exposes the media library: upload, listing, deletion and the
// image retrieval proxy backing resolved /api/image URLs.
type MediaHandler struct {
	svc     *service.Service
	backend storage.Backend
}

func NewMediaHandler(svc *service.Service, backend storage.Backend) *MediaHandler {
	return &MediaHandler{svc: svc, backend: backend}
}

func (h *MediaHandler) Register(r gin.IRoutes, admin gin.IRoutes) {
	r.GET("/api/media", h.List)
	r.GET("/api/image", h.ServeImage)
	admin.POST("/api/media", h.Upload)
	admin.DELETE("/api/media/:id", h.Delete)
}

// Upload accepts a multipart form with a single "file" part.
func (h *MediaHandler) Upload(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		metrics.MediaUploads.WithLabelValues("no-file").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided", "reason": "no-file"})
		return
	}
	f, err := fh.Open()
	if err != nil {
		metrics.MediaUploads.WithLabelValues("no-file").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided", "reason": "no-file"})
		return
	}
	defer f.Close()

	item, err := h.svc.Upload(c.Request.Context(), service.Upload{
		Reader:      f,
		Name:        fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoFile):
			metrics.MediaUploads.WithLabelValues("no-file").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "reason": "no-file"})
		case errors.Is(err, service.ErrInvalidType):
			metrics.MediaUploads.WithLabelValues("invalid-type").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "reason": "invalid-type"})
		case errors.Is(err, service.ErrTooLarge):
			metrics.MediaUploads.WithLabelValues("too-large").Inc()
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": err.Error(), "reason": "too-large"})
		default:
			logger.Errorf("media upload failed: %v", err)
			metrics.MediaUploads.WithLabelValues("storage-failure").Inc()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store file", "reason": "storage-failure"})
		}
		return
	}

	if item.Warning {
		metrics.MediaUploads.WithLabelValues("metadata-failure").Inc()
	} else {
		metrics.MediaUploads.WithLabelValues("success").Inc()
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "file": item})
}

// List returns every media item, newest first.
func (h *MediaHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		logger.Errorf("media list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list media"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// Delete removes one media item by id.
func (h *MediaHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "media item not found"})
			return
		}
		logger.Errorf("media delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete media"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ServeImage streams an uploaded asset referenced by its stored path.
// Only paths under the uploads prefix are servable; anything that
// normalizes outside it is rejected.
func (h *MediaHandler) ServeImage(c *gin.Context) {
	p := c.Query("path")
	if p == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path is required"})
		return
	}
	clean := path.Clean(p)
	if !strings.HasPrefix(clean, media.UploadPrefix) {
		c.JSON(http.StatusForbidden, gin.H{"error": "path outside the uploads area"})
		return
	}
	key := strings.TrimPrefix(clean, media.UploadPrefix)
	if key == "" || strings.Contains(key, "/") {
		c.JSON(http.StatusForbidden, gin.H{"error": "path outside the uploads area"})
		return
	}

	rc, err := h.backend.Open(c.Request.Context(), key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "image not found"})
			return
		}
		logger.Errorf("image open failed for %s: %v", key, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read image"})
		return
	}
	defer rc.Close()

	ct := mime.TypeByExtension(strings.ToLower(path.Ext(key)))
	if ct == "" {
		ct = "application/octet-stream"
	}
	c.Header("Content-Type", ct)
	c.Header("Cache-Control", "public, max-age=31536000, immutable")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, rc); err != nil {
		logger.Warnf("image stream aborted for %s: %v", key, err)
	}
}
