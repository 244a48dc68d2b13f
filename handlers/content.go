package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/amigdala/cms-backend/internal/content/service"
	"github.com/amigdala/cms-backend/pkg/logger"
	"github.com/amigdala/cms-backend/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// UpsertContentRequest is the admin save payload: the section key plus the
// full replacement document for that section.
type UpsertContentRequest struct {
	Section string          `json:"section" binding:"required"`
	Content json.RawMessage `json:"content" binding:"required"`
}

// ContentHandler exposes the section-document endpoints.
type ContentHandler struct {
	svc service.Service
}

func NewContentHandler(svc service.Service) *ContentHandler {
	return &ContentHandler{svc: svc}
}

// Register wires the public reads onto r and the admin save onto admin.
func (h *ContentHandler) Register(r gin.IRoutes, admin gin.IRoutes) {
	r.GET("/api/content", h.Get)
	admin.POST("/api/content", h.Upsert)
}

// Get returns one section when ?section= is present, otherwise every stored
// section in storage order.
func (h *ContentHandler) Get(c *gin.Context) {
	section := c.Query("section")
	if section == "" {
		docs, err := h.svc.List(c.Request.Context())
		if err != nil {
			logger.Errorf("content list failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load content"})
			return
		}
		c.JSON(http.StatusOK, docs)
		return
	}

	doc, err := h.svc.Get(c.Request.Context(), section)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "section not found", "section": section})
			return
		}
		logger.Errorf("content get failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load content"})
		return
	}
	c.JSON(http.StatusOK, doc)
}

// Upsert validates and fully replaces one section document.
func (h *ContentHandler) Upsert(c *gin.Context) {
	var req UpsertContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.Upsert(c.Request.Context(), req.Section, req.Content); err != nil {
		if errors.Is(err, service.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Errorf("content upsert failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save content"})
		return
	}
	metrics.ContentSaves.WithLabelValues(req.Section).Inc()
	c.JSON(http.StatusOK, gin.H{"success": true, "section": req.Section})
}
