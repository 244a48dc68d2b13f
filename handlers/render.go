package handlers

import (
	"net/http"

	"github.com/amigdala/cms-backend/internal/content/service"
	"github.com/amigdala/cms-backend/internal/media"
	"github.com/amigdala/cms-backend/internal/render"
	"github.com/amigdala/cms-backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

// RenderHandler serves the public page payload: every known section
// projected to its view-model, in display order.
type RenderHandler struct {
	svc service.Service
}

func NewRenderHandler(svc service.Service) *RenderHandler {
	return &RenderHandler{svc: svc}
}

func (h *RenderHandler) Register(r gin.IRoutes) {
	r.GET("/api/render", h.Render)
}

func (h *RenderHandler) Render(c *gin.Context) {
	docs, err := h.svc.List(c.Request.Context())
	if err != nil {
		logger.Errorf("render list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load content"})
		return
	}
	views := render.Render(docs, media.ResolveURL)
	c.JSON(http.StatusOK, gin.H{"sections": views})
}
