package handlers

import (
	"net/http"

	"github.com/amigdala/cms-backend/internal/settings"
	"github.com/amigdala/cms-backend/pkg/logger"
	"github.com/gin-gonic/gin"
)

// SettingsHandler serves the site-wide settings singleton.
type SettingsHandler struct {
	repo settings.Repository
}

func NewSettingsHandler(repo settings.Repository) *SettingsHandler {
	return &SettingsHandler{repo: repo}
}

func (h *SettingsHandler) Register(r gin.IRoutes, admin gin.IRoutes) {
	r.GET("/api/settings", h.Get)
	admin.POST("/api/settings", h.Replace)
}

// Get returns the singleton; an empty store yields a zero-valued document.
func (h *SettingsHandler) Get(c *gin.Context) {
	s, err := h.repo.Get(c.Request.Context())
	if err != nil {
		logger.Errorf("settings get failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load settings"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// Replace overwrites the whole settings document.
func (h *SettingsHandler) Replace(c *gin.Context) {
	var s settings.Settings
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.repo.Replace(c.Request.Context(), &s); err != nil {
		logger.Errorf("settings replace failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "settings": s})
}
