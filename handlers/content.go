package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	contentRepo "barberbook/database/repository/content"
	"barberbook/models"
	"barberbook/utils"
)

// ContentHandler serves the landing-page content and shop settings
// singletons.
type ContentHandler struct {
	Content contentRepo.ContentRepository
}

func NewContentHandler(repo contentRepo.ContentRepository) *ContentHandler {
	return &ContentHandler{Content: repo}
}

// GetPageContentHandler handles GET /content. Public.
func (h *ContentHandler) GetPageContentHandler(c *gin.Context) {
	pc, err := h.Content.GetPageContent(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to load page content", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load page content"})
		return
	}
	c.JSON(http.StatusOK, pc)
}

// SetPageContentHandler handles PUT /content (admin).
func (h *ContentHandler) SetPageContentHandler(c *gin.Context) {
	var pc models.PageContent
	if err := c.ShouldBindJSON(&pc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Content.SetPageContent(c.Request.Context(), &pc); err != nil {
		utils.GetLogger().Error("failed to save page content", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save page content"})
		return
	}
	c.JSON(http.StatusOK, pc)
}

// GetShopSettingsHandler handles GET /settings. Public: the booking UI
// needs the closed days.
func (h *ContentHandler) GetShopSettingsHandler(c *gin.Context) {
	s, err := h.Content.GetShopSettings(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to load shop settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load shop settings"})
		return
	}
	c.JSON(http.StatusOK, s)
}

// SetShopSettingsHandler handles PUT /settings (admin).
func (h *ContentHandler) SetShopSettingsHandler(c *gin.Context) {
	var s models.ShopSettings
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Content.SetShopSettings(c.Request.Context(), &s); err != nil {
		utils.GetLogger().Error("failed to save shop settings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save shop settings"})
		return
	}
	c.JSON(http.StatusOK, s)
}
