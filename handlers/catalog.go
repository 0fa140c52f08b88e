package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"barberbook/models"
	"barberbook/services/catalog"
	"barberbook/utils"
)

// CatalogHandler exposes the services and barbers CRUD.
type CatalogHandler struct {
	Catalog catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Catalog: svc}
}

// ListServicesHandler handles GET /services.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.Catalog.ListServices(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to list services", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load services"})
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetServiceHandler handles GET /services/:id.
func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	svc, err := h.Catalog.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// CreateServiceHandler handles POST /services (admin).
func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Catalog.CreateService(c.Request.Context(), &svc); err != nil {
		if errors.Is(err, catalog.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("failed to create service", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create service"})
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// UpdateServiceHandler handles PUT /services/:id (admin).
func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	svc.ID = c.Param("id")
	if err := h.Catalog.UpdateService(c.Request.Context(), &svc); err != nil {
		switch {
		case errors.Is(err, catalog.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, mongo.ErrNoDocuments):
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
		default:
			utils.GetLogger().Error("failed to update service", zap.String("id", svc.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update service"})
		}
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DeleteServiceHandler handles DELETE /services/:id (admin).
func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	if err := h.Catalog.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
			return
		}
		utils.GetLogger().Error("failed to delete service", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "service deleted"})
}

// ListBarbersHandler handles GET /barbers.
func (h *CatalogHandler) ListBarbersHandler(c *gin.Context) {
	barbers, err := h.Catalog.ListBarbers(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("failed to list barbers", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load barbers"})
		return
	}
	c.JSON(http.StatusOK, barbers)
}

// GetBarberHandler handles GET /barbers/:id.
func (h *CatalogHandler) GetBarberHandler(c *gin.Context) {
	b, err := h.Catalog.GetBarber(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "barber not found"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// CreateBarberHandler handles POST /barbers (admin).
func (h *CatalogHandler) CreateBarberHandler(c *gin.Context) {
	var b models.Barber
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Catalog.CreateBarber(c.Request.Context(), &b); err != nil {
		if errors.Is(err, catalog.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		utils.GetLogger().Error("failed to create barber", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create barber"})
		return
	}
	c.JSON(http.StatusCreated, b)
}

// UpdateBarberHandler handles PUT /barbers/:id (admin).
func (h *CatalogHandler) UpdateBarberHandler(c *gin.Context) {
	var b models.Barber
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	b.ID = c.Param("id")
	if err := h.Catalog.UpdateBarber(c.Request.Context(), &b); err != nil {
		switch {
		case errors.Is(err, catalog.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, mongo.ErrNoDocuments):
			c.JSON(http.StatusNotFound, gin.H{"error": "barber not found"})
		default:
			utils.GetLogger().Error("failed to update barber", zap.String("id", b.ID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update barber"})
		}
		return
	}
	c.JSON(http.StatusOK, b)
}

// DeleteBarberHandler handles DELETE /barbers/:id (admin). The barber
// and its schedule rows are removed together or not at all.
func (h *CatalogHandler) DeleteBarberHandler(c *gin.Context) {
	if err := h.Catalog.DeleteBarber(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "barber not found"})
			return
		}
		utils.GetLogger().Error("failed to delete barber", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete barber"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "barber deleted"})
}

// UploadBarberImageHandler handles POST /barbers/:id/image (admin).
func (h *CatalogHandler) UploadBarberImageHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "details": err.Error()})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read file", "details": err.Error()})
		return
	}
	defer file.Close()

	url, err := h.Catalog.UploadBarberImage(c.Request.Context(), c.Param("id"), file)
	if err != nil {
		utils.GetLogger().Error("failed to upload barber image", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload image"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"imageUrl": url})
}
