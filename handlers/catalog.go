package handlers

import (
	"errors"
	"net/http"

	"marketdesk/models"
	"marketdesk/services/catalog"
	"marketdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler manages the service and addon catalog endpoints.
type CatalogHandler struct {
	Service catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

// ListServicesHandler handles GET /services.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	businessID := c.GetString("businessID")
	services, err := h.Service.ListServices(businessID)
	if err != nil {
		utils.GetLogger().Error("Failed to list services", zap.String("businessID", businessID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch services"})
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetServiceHandler handles GET /services/:id.
func (h *CatalogHandler) GetServiceHandler(c *gin.Context) {
	svc, err := h.Service.GetService(c.Param("id"))
	if err != nil || svc.BusinessID != c.GetString("businessID") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

type createServiceRequest struct {
	Name            string  `json:"name" validate:"required"`
	Description     string  `json:"description"`
	Category        string  `json:"category"`
	DurationMinutes int     `json:"duration_minutes" validate:"gte=0"`
	Price           float64 `json:"price" validate:"gte=0"`
	MinimumPrice    float64 `json:"minimum_price" validate:"gte=0"`
	DeliveryMode    string  `json:"delivery_mode" validate:"required,oneof=business_location customer_location virtual both"`
	ImageURL        string  `json:"image_url"`
}

// CreateServiceHandler handles POST /services.
func (h *CatalogHandler) CreateServiceHandler(c *gin.Context) {
	var req createServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": utils.FormatValidationErrors(err)})
		return
	}

	svc := &models.Service{
		BusinessID:      c.GetString("businessID"),
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		MinimumPrice:    req.MinimumPrice,
		DeliveryMode:    req.DeliveryMode,
		Active:          true,
		ImageURL:        req.ImageURL,
	}
	created, err := h.Service.CreateService(svc)
	if err != nil {
		var priceErr catalog.PriceBelowMinimumError
		if errors.As(err, &priceErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// mustOwnService verifies the service belongs to the caller's business. A
// foreign service reads as not found, same as the GET handler.
func (h *CatalogHandler) mustOwnService(c *gin.Context, id string) bool {
	svc, err := h.Service.GetService(id)
	if err != nil || svc.BusinessID != c.GetString("businessID") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
		return false
	}
	return true
}

// UpdateServiceHandler handles PATCH /services/:id.
func (h *CatalogHandler) UpdateServiceHandler(c *gin.Context) {
	id := c.Param("id")
	if !h.mustOwnService(c, id) {
		return
	}
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	svc, err := h.Service.UpdateService(id, updates)
	if err != nil {
		var priceErr catalog.PriceBelowMinimumError
		if errors.As(err, &priceErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DeleteServiceHandler handles DELETE /services/:id.
func (h *CatalogHandler) DeleteServiceHandler(c *gin.Context) {
	id := c.Param("id")
	if !h.mustOwnService(c, id) {
		return
	}
	if err := h.Service.DeleteService(id); err != nil {
		utils.GetLogger().Error("Failed to delete service", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

// ListAddonsHandler handles GET /addons.
func (h *CatalogHandler) ListAddonsHandler(c *gin.Context) {
	businessID := c.GetString("businessID")
	addons, err := h.Service.ListAddons(businessID)
	if err != nil {
		utils.GetLogger().Error("Failed to list addons", zap.String("businessID", businessID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch addons"})
		return
	}
	c.JSON(http.StatusOK, addons)
}

type createAddonRequest struct {
	Name            string  `json:"name" validate:"required"`
	Price           float64 `json:"price" validate:"gte=0"`
	DurationMinutes int     `json:"duration_minutes" validate:"gte=0"`
}

// CreateAddonHandler handles POST /addons.
func (h *CatalogHandler) CreateAddonHandler(c *gin.Context) {
	var req createAddonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": utils.FormatValidationErrors(err)})
		return
	}

	addon := &models.Addon{
		BusinessID:      c.GetString("businessID"),
		Name:            req.Name,
		Price:           req.Price,
		DurationMinutes: req.DurationMinutes,
	}
	created, err := h.Service.CreateAddon(addon)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// DeleteAddonHandler handles DELETE /addons/:id.
func (h *CatalogHandler) DeleteAddonHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.DeleteAddon(c.GetString("businessID"), id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Addon not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Addon deleted"})
}

// AttachAddonHandler handles POST /services/:id/addons/:addonID.
func (h *CatalogHandler) AttachAddonHandler(c *gin.Context) {
	if !h.mustOwnService(c, c.Param("id")) {
		return
	}
	if err := h.Service.AttachAddon(c.Param("id"), c.Param("addonID")); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Addon attached"})
}

// DetachAddonHandler handles DELETE /services/:id/addons/:addonID.
func (h *CatalogHandler) DetachAddonHandler(c *gin.Context) {
	if !h.mustOwnService(c, c.Param("id")) {
		return
	}
	if err := h.Service.DetachAddon(c.Param("id"), c.Param("addonID")); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Addon detached"})
}
