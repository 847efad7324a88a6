package handlers

import (
	"net/http"

	"marketdesk/models"
	"marketdesk/services/location"
	"marketdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LocationHandler manages business location endpoints.
type LocationHandler struct {
	Service location.LocationService
}

func NewLocationHandler(svc location.LocationService) *LocationHandler {
	return &LocationHandler{Service: svc}
}

// ListLocationsHandler handles GET /locations.
func (h *LocationHandler) ListLocationsHandler(c *gin.Context) {
	businessID := c.GetString("businessID")
	locations, err := h.Service.ListLocations(businessID)
	if err != nil {
		utils.GetLogger().Error("Failed to list locations", zap.String("businessID", businessID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch locations"})
		return
	}
	c.JSON(http.StatusOK, locations)
}

// GetLocationHandler handles GET /locations/:id.
func (h *LocationHandler) GetLocationHandler(c *gin.Context) {
	loc, err := h.Service.GetLocation(c.Param("id"))
	if err != nil || loc.BusinessID != c.GetString("businessID") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		return
	}
	c.JSON(http.StatusOK, loc)
}

type createLocationRequest struct {
	Name           string               `json:"name" validate:"required"`
	AddressLine1   string               `json:"address_line1" validate:"required"`
	AddressLine2   string               `json:"address_line2"`
	City           string               `json:"city" validate:"required"`
	State          string               `json:"state"`
	PostalCode     string               `json:"postal_code"`
	Country        string               `json:"country"`
	MobileRadiusKm float64              `json:"mobile_radius_km" validate:"gte=0"`
	Hours          models.BusinessHours `json:"hours"`
}

// CreateLocationHandler handles POST /locations.
func (h *LocationHandler) CreateLocationHandler(c *gin.Context) {
	var req createLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": utils.FormatValidationErrors(err)})
		return
	}

	loc := &models.Location{
		BusinessID:     c.GetString("businessID"),
		Name:           req.Name,
		AddressLine1:   req.AddressLine1,
		AddressLine2:   req.AddressLine2,
		City:           req.City,
		State:          req.State,
		PostalCode:     req.PostalCode,
		Country:        req.Country,
		MobileRadiusKm: req.MobileRadiusKm,
		Hours:          req.Hours,
	}
	created, err := h.Service.CreateLocation(loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// mustOwnLocation verifies the location belongs to the caller's business. A
// foreign location reads as not found, same as the GET handler.
func (h *LocationHandler) mustOwnLocation(c *gin.Context, id string) bool {
	loc, err := h.Service.GetLocation(id)
	if err != nil || loc.BusinessID != c.GetString("businessID") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Location not found"})
		return false
	}
	return true
}

// UpdateLocationHandler handles PATCH /locations/:id.
func (h *LocationHandler) UpdateLocationHandler(c *gin.Context) {
	id := c.Param("id")
	if !h.mustOwnLocation(c, id) {
		return
	}
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	loc, err := h.Service.UpdateLocation(id, updates)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, loc)
}

// DeleteLocationHandler handles DELETE /locations/:id.
func (h *LocationHandler) DeleteLocationHandler(c *gin.Context) {
	id := c.Param("id")
	if !h.mustOwnLocation(c, id) {
		return
	}
	if err := h.Service.DeleteLocation(id); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Location deleted"})
}

// SetPrimaryLocationHandler handles POST /locations/:id/primary.
func (h *LocationHandler) SetPrimaryLocationHandler(c *gin.Context) {
	businessID := c.GetString("businessID")
	if err := h.Service.SetPrimary(businessID, c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Primary location updated"})
}

// UpdateLocationHoursHandler handles PUT /locations/:id/hours.
func (h *LocationHandler) UpdateLocationHoursHandler(c *gin.Context) {
	id := c.Param("id")
	if !h.mustOwnLocation(c, id) {
		return
	}
	var hours models.BusinessHours
	if err := c.ShouldBindJSON(&hours); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.UpdateHours(id, hours); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hours updated"})
}
