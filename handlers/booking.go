package handlers

import (
	"errors"
	"net/http"
	"time"

	"marketdesk/services/booking"
	"marketdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the dashboard's booking views and mutations.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// ListBookingsHandler handles GET /bookings.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	businessID := c.GetString("businessID")
	if !booking.ValidBucket(c.Query("bucket")) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bucket must be one of 'all', 'present', 'future', 'past'"})
		return
	}
	f := booking.Filter{
		Bucket:     c.Query("bucket"),
		Status:     c.Query("status"),
		ProviderID: c.Query("provider_id"),
		LocationID: c.Query("location_id"),
		Search:     c.Query("search"),
	}

	bookings, err := h.Service.ListBookings(businessID, f)
	if err != nil {
		utils.GetLogger().Error("Failed to list bookings", zap.String("businessID", businessID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingHandler handles GET /bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	id := c.Param("id")
	b, err := h.Service.GetBooking(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	if b.BusinessID != c.GetString("businessID") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return
	}
	c.JSON(http.StatusOK, b)
}

// mustOwnBooking verifies the booking belongs to the caller's business. A
// foreign booking reads as not found, same as the GET handler.
func (h *BookingHandler) mustOwnBooking(c *gin.Context, id string) bool {
	b, err := h.Service.GetBooking(id)
	if err != nil || b.BusinessID != c.GetString("businessID") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		return false
	}
	return true
}

// UpdateBookingStatusHandler handles PATCH /bookings/:id/status.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	id := c.Param("id")
	if !h.mustOwnBooking(c, id) {
		return
	}
	var req struct {
		Status        string `json:"status" binding:"required"`
		DeclineReason string `json:"decline_reason"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Service.UpdateStatus(id, req.Status, req.DeclineReason)
	if err != nil {
		var provErr booking.ProviderRequiredError
		switch {
		case errors.Is(err, booking.ErrUnknownStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.As(err, &provErr):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			utils.GetLogger().Error("Failed to update booking status", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
		}
		return
	}
	c.JSON(http.StatusOK, updated)
}

// AssignProviderHandler handles PATCH /bookings/:id/provider.
func (h *BookingHandler) AssignProviderHandler(c *gin.Context) {
	id := c.Param("id")
	if !h.mustOwnBooking(c, id) {
		return
	}
	var req struct {
		ProviderID string `json:"provider_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Service.AssignProvider(id, req.ProviderID)
	if err != nil {
		utils.GetLogger().Error("Failed to assign provider",
			zap.String("bookingID", id), zap.String("providerID", req.ProviderID), zap.Error(err))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// CalendarHandler handles GET /bookings/calendar.
func (h *BookingHandler) CalendarHandler(c *gin.Context) {
	businessID := c.GetString("businessID")
	mode := c.DefaultQuery("mode", "week")
	if mode != "week" && mode != "month" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mode must be 'week' or 'month'"})
		return
	}

	anchor := time.Now()
	if raw := c.Query("anchor"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "anchor must be a YYYY-MM-DD date"})
			return
		}
		anchor = parsed
	}

	cells, err := h.Service.Calendar(businessID, mode, anchor)
	if err != nil {
		utils.GetLogger().Error("Failed to build calendar", zap.String("businessID", businessID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build calendar"})
		return
	}
	c.JSON(http.StatusOK, cells)
}
