package handlers

import (
	"errors"
	"net/http"

	"marketdesk/services/messaging"
	"marketdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MessagingHandler manages conversation thread endpoints.
type MessagingHandler struct {
	Service messaging.MessagingService
}

func NewMessagingHandler(svc messaging.MessagingService) *MessagingHandler {
	return &MessagingHandler{Service: svc}
}

// OpenThreadHandler handles POST /conversations.
func (h *MessagingHandler) OpenThreadHandler(c *gin.Context) {
	businessID := c.GetString("businessID")
	var req struct {
		BookingID      string   `json:"booking_id" binding:"required"`
		ParticipantIDs []string `json:"participant_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	conv, err := h.Service.OpenThread(businessID, req.BookingID, req.ParticipantIDs)
	if err != nil {
		if errors.Is(err, messaging.ErrBookingMismatch) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		utils.GetLogger().Error("Failed to open thread",
			zap.String("bookingID", req.BookingID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open conversation"})
		return
	}
	c.JSON(http.StatusOK, conv)
}

// ListThreadsHandler handles GET /conversations.
func (h *MessagingHandler) ListThreadsHandler(c *gin.Context) {
	businessID := c.GetString("businessID")
	convs, err := h.Service.ListThreads(businessID)
	if err != nil {
		utils.GetLogger().Error("Failed to list threads", zap.String("businessID", businessID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch conversations"})
		return
	}
	c.JSON(http.StatusOK, convs)
}
