package handlers

import (
	"net/http"

	"marketdesk/services/staff"
	"marketdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StaffHandler manages the staff roster endpoints.
type StaffHandler struct {
	Service staff.StaffService
}

func NewStaffHandler(svc staff.StaffService) *StaffHandler {
	return &StaffHandler{Service: svc}
}

// ListStaffHandler handles GET /staff.
func (h *StaffHandler) ListStaffHandler(c *gin.Context) {
	businessID := c.GetString("businessID")
	members, err := h.Service.ListStaff(businessID)
	if err != nil {
		utils.GetLogger().Error("Failed to list staff", zap.String("businessID", businessID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch staff"})
		return
	}
	c.JSON(http.StatusOK, members)
}

// GetStaffHandler handles GET /staff/:id.
func (h *StaffHandler) GetStaffHandler(c *gin.Context) {
	member, err := h.Service.GetStaff(c.Param("id"))
	if err != nil || member.BusinessID != c.GetString("businessID") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
		return
	}
	c.JSON(http.StatusOK, member)
}

type inviteRequest struct {
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone"`
	Role            string `json:"role" validate:"required,oneof=owner dispatcher provider"`
	LocationID      string `json:"location_id"`
	BusinessManaged bool   `json:"business_managed"`
}

// InviteStaffHandler handles POST /staff/invite.
func (h *StaffHandler) InviteStaffHandler(c *gin.Context) {
	var req inviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": utils.FormatValidationErrors(err)})
		return
	}

	businessID := c.GetString("businessID")
	member, err := h.Service.Invite(businessID, staff.InviteInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		Role:            req.Role,
		LocationID:      req.LocationID,
		BusinessManaged: req.BusinessManaged,
	})
	if err != nil {
		utils.GetLogger().Error("Failed to invite staff", zap.String("email", req.Email), zap.Error(err))
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, member)
}

// mustOwnStaff verifies the record belongs to the caller's business. A
// foreign staff member reads as not found, same as the GET handler.
func (h *StaffHandler) mustOwnStaff(c *gin.Context, id string) bool {
	member, err := h.Service.GetStaff(id)
	if err != nil || member.BusinessID != c.GetString("businessID") {
		c.JSON(http.StatusNotFound, gin.H{"error": "Staff member not found"})
		return false
	}
	return true
}

// UpdateStaffHandler handles PATCH /staff/:id.
func (h *StaffHandler) UpdateStaffHandler(c *gin.Context) {
	id := c.Param("id")
	if !h.mustOwnStaff(c, id) {
		return
	}
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	member, err := h.Service.UpdateStaff(id, updates)
	if err != nil {
		utils.GetLogger().Error("Failed to update staff", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update staff member"})
		return
	}
	c.JSON(http.StatusOK, member)
}

// DeactivateStaffHandler handles POST /staff/:id/deactivate.
func (h *StaffHandler) DeactivateStaffHandler(c *gin.Context) {
	id := c.Param("id")
	if !h.mustOwnStaff(c, id) {
		return
	}
	if err := h.Service.Deactivate(id); err != nil {
		utils.GetLogger().Error("Failed to deactivate staff", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to deactivate staff member"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff member deactivated"})
}

// SetBackgroundCheckHandler handles PATCH /staff/:id/background-check.
func (h *StaffHandler) SetBackgroundCheckHandler(c *gin.Context) {
	id := c.Param("id")
	if !h.mustOwnStaff(c, id) {
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.SetBackgroundCheckStatus(id, req.Status); err != nil {
		utils.GetLogger().Error("Failed to set background check status", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Background check status updated"})
}
