package handlers

import (
	"errors"
	"net/http"

	"marketdesk/services/staff"
	"marketdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler handles staff sign-in, onboarding completion, and sign-out.
type AuthHandler struct {
	Service staff.StaffService
}

func NewAuthHandler(svc staff.StaffService) *AuthHandler {
	return &AuthHandler{Service: svc}
}

// LoginHandler handles POST /auth/login.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.Authenticate(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, staff.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		case errors.Is(err, staff.ErrInactiveStaff):
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is deactivated"})
		default:
			utils.GetLogger().Error("Login failed", zap.String("email", req.Email), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CompleteOnboardingHandler handles POST /auth/onboarding.
func (h *AuthHandler) CompleteOnboardingHandler(c *gin.Context) {
	var req struct {
		StaffID  string `json:"staff_id" binding:"required"`
		OTP      string `json:"otp" binding:"required"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.CompleteOnboarding(req.StaffID, req.OTP, req.Password)
	if err != nil {
		var mismatch staff.OTPMismatchError
		if errors.As(err, &mismatch) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Verification code is wrong or expired"})
			return
		}
		utils.GetLogger().Error("Onboarding failed", zap.String("staffID", req.StaffID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Onboarding failed"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RefreshTokenHandler handles POST /auth/refresh. The old token is invalid
// once the new one is issued.
func (h *AuthHandler) RefreshTokenHandler(c *gin.Context) {
	staffID := c.GetString("staffID")
	resp, err := h.Service.RefreshToken(staffID)
	if err != nil {
		if errors.Is(err, staff.ErrInactiveStaff) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is deactivated"})
			return
		}
		utils.GetLogger().Error("Failed to refresh token", zap.String("staffID", staffID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to refresh token"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler handles POST /auth/logout. It revokes the caller's token.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	staffID := c.GetString("staffID")
	if err := h.Service.RevokeToken(staffID); err != nil {
		utils.GetLogger().Error("Failed to revoke token", zap.String("staffID", staffID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
