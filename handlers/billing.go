package handlers

import (
	"net/http"
	"time"

	"marketdesk/models"
	"marketdesk/services/billing"
	"marketdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BillingHandler manages subscription and tax endpoints.
type BillingHandler struct {
	Service billing.BillingService
}

func NewBillingHandler(svc billing.BillingService) *BillingHandler {
	return &BillingHandler{Service: svc}
}

// CreateCheckoutSessionHandler handles POST /billing/checkout.
func (h *BillingHandler) CreateCheckoutSessionHandler(c *gin.Context) {
	businessID := c.GetString("businessID")
	var req struct {
		Plan string `json:"plan" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	session, err := h.Service.CreateCheckoutSession(businessID, req.Plan)
	if err != nil {
		utils.GetLogger().Error("Failed to create checkout session",
			zap.String("businessID", businessID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to start checkout"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetSubscriptionHandler handles GET /billing/subscription.
func (h *BillingHandler) GetSubscriptionHandler(c *gin.Context) {
	businessID := c.GetString("businessID")
	sub, err := h.Service.GetSubscription(businessID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No subscription on file"})
		return
	}
	c.JSON(http.StatusOK, sub)
}

// CancelSubscriptionHandler handles POST /billing/subscription/cancel.
func (h *BillingHandler) CancelSubscriptionHandler(c *gin.Context) {
	businessID := c.GetString("businessID")
	if err := h.Service.CancelSubscription(businessID); err != nil {
		utils.GetLogger().Error("Failed to cancel subscription",
			zap.String("businessID", businessID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to cancel subscription"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subscription canceled"})
}

// GetTaxInfoHandler handles GET /billing/tax.
func (h *BillingHandler) GetTaxInfoHandler(c *gin.Context) {
	businessID := c.GetString("businessID")
	info, err := h.Service.GetTaxInfo(businessID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No tax info on file"})
		return
	}
	c.JSON(http.StatusOK, info)
}

type taxInfoRequest struct {
	LegalName  string `json:"legal_name" validate:"required"`
	TaxIDType  string `json:"tax_id_type" validate:"required"`
	TaxIDValue string `json:"tax_id_value" validate:"required"`
	Country    string `json:"country"`
}

// UpsertTaxInfoHandler handles PUT /billing/tax.
func (h *BillingHandler) UpsertTaxInfoHandler(c *gin.Context) {
	businessID := c.GetString("businessID")
	var req taxInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": utils.FormatValidationErrors(err)})
		return
	}

	info, err := h.Service.UpsertTaxInfo(&models.TaxInfo{
		BusinessID: businessID,
		LegalName:  req.LegalName,
		TaxIDType:  req.TaxIDType,
		TaxIDValue: req.TaxIDValue,
		Country:    req.Country,
		UpdatedAt:  time.Now().UTC(),
	})
	if err != nil {
		utils.GetLogger().Error("Failed to save tax info",
			zap.String("businessID", businessID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to save tax info"})
		return
	}
	c.JSON(http.StatusOK, info)
}
