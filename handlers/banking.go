package handlers

import (
	"net/http"

	"marketdesk/services/banking"
	"marketdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BankingHandler manages the Plaid bank-linking endpoints.
type BankingHandler struct {
	Service banking.BankingService
}

func NewBankingHandler(svc banking.BankingService) *BankingHandler {
	return &BankingHandler{Service: svc}
}

// CreateLinkTokenHandler handles POST /banking/link-token.
func (h *BankingHandler) CreateLinkTokenHandler(c *gin.Context) {
	businessID := c.GetString("businessID")
	token, err := h.Service.CreateLinkToken(c.Request.Context(), businessID)
	if err != nil {
		utils.GetLogger().Error("Failed to create link token",
			zap.String("businessID", businessID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to start bank linking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"link_token": token})
}

// CompleteLinkHandler handles POST /banking/exchange.
func (h *BankingHandler) CompleteLinkHandler(c *gin.Context) {
	businessID := c.GetString("businessID")
	var req struct {
		PublicToken string `json:"public_token" binding:"required"`
		AccountID   string `json:"account_id"`
		Institution string `json:"institution"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	link, err := h.Service.CompleteLink(c.Request.Context(), businessID, req.PublicToken, req.AccountID, req.Institution)
	if err != nil {
		utils.GetLogger().Error("Failed to complete bank link",
			zap.String("businessID", businessID), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to link bank account"})
		return
	}
	c.JSON(http.StatusOK, link)
}

// GetBankLinkHandler handles GET /banking/link.
func (h *BankingHandler) GetBankLinkHandler(c *gin.Context) {
	businessID := c.GetString("businessID")
	link, err := h.Service.GetBankLink(c.Request.Context(), businessID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No bank account linked"})
		return
	}
	c.JSON(http.StatusOK, link)
}
