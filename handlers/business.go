package handlers

import (
	"net/http"

	"marketdesk/models"
	"marketdesk/services/business"
	"marketdesk/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BusinessHandler manages the business profile, hours, branding, and
// document endpoints.
type BusinessHandler struct {
	Service business.BusinessService
}

func NewBusinessHandler(svc business.BusinessService) *BusinessHandler {
	return &BusinessHandler{Service: svc}
}

// GetProfileHandler handles GET /business/profile.
func (h *BusinessHandler) GetProfileHandler(c *gin.Context) {
	businessID := c.GetString("businessID")
	profile, err := h.Service.GetProfile(businessID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch profile", zap.String("businessID", businessID), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Business profile not found"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfileHandler handles PATCH /business/profile.
func (h *BusinessHandler) UpdateProfileHandler(c *gin.Context) {
	businessID := c.GetString("businessID")
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	profile, err := h.Service.UpdateProfile(businessID, updates)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateHoursHandler handles PUT /business/hours.
func (h *BusinessHandler) UpdateHoursHandler(c *gin.Context) {
	businessID := c.GetString("businessID")
	var hours models.BusinessHours
	if err := c.ShouldBindJSON(&hours); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := h.Service.UpdateHours(businessID, hours); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Hours updated"})
}

// UploadBrandAssetHandler handles POST /business/brand/:kind for the logo
// and banner images.
func (h *BusinessHandler) UploadBrandAssetHandler(c *gin.Context) {
	businessID := c.GetString("businessID")
	kind := c.Param("kind")
	if kind != business.AssetLogo && kind != business.AssetBanner {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be 'logo' or 'banner'"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file", "detail": err.Error()})
		return
	}
	defer file.Close()

	url, err := h.Service.UploadBrandAsset(c.Request.Context(), businessID, kind, file)
	if err != nil {
		utils.GetLogger().Error("Failed to upload brand asset",
			zap.String("businessID", businessID), zap.String("kind", kind), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload " + kind})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// ListDocumentsHandler handles GET /business/documents.
func (h *BusinessHandler) ListDocumentsHandler(c *gin.Context) {
	businessID := c.GetString("businessID")
	docs, err := h.Service.ListDocuments(businessID)
	if err != nil {
		utils.GetLogger().Error("Failed to list documents", zap.String("businessID", businessID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch documents"})
		return
	}
	c.JSON(http.StatusOK, docs)
}

// UploadDocumentHandler handles POST /business/documents.
func (h *BusinessHandler) UploadDocumentHandler(c *gin.Context) {
	businessID := c.GetString("businessID")
	kind := c.PostForm("kind")
	if kind == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind is required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read file", "detail": err.Error()})
		return
	}
	defer file.Close()

	doc, err := h.Service.UploadDocument(c.Request.Context(), businessID, kind, fileHeader.Filename, file)
	if err != nil {
		utils.GetLogger().Error("Failed to upload document",
			zap.String("businessID", businessID), zap.String("kind", kind), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload document"})
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// DeleteDocumentHandler handles DELETE /business/documents/:id.
func (h *BusinessHandler) DeleteDocumentHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.DeleteDocument(c.Request.Context(), c.GetString("businessID"), id); err != nil {
		utils.GetLogger().Warn("Failed to delete document", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Document not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}
