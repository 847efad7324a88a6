package business

import (
	"context"
	"io"

	businessRepo "marketdesk/database/repository/business"
	"marketdesk/models"
	"marketdesk/services/storage"
)

// Brand asset kinds accepted by UploadBrandAsset.
const (
	AssetLogo   = "logo"
	AssetBanner = "banner"
)

// BusinessService manages the business profile, opening hours, branding
// assets, and uploaded documents.
type BusinessService interface {
	GetProfile(businessID string) (*models.BusinessProfile, error)
	UpdateProfile(businessID string, updates map[string]interface{}) (*models.BusinessProfile, error)
	UpdateHours(businessID string, hours models.BusinessHours) error

	UploadBrandAsset(ctx context.Context, businessID, kind string, file io.Reader) (string, error)

	ListDocuments(businessID string) ([]models.BusinessDocument, error)
	UploadDocument(ctx context.Context, businessID, kind, fileName string, file io.Reader) (*models.BusinessDocument, error)
	DeleteDocument(ctx context.Context, businessID, documentID string) error
}

// DefaultBusinessService is the production implementation.
type DefaultBusinessService struct {
	Repo    businessRepo.BusinessRepository
	Storage storage.StorageService
}
