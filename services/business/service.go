package business

import (
	"context"
	"fmt"
	"io"
	"time"

	"marketdesk/models"
	"marketdesk/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func (s *DefaultBusinessService) GetProfile(businessID string) (*models.BusinessProfile, error) {
	return s.Repo.GetProfile(businessID)
}

// UpdateProfile merges allowed updates and returns the updated profile.
func (s *DefaultBusinessService) UpdateProfile(businessID string, updates map[string]interface{}) (*models.BusinessProfile, error) {
	existing, err := s.Repo.GetProfile(businessID)
	if err != nil {
		return nil, fmt.Errorf("business profile not found: %w", err)
	}

	updateFields := bson.M{}

	if v, ok := updates["display_name"].(string); ok && v != "" {
		updateFields["display_name"] = v
		existing.DisplayName = v
	}
	if v, ok := updates["description"].(string); ok {
		updateFields["description"] = v
		existing.Description = v
	}
	if v, ok := updates["email"].(string); ok && v != "" {
		updateFields["email"] = v
		existing.Email = v
	}
	if v, ok := updates["phone"].(string); ok {
		updateFields["phone"] = v
		existing.Phone = v
	}
	if v, ok := updates["website"].(string); ok {
		updateFields["website"] = v
		existing.Website = v
	}
	if v, ok := updates["timezone"].(string); ok && v != "" {
		if _, err := time.LoadLocation(v); err != nil {
			return nil, fmt.Errorf("unknown timezone %q", v)
		}
		updateFields["timezone"] = v
		existing.Timezone = v
	}

	if len(updateFields) == 0 {
		return existing, nil
	}
	updateFields["updated_at"] = time.Now()

	if err := s.Repo.UpdateProfileWithDocument(businessID, bson.M{"$set": updateFields}); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *DefaultBusinessService) UpdateHours(businessID string, hours models.BusinessHours) error {
	if err := ValidateHours(hours); err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{"hours": hours, "updated_at": time.Now()}}
	if err := s.Repo.UpdateProfileWithDocument(businessID, update); err != nil {
		return fmt.Errorf("failed to update business hours: %w", err)
	}
	return nil
}

// UploadBrandAsset replaces the business logo or banner. The previous asset
// is deleted best-effort: a failed delete is logged and the upload proceeds.
func (s *DefaultBusinessService) UploadBrandAsset(ctx context.Context, businessID, kind string, file io.Reader) (string, error) {
	if kind != AssetLogo && kind != AssetBanner {
		return "", fmt.Errorf("unknown brand asset kind %q", kind)
	}

	existing, err := s.Repo.GetProfile(businessID)
	if err != nil {
		return "", fmt.Errorf("business profile not found: %w", err)
	}

	oldAssetID := existing.LogoAssetID
	if kind == AssetBanner {
		oldAssetID = existing.BannerAssetID
	}
	if oldAssetID != "" {
		if err := s.Storage.DeleteFile(ctx, oldAssetID); err != nil {
			utils.GetLogger().Warn("Failed to delete previous brand asset",
				zap.String("businessID", businessID), zap.Error(err))
		}
	}

	folder := fmt.Sprintf("businesses/%s/%s", businessID, kind)
	assetID, url, err := s.Storage.UploadFile(ctx, file, folder)
	if err != nil {
		return "", err
	}

	fields := bson.M{"updated_at": time.Now()}
	if kind == AssetLogo {
		fields["logo_url"] = url
		fields["logo_asset_id"] = assetID
	} else {
		fields["banner_url"] = url
		fields["banner_asset_id"] = assetID
	}
	if err := s.Repo.UpdateProfileWithDocument(businessID, bson.M{"$set": fields}); err != nil {
		return "", fmt.Errorf("failed to store %s URL: %w", kind, err)
	}
	return url, nil
}

func (s *DefaultBusinessService) ListDocuments(businessID string) ([]models.BusinessDocument, error) {
	return s.Repo.ListDocuments(businessID)
}

func (s *DefaultBusinessService) UploadDocument(ctx context.Context, businessID, kind, fileName string, file io.Reader) (*models.BusinessDocument, error) {
	if kind == "" {
		return nil, fmt.Errorf("document kind is required")
	}

	folder := fmt.Sprintf("businesses/%s/documents", businessID)
	assetID, url, err := s.Storage.UploadFile(ctx, file, folder)
	if err != nil {
		return nil, err
	}

	doc := &models.BusinessDocument{
		ID:          uuid.New().String(),
		BusinessID:  businessID,
		Kind:        kind,
		FileURL:     url,
		FileAssetID: assetID,
		FileName:    fileName,
		UploadedAt:  time.Now(),
	}
	if err := s.Repo.CreateDocument(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// DeleteDocument removes the record and then the stored file; the file delete
// is best-effort. Documents belonging to another business read as not found.
func (s *DefaultBusinessService) DeleteDocument(ctx context.Context, businessID, documentID string) error {
	doc, err := s.Repo.GetDocument(documentID)
	if err != nil {
		return fmt.Errorf("document not found: %w", err)
	}
	if doc.BusinessID != businessID {
		return fmt.Errorf("document %s not found for business %s", documentID, businessID)
	}
	if err := s.Repo.DeleteDocument(documentID); err != nil {
		return err
	}
	if doc.FileAssetID != "" {
		if err := s.Storage.DeleteFile(ctx, doc.FileAssetID); err != nil {
			utils.GetLogger().Warn("Failed to delete stored document file",
				zap.String("documentID", documentID), zap.Error(err))
		}
	}
	return nil
}
