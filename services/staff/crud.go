package staff

import (
	"fmt"
	"time"

	"marketdesk/models"

	"go.mongodb.org/mongo-driver/bson"
)

func (s *DefaultStaffService) ListStaff(businessID string) ([]models.Staff, error) {
	return s.Repo.ListByBusiness(businessID)
}

func (s *DefaultStaffService) GetStaff(id string) (*models.Staff, error) {
	return s.Repo.GetByID(id)
}

// UpdateStaff merges allowed updates and returns the updated record. It
// implements patch-style updates; unrecognized keys are ignored.
func (s *DefaultStaffService) UpdateStaff(id string, updates map[string]interface{}) (*models.Staff, error) {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("staff not found: %w", err)
	}

	updateFields := bson.M{}

	if v, ok := updates["first_name"].(string); ok && v != "" {
		updateFields["first_name"] = v
		existing.FirstName = v
	}
	if v, ok := updates["last_name"].(string); ok && v != "" {
		updateFields["last_name"] = v
		existing.LastName = v
	}
	if v, ok := updates["phone"].(string); ok && v != "" {
		updateFields["phone"] = v
		existing.Phone = v
	}
	if v, ok := updates["role"].(string); ok && v != "" {
		if !models.ValidRole(v) {
			return nil, fmt.Errorf("unknown staff role %q", v)
		}
		updateFields["role"] = v
		existing.Role = v
	}
	if v, ok := updates["location_id"].(string); ok {
		updateFields["location_id"] = v
		existing.LocationID = v
	}
	if v, ok := updates["business_managed"].(bool); ok {
		updateFields["business_managed"] = v
		existing.BusinessManaged = v
	}
	if v, ok := updates["avatar_url"].(string); ok && v != "" {
		updateFields["avatar_url"] = v
		existing.AvatarURL = v
	}
	if v, ok := updates["active"].(bool); ok {
		updateFields["active"] = v
		existing.Active = v
	}

	if len(updateFields) == 0 {
		return existing, nil
	}
	updateFields["updated_at"] = time.Now()

	if err := s.Repo.UpdateWithDocument(id, bson.M{"$set": updateFields}); err != nil {
		return nil, err
	}
	existing.Security = models.Security{}
	return existing, nil
}

// Deactivate flips the active flag off and revokes any session. The record
// itself stays for booking history.
func (s *DefaultStaffService) Deactivate(id string) error {
	update := bson.M{"$set": bson.M{
		"active":             false,
		"security.tokenHash": "",
		"updated_at":         time.Now(),
	}}
	if err := s.Repo.UpdateWithDocument(id, update); err != nil {
		return fmt.Errorf("failed to deactivate staff %s: %w", id, err)
	}
	return nil
}

func (s *DefaultStaffService) SetBackgroundCheckStatus(id, status string) error {
	update := bson.M{"$set": bson.M{
		"background_check_status": status,
		"updated_at":              time.Now(),
	}}
	if err := s.Repo.UpdateWithDocument(id, update); err != nil {
		return fmt.Errorf("failed to update background check for staff %s: %w", id, err)
	}
	return nil
}
