package location

import (
	"fmt"
	"time"

	"marketdesk/models"
	"marketdesk/services/business"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

func (s *DefaultLocationService) ListLocations(businessID string) ([]models.Location, error) {
	return s.Repo.ListByBusiness(businessID)
}

func (s *DefaultLocationService) GetLocation(id string) (*models.Location, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultLocationService) CreateLocation(loc *models.Location) (*models.Location, error) {
	if loc.Name == "" {
		return nil, fmt.Errorf("location name is required")
	}
	if loc.Hours != nil {
		if err := business.ValidateHours(loc.Hours); err != nil {
			return nil, err
		}
	}
	loc.ID = uuid.New().String()
	loc.CreatedAt = time.Now()

	// The first location of a business becomes primary automatically.
	existing, err := s.Repo.ListByBusiness(loc.BusinessID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing locations: %w", err)
	}
	if len(existing) == 0 {
		loc.Primary = true
	}

	if err := s.Repo.Create(loc); err != nil {
		return nil, err
	}
	return loc, nil
}

// UpdateLocation merges allowed updates and returns the updated record.
func (s *DefaultLocationService) UpdateLocation(id string, updates map[string]interface{}) (*models.Location, error) {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("location not found: %w", err)
	}

	updateFields := bson.M{}

	if v, ok := updates["name"].(string); ok && v != "" {
		updateFields["name"] = v
		existing.Name = v
	}
	if v, ok := updates["address_line1"].(string); ok && v != "" {
		updateFields["address_line1"] = v
		existing.AddressLine1 = v
	}
	if v, ok := updates["address_line2"].(string); ok {
		updateFields["address_line2"] = v
		existing.AddressLine2 = v
	}
	if v, ok := updates["city"].(string); ok && v != "" {
		updateFields["city"] = v
		existing.City = v
	}
	if v, ok := updates["state"].(string); ok {
		updateFields["state"] = v
		existing.State = v
	}
	if v, ok := updates["postal_code"].(string); ok {
		updateFields["postal_code"] = v
		existing.PostalCode = v
	}
	if v, ok := updates["country"].(string); ok {
		updateFields["country"] = v
		existing.Country = v
	}
	if v, ok := updates["mobile_radius_km"].(float64); ok {
		if v < 0 {
			return nil, fmt.Errorf("mobile radius cannot be negative")
		}
		updateFields["mobile_radius_km"] = v
		existing.MobileRadiusKm = v
	}

	if len(updateFields) == 0 {
		return existing, nil
	}
	updateFields["updated_at"] = time.Now()

	if err := s.Repo.UpdateWithDocument(id, bson.M{"$set": updateFields}); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *DefaultLocationService) DeleteLocation(id string) error {
	loc, err := s.Repo.GetByID(id)
	if err != nil {
		return fmt.Errorf("location not found: %w", err)
	}
	if loc.Primary {
		return fmt.Errorf("cannot delete the primary location; set another location primary first")
	}
	return s.Repo.Delete(id)
}

// SetPrimary makes the given location the business's primary one. The flag is
// cleared on every other location first, then set on the target; the two
// writes are independent calls with no transaction, so a failure in between
// can briefly leave the business with no primary location.
func (s *DefaultLocationService) SetPrimary(businessID, locationID string) error {
	loc, err := s.Repo.GetByID(locationID)
	if err != nil {
		return fmt.Errorf("location not found: %w", err)
	}
	if loc.BusinessID != businessID {
		return fmt.Errorf("location %s does not belong to business %s", locationID, businessID)
	}

	if err := s.Repo.ClearPrimary(businessID); err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{"primary": true, "updated_at": time.Now()}}
	if err := s.Repo.UpdateWithDocument(locationID, update); err != nil {
		return fmt.Errorf("failed to set primary location: %w", err)
	}
	return nil
}

func (s *DefaultLocationService) UpdateHours(id string, hours models.BusinessHours) error {
	if err := business.ValidateHours(hours); err != nil {
		return err
	}
	update := bson.M{"$set": bson.M{"hours": hours, "updated_at": time.Now()}}
	if err := s.Repo.UpdateWithDocument(id, update); err != nil {
		return fmt.Errorf("failed to update hours for location %s: %w", id, err)
	}
	return nil
}
