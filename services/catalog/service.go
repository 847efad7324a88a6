package catalog

import (
	"fmt"
	"time"

	"marketdesk/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

func validDeliveryMode(mode string) bool {
	switch mode {
	case models.DeliveryBusinessLocation, models.DeliveryCustomerLocation,
		models.DeliveryVirtual, models.DeliveryBoth:
		return true
	}
	return false
}

func (s *DefaultCatalogService) ListServices(businessID string) ([]ServiceWithAddons, error) {
	services, err := s.Repo.ListServicesByBusiness(businessID)
	if err != nil {
		return nil, err
	}

	addons, err := s.Repo.ListAddonsByBusiness(businessID)
	if err != nil {
		return nil, err
	}
	addonsByID := make(map[string]models.Addon, len(addons))
	for _, a := range addons {
		addonsByID[a.ID] = a
	}

	out := make([]ServiceWithAddons, 0, len(services))
	for _, svc := range services {
		ids, err := s.Repo.ListAddonIDsForService(svc.ID)
		if err != nil {
			return nil, err
		}
		entry := ServiceWithAddons{Service: svc}
		for _, id := range ids {
			if a, ok := addonsByID[id]; ok {
				entry.Addons = append(entry.Addons, a)
			}
		}
		out = append(out, entry)
	}
	return out, nil
}

func (s *DefaultCatalogService) GetService(id string) (*ServiceWithAddons, error) {
	svc, err := s.Repo.GetServiceByID(id)
	if err != nil {
		return nil, err
	}
	ids, err := s.Repo.ListAddonIDsForService(id)
	if err != nil {
		return nil, err
	}
	entry := &ServiceWithAddons{Service: *svc}
	for _, addonID := range ids {
		addon, err := s.Repo.GetAddonByID(addonID)
		if err != nil {
			continue // dangling link
		}
		entry.Addons = append(entry.Addons, *addon)
	}
	return entry, nil
}

func (s *DefaultCatalogService) CreateService(svc *models.Service) (*models.Service, error) {
	if svc.Name == "" {
		return nil, fmt.Errorf("service name is required")
	}
	if svc.DurationMinutes <= 0 {
		return nil, fmt.Errorf("service duration must be positive")
	}
	if !validDeliveryMode(svc.DeliveryMode) {
		return nil, fmt.Errorf("unknown delivery mode %q", svc.DeliveryMode)
	}
	if svc.MinimumPrice > 0 && svc.Price < svc.MinimumPrice {
		return nil, PriceBelowMinimumError{Price: svc.Price, Minimum: svc.MinimumPrice}
	}

	svc.ID = uuid.New().String()
	svc.Active = true
	svc.CreatedAt = time.Now()
	if err := s.Repo.CreateService(svc); err != nil {
		return nil, err
	}
	return svc, nil
}

// UpdateService merges allowed updates. Price changes are validated against
// the minimum, including a minimum updated in the same call.
func (s *DefaultCatalogService) UpdateService(id string, updates map[string]interface{}) (*models.Service, error) {
	existing, err := s.Repo.GetServiceByID(id)
	if err != nil {
		return nil, fmt.Errorf("service not found: %w", err)
	}

	updateFields := bson.M{}

	if v, ok := updates["name"].(string); ok && v != "" {
		updateFields["name"] = v
		existing.Name = v
	}
	if v, ok := updates["description"].(string); ok {
		updateFields["description"] = v
		existing.Description = v
	}
	if v, ok := updates["category"].(string); ok {
		updateFields["category"] = v
		existing.Category = v
	}
	if v, ok := updates["duration_minutes"].(float64); ok {
		if v <= 0 {
			return nil, fmt.Errorf("service duration must be positive")
		}
		updateFields["duration_minutes"] = int(v)
		existing.DurationMinutes = int(v)
	}
	if v, ok := updates["delivery_mode"].(string); ok && v != "" {
		if !validDeliveryMode(v) {
			return nil, fmt.Errorf("unknown delivery mode %q", v)
		}
		updateFields["delivery_mode"] = v
		existing.DeliveryMode = v
	}
	if v, ok := updates["minimum_price"].(float64); ok {
		updateFields["minimum_price"] = v
		existing.MinimumPrice = v
	}
	if v, ok := updates["price"].(float64); ok {
		updateFields["price"] = v
		existing.Price = v
	}
	if v, ok := updates["active"].(bool); ok {
		updateFields["active"] = v
		existing.Active = v
	}
	if v, ok := updates["image_url"].(string); ok && v != "" {
		updateFields["image_url"] = v
		existing.ImageURL = v
	}

	if existing.MinimumPrice > 0 && existing.Price < existing.MinimumPrice {
		return nil, PriceBelowMinimumError{Price: existing.Price, Minimum: existing.MinimumPrice}
	}

	if len(updateFields) == 0 {
		return existing, nil
	}
	updateFields["updated_at"] = time.Now()

	if err := s.Repo.UpdateServiceWithDocument(id, bson.M{"$set": updateFields}); err != nil {
		return nil, err
	}
	return existing, nil
}

func (s *DefaultCatalogService) DeleteService(id string) error {
	return s.Repo.DeleteService(id)
}

func (s *DefaultCatalogService) ListAddons(businessID string) ([]models.Addon, error) {
	return s.Repo.ListAddonsByBusiness(businessID)
}

func (s *DefaultCatalogService) CreateAddon(addon *models.Addon) (*models.Addon, error) {
	if addon.Name == "" {
		return nil, fmt.Errorf("addon name is required")
	}
	if addon.Price < 0 {
		return nil, fmt.Errorf("addon price cannot be negative")
	}
	addon.ID = uuid.New().String()
	addon.CreatedAt = time.Now()
	if err := s.Repo.CreateAddon(addon); err != nil {
		return nil, err
	}
	return addon, nil
}

// DeleteAddon removes an addon after confirming it belongs to the business.
func (s *DefaultCatalogService) DeleteAddon(businessID, id string) error {
	addon, err := s.Repo.GetAddonByID(id)
	if err != nil {
		return fmt.Errorf("addon not found: %w", err)
	}
	if addon.BusinessID != businessID {
		return fmt.Errorf("addon %s does not belong to business %s", id, businessID)
	}
	return s.Repo.DeleteAddon(id)
}

// AttachAddon links an addon to a service; both must belong to the same
// business.
func (s *DefaultCatalogService) AttachAddon(serviceID, addonID string) error {
	svc, err := s.Repo.GetServiceByID(serviceID)
	if err != nil {
		return fmt.Errorf("service not found: %w", err)
	}
	addon, err := s.Repo.GetAddonByID(addonID)
	if err != nil {
		return fmt.Errorf("addon not found: %w", err)
	}
	if svc.BusinessID != addon.BusinessID {
		return fmt.Errorf("addon %s and service %s belong to different businesses", addonID, serviceID)
	}

	existing, err := s.Repo.ListAddonIDsForService(serviceID)
	if err != nil {
		return err
	}
	for _, id := range existing {
		if id == addonID {
			return fmt.Errorf("addon %s is already attached to service %s", addonID, serviceID)
		}
	}
	return s.Repo.AttachAddon(serviceID, addonID)
}

func (s *DefaultCatalogService) DetachAddon(serviceID, addonID string) error {
	return s.Repo.DetachAddon(serviceID, addonID)
}
