package location

import (
	locationRepo "marketdesk/database/repository/location"
	"marketdesk/models"
)

// LocationService manages business locations, including the single-primary
// rule and per-location business hours.
type LocationService interface {
	ListLocations(businessID string) ([]models.Location, error)
	GetLocation(id string) (*models.Location, error)
	CreateLocation(loc *models.Location) (*models.Location, error)
	UpdateLocation(id string, updates map[string]interface{}) (*models.Location, error)
	DeleteLocation(id string) error
	SetPrimary(businessID, locationID string) error
	UpdateHours(id string, hours models.BusinessHours) error
}

// DefaultLocationService is the production implementation.
type DefaultLocationService struct {
	Repo locationRepo.LocationRepository
}
