package catalog

import (
	catalogRepo "marketdesk/database/repository/catalog"
	"marketdesk/models"
)

// ServiceWithAddons is a service together with its attached addons, as the
// dashboard renders it.
type ServiceWithAddons struct {
	models.Service
	Addons []models.Addon `json:"addons"`
}

// CatalogService manages the business's services and addons.
type CatalogService interface {
	ListServices(businessID string) ([]ServiceWithAddons, error)
	GetService(id string) (*ServiceWithAddons, error)
	CreateService(svc *models.Service) (*models.Service, error)
	UpdateService(id string, updates map[string]interface{}) (*models.Service, error)
	DeleteService(id string) error

	ListAddons(businessID string) ([]models.Addon, error)
	CreateAddon(addon *models.Addon) (*models.Addon, error)
	DeleteAddon(businessID, id string) error
	AttachAddon(serviceID, addonID string) error
	DetachAddon(serviceID, addonID string) error
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo catalogRepo.CatalogRepository
}
