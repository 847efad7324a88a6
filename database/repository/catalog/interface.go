package catalogRepo

import (
	"marketdesk/models"

	"go.mongodb.org/mongo-driver/bson"
)

// CatalogRepository abstracts persistence for business services, addons, and
// the service-addon links between them.
type CatalogRepository interface {
	GetServiceByID(id string) (*models.Service, error)
	ListServicesByBusiness(businessID string) ([]models.Service, error)
	CreateService(svc *models.Service) error
	UpdateServiceWithDocument(id string, updateDoc bson.M) error
	DeleteService(id string) error

	GetAddonByID(id string) (*models.Addon, error)
	ListAddonsByBusiness(businessID string) ([]models.Addon, error)
	CreateAddon(addon *models.Addon) error
	DeleteAddon(id string) error

	AttachAddon(serviceID, addonID string) error
	DetachAddon(serviceID, addonID string) error
	ListAddonIDsForService(serviceID string) ([]string, error)
}
