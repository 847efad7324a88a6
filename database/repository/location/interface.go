package locationRepo

import (
	"marketdesk/models"

	"go.mongodb.org/mongo-driver/bson"
)

// LocationRepository abstracts persistence for business locations.
type LocationRepository interface {
	GetByID(id string) (*models.Location, error)
	ListByBusiness(businessID string) ([]models.Location, error)
	Create(loc *models.Location) error
	UpdateWithDocument(id string, updateDoc bson.M) error
	Delete(id string) error
	// ClearPrimary unsets the primary flag on every location of the business.
	// Paired with a follow-up UpdateWithDocument to set the new primary; the
	// two calls are independent, with no transaction.
	ClearPrimary(businessID string) error
}
