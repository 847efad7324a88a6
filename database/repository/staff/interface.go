package staffRepo

import (
	"marketdesk/models"

	"go.mongodb.org/mongo-driver/bson"
)

// StaffRepository abstracts persistence for staff records.
type StaffRepository interface {
	GetByID(id string) (*models.Staff, error)
	GetByEmail(email string) (*models.Staff, error)
	GetByTokenHash(tokenHash string) (*models.Staff, error)
	ListByBusiness(businessID string) ([]models.Staff, error)
	Create(staff *models.Staff) error
	UpdateWithDocument(id string, updateDoc bson.M) error
	Delete(id string) error
}
