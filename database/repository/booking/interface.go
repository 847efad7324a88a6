package bookingRepo

import (
	"marketdesk/models"

	"go.mongodb.org/mongo-driver/bson"
)

// BookingRepository abstracts persistence for booking records. Bookings are
// created by the customer-facing flow and never deleted here; the dashboard
// reads them in bulk and patches individual fields.
type BookingRepository interface {
	GetByID(id string) (*models.Booking, error)
	ListByBusiness(businessID string) ([]models.Booking, error)
	ListByBusinessAndDateRange(businessID, from, to string) ([]models.Booking, error)
	UpdateWithDocument(id string, updateDoc bson.M) error
}
