package booking

import (
	"time"

	bookingRepo "marketdesk/database/repository/booking"
	staffRepo "marketdesk/database/repository/staff"
	"marketdesk/models"

	"github.com/go-redis/redis/v8"
)

// BookingService is the dashboard's view onto bookings: bulk reads with
// filtering, calendar assembly, and field-level mutations.
type BookingService interface {
	ListBookings(businessID string, f Filter) ([]models.Booking, error)
	GetBooking(id string) (*models.Booking, error)
	UpdateStatus(id, status, declineReason string) (*models.Booking, error)
	AssignProvider(id, providerID string) (*models.Booking, error)
	Calendar(businessID, mode string, anchor time.Time) ([]CalendarCell, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	StaffRepo staffRepo.StaffRepository
	Cache     *redis.Client
}
