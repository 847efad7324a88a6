package models

import "time"

// Booking statuses. Status writes are not gated by a state machine; the only
// rule enforced server-side is that confirmed/completed require an assigned
// provider.
const (
	BookingStatusPending    = "pending"
	BookingStatusConfirmed  = "confirmed"
	BookingStatusInProgress = "in_progress"
	BookingStatusCompleted  = "completed"
	BookingStatusCancelled  = "cancelled"
	BookingStatusDeclined   = "declined"
	BookingStatusNoShow     = "no_show"
)

// Delivery modes for a booking or service.
const (
	DeliveryBusinessLocation = "business_location"
	DeliveryCustomerLocation = "customer_location"
	DeliveryVirtual          = "virtual"
	DeliveryBoth             = "both"
)

// Booking represents a booking record as seen by the dashboard. Bookings are
// created by the customer-facing flow; this service reads them in bulk and
// mutates individual fields.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	Reference     string    `bson:"reference" json:"reference"`                     // Human-facing booking reference (e.g., "BK-4F7A")
	BusinessID    string    `bson:"business_id" json:"business_id"`
	ServiceID     string    `bson:"service_id" json:"service_id"`
	CustomerID    string    `bson:"customer_id,omitempty" json:"customer_id,omitempty"`
	ProviderID    string    `bson:"provider_id,omitempty" json:"provider_id,omitempty"`
	LocationID    string    `bson:"location_id,omitempty" json:"location_id,omitempty"`
	Date          string    `bson:"date" json:"date"`                               // "YYYY-MM-DD"
	StartTime     string    `bson:"start_time" json:"start_time"`                   // "HH:MM", 24-hour
	Status        string    `bson:"status" json:"status"`
	DeliveryMode  string    `bson:"delivery_mode" json:"delivery_mode"`
	TotalPrice    float64   `bson:"total_price" json:"total_price"`
	DeclineReason string    `bson:"decline_reason,omitempty" json:"decline_reason,omitempty"`

	// Customer snapshot fields. GuestName is used when no customer profile is
	// linked to the booking.
	CustomerFirstName string `bson:"customer_first_name,omitempty" json:"customer_first_name,omitempty"`
	CustomerLastName  string `bson:"customer_last_name,omitempty" json:"customer_last_name,omitempty"`
	CustomerEmail     string `bson:"customer_email,omitempty" json:"customer_email,omitempty"`
	GuestName         string `bson:"guest_name,omitempty" json:"guest_name,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"updated_at,omitzero"`
}

// CustomerName returns the customer's display name, falling back to the guest
// name when no customer profile is linked.
func (b *Booking) CustomerName() string {
	if b.CustomerFirstName == "" && b.CustomerLastName == "" {
		return b.GuestName
	}
	if b.CustomerFirstName == "" {
		return b.CustomerLastName
	}
	if b.CustomerLastName == "" {
		return b.CustomerFirstName
	}
	return b.CustomerFirstName + " " + b.CustomerLastName
}

// ValidBookingStatus reports whether s is one of the known booking statuses.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusInProgress,
		BookingStatusCompleted, BookingStatusCancelled, BookingStatusDeclined,
		BookingStatusNoShow:
		return true
	}
	return false
}
