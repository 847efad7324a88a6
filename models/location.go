package models

import "time"

// Location is a physical business location. At most one location per business
// carries the primary flag; reassignment clears the flag on all other rows
// before setting the new one.
type Location struct {
	ID         string `bson:"id" json:"id"`
	BusinessID string `bson:"business_id" json:"business_id"`
	Name       string `bson:"name" json:"name"`

	AddressLine1 string `bson:"address_line1" json:"address_line1"`
	AddressLine2 string `bson:"address_line2,omitempty" json:"address_line2,omitempty"`
	City         string `bson:"city" json:"city"`
	State        string `bson:"state,omitempty" json:"state,omitempty"`
	PostalCode   string `bson:"postal_code,omitempty" json:"postal_code,omitempty"`
	Country      string `bson:"country,omitempty" json:"country,omitempty"`

	Primary bool `bson:"primary" json:"primary"`

	// MobileRadiusKm bounds how far from this location mobile services are
	// offered. Zero means no mobile service.
	MobileRadiusKm float64 `bson:"mobile_radius_km,omitempty" json:"mobile_radius_km,omitempty"`

	Hours BusinessHours `bson:"hours,omitempty" json:"hours,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"updated_at,omitzero"`
}
