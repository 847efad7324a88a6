package models

import "time"

// Service is an offering a business sells through the marketplace.
type Service struct {
	ID          string `bson:"id" json:"id"`
	BusinessID  string `bson:"business_id" json:"business_id"`
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Category    string `bson:"category,omitempty" json:"category,omitempty"`

	DurationMinutes int     `bson:"duration_minutes" json:"duration_minutes"`
	Price           float64 `bson:"price" json:"price"`
	// MinimumPrice is the floor below which Price may not be set.
	MinimumPrice float64 `bson:"minimum_price,omitempty" json:"minimum_price,omitempty"`

	DeliveryMode string `bson:"delivery_mode" json:"delivery_mode"`
	Active       bool   `bson:"active" json:"active"`
	ImageURL     string `bson:"image_url,omitempty" json:"image_url,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"updated_at,omitzero"`
}

// Addon is an optional extra a business attaches to one or more services.
type Addon struct {
	ID              string    `bson:"id" json:"id"`
	BusinessID      string    `bson:"business_id" json:"business_id"`
	Name            string    `bson:"name" json:"name"`
	Price           float64   `bson:"price" json:"price"`
	DurationMinutes int       `bson:"duration_minutes,omitempty" json:"duration_minutes,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}

// ServiceAddon links an addon to a service.
type ServiceAddon struct {
	ServiceID string `bson:"service_id" json:"service_id"`
	AddonID   string `bson:"addon_id" json:"addon_id"`
}
