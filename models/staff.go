package models

import "time"

// Staff roles.
const (
	RoleOwner      = "owner"
	RoleDispatcher = "dispatcher"
	RoleProvider   = "provider"
)

// Verification statuses for staff members.
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

// Security holds credentials. Plaintext fields never persist; hashes never
// serialize to JSON.
type Security struct {
	Password     string `bson:"-" json:"password,omitempty"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Token        string `bson:"-" json:"token,omitempty"`
	TokenHash    string `bson:"tokenHash" json:"-"`
}

// Staff is a member of a business: the owner, a dispatcher, or a service
// provider. Providers may be assigned to bookings.
type Staff struct {
	ID         string `bson:"id" json:"id"`
	BusinessID string `bson:"business_id" json:"business_id"`
	FirstName  string `bson:"first_name" json:"first_name"`
	LastName   string `bson:"last_name" json:"last_name"`
	Email      string `bson:"email" json:"email"`
	Phone      string `bson:"phone,omitempty" json:"phone,omitempty"`
	Role       string `bson:"role" json:"role"`
	Active     bool   `bson:"active" json:"active"`

	VerificationStatus    string `bson:"verification_status" json:"verification_status"`
	BackgroundCheckStatus string `bson:"background_check_status,omitempty" json:"background_check_status,omitempty"`

	// LocationID optionally pins the staff member to one business location.
	LocationID string `bson:"location_id,omitempty" json:"location_id,omitempty"`

	// BusinessManaged controls whether the business (true) or the provider
	// themselves (false) curates the provider's service list.
	BusinessManaged bool `bson:"business_managed" json:"business_managed"`

	AvatarURL string   `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	Security  Security `bson:"security" json:"security,omitzero"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at,omitempty" json:"updated_at,omitzero"`
}

// ValidRole reports whether r is one of the known staff roles.
func ValidRole(r string) bool {
	return r == RoleOwner || r == RoleDispatcher || r == RoleProvider
}
