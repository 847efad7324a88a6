package staff

import (
	staffRepo "marketdesk/database/repository/staff"
	"marketdesk/models"
)

// InviteInput carries the fields an owner or dispatcher supplies when
// inviting a new staff member.
type InviteInput struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Role            string `json:"role"`
	LocationID      string `json:"location_id"`
	BusinessManaged bool   `json:"business_managed"`
}

// AuthResponse is returned after successful authentication or onboarding.
type AuthResponse struct {
	Staff *models.Staff `json:"staff"`
	Token string        `json:"token"`
}

// StaffService manages the business's staff roster: OTP-based onboarding,
// authentication, and record updates.
type StaffService interface {
	ListStaff(businessID string) ([]models.Staff, error)
	GetStaff(id string) (*models.Staff, error)

	// Onboarding
	Invite(businessID string, input InviteInput) (*models.Staff, error)
	CompleteOnboarding(staffID, otp, password string) (*AuthResponse, error)

	// Authentication
	Authenticate(email, password string) (*AuthResponse, error)
	RefreshToken(staffID string) (*AuthResponse, error)
	RevokeToken(staffID string) error

	// Account management
	UpdateStaff(id string, updates map[string]interface{}) (*models.Staff, error)
	Deactivate(id string) error
	SetBackgroundCheckStatus(id, status string) error
}

// DefaultStaffService is the production implementation.
type DefaultStaffService struct {
	Repo   staffRepo.StaffRepository
	OTP    OTPStore
	Mailer Mailer
}
