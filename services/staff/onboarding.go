package staff

import (
	"fmt"
	"time"

	"marketdesk/models"
	"marketdesk/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// Invite creates an unverified staff record and emails a one-time code the
// invitee uses to finish onboarding.
func (s *DefaultStaffService) Invite(businessID string, input InviteInput) (*models.Staff, error) {
	if !models.ValidRole(input.Role) {
		return nil, fmt.Errorf("unknown staff role %q", input.Role)
	}
	if existing, err := s.Repo.GetByEmail(input.Email); err == nil && existing != nil {
		return nil, fmt.Errorf("a staff member with email %s already exists", input.Email)
	}

	member := &models.Staff{
		ID:                 uuid.New().String(),
		BusinessID:         businessID,
		FirstName:          input.FirstName,
		LastName:           input.LastName,
		Email:              input.Email,
		Phone:              input.Phone,
		Role:               input.Role,
		LocationID:         input.LocationID,
		BusinessManaged:    input.BusinessManaged,
		Active:             false,
		VerificationStatus: models.VerificationPending,
		CreatedAt:          time.Now(),
	}
	if err := s.Repo.Create(member); err != nil {
		return nil, fmt.Errorf("failed to create staff record: %w", err)
	}

	otp, err := generateSecureOTP(6)
	if err != nil {
		return nil, fmt.Errorf("failed to generate OTP: %w", err)
	}
	if err := s.OTP.Put(member.ID, otp, otpTTL); err != nil {
		return nil, err
	}
	if err := s.Mailer.SendOTP(member.Email, otp); err != nil {
		return nil, fmt.Errorf("failed to send onboarding OTP: %w", err)
	}
	return member, nil
}

// CompleteOnboarding verifies the invite OTP, sets the staff member's
// password, activates the account, and issues a session token.
func (s *DefaultStaffService) CompleteOnboarding(staffID, otp, password string) (*AuthResponse, error) {
	member, err := s.Repo.GetByID(staffID)
	if err != nil {
		return nil, fmt.Errorf("staff not found: %w", err)
	}

	stored, err := s.OTP.Get(staffID)
	if err != nil || stored != otp {
		return nil, OTPMismatchError{StaffID: staffID}
	}
	if err := s.OTP.Delete(staffID); err != nil {
		utils.GetLogger().Sugar().Warnf("failed to clear OTP for staff %s: %v", staffID, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	token, err := utils.GenerateToken(member.ID, member.Email, 24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	update := bson.M{"$set": bson.M{
		"security.passwordHash": string(hash),
		"security.tokenHash":    utils.HashToken(token),
		"active":                true,
		"verification_status":   models.VerificationVerified,
		"updated_at":            time.Now(),
	}}
	if err := s.Repo.UpdateWithDocument(staffID, update); err != nil {
		return nil, fmt.Errorf("failed to activate staff: %w", err)
	}

	member.Active = true
	member.VerificationStatus = models.VerificationVerified
	member.Security = models.Security{}
	return &AuthResponse{Staff: member, Token: token}, nil
}
