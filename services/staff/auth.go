package staff

import (
	"fmt"
	"time"

	"marketdesk/models"
	"marketdesk/utils"

	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// Authenticate checks the staff member's credentials and issues a fresh
// session token. The token hash is persisted so the auth middleware can match
// bearer tokens back to the account.
func (s *DefaultStaffService) Authenticate(email, password string) (*AuthResponse, error) {
	member, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !member.Active {
		return nil, ErrInactiveStaff
	}
	if err := bcrypt.CompareHashAndPassword([]byte(member.Security.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(member.ID, member.Email, 24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	update := bson.M{"$set": bson.M{
		"security.tokenHash": utils.HashToken(token),
		"updated_at":         time.Now(),
	}}
	if err := s.Repo.UpdateWithDocument(member.ID, update); err != nil {
		return nil, fmt.Errorf("failed to store session token: %w", err)
	}

	member.Security = models.Security{}
	return &AuthResponse{Staff: member, Token: token}, nil
}

// RefreshToken rotates the caller's session token. The stored hash is
// replaced, so the previous token stops working immediately.
func (s *DefaultStaffService) RefreshToken(staffID string) (*AuthResponse, error) {
	member, err := s.Repo.GetByID(staffID)
	if err != nil {
		return nil, fmt.Errorf("staff member not found: %w", err)
	}
	if !member.Active {
		return nil, ErrInactiveStaff
	}

	token, err := utils.GenerateToken(member.ID, member.Email, 24*time.Hour)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	update := bson.M{"$set": bson.M{
		"security.tokenHash": utils.HashToken(token),
		"updated_at":         time.Now(),
	}}
	if err := s.Repo.UpdateWithDocument(member.ID, update); err != nil {
		return nil, fmt.Errorf("failed to store session token: %w", err)
	}

	member.Security = models.Security{}
	return &AuthResponse{Staff: member, Token: token}, nil
}

// RevokeToken clears the stored token hash, ending the session.
func (s *DefaultStaffService) RevokeToken(staffID string) error {
	update := bson.M{"$set": bson.M{"security.tokenHash": "", "updated_at": time.Now()}}
	if err := s.Repo.UpdateWithDocument(staffID, update); err != nil {
		return fmt.Errorf("failed to revoke token for staff %s: %w", staffID, err)
	}
	return nil
}
