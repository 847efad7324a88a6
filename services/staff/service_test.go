package staff

import (
	"fmt"
	"testing"
	"time"

	"marketdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

type memStaffRepo struct {
	staff map[string]*models.Staff
}

func (r *memStaffRepo) GetByID(id string) (*models.Staff, error) {
	s, ok := r.staff[id]
	if !ok {
		return nil, fmt.Errorf("staff with id %s not found", id)
	}
	cp := *s
	return &cp, nil
}

func (r *memStaffRepo) GetByEmail(email string) (*models.Staff, error) {
	for _, s := range r.staff {
		if s.Email == email {
			cp := *s
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("staff with email %s not found", email)
}

func (r *memStaffRepo) GetByTokenHash(hash string) (*models.Staff, error) {
	for _, s := range r.staff {
		if s.Security.TokenHash == hash && hash != "" {
			cp := *s
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("no staff for token hash")
}

func (r *memStaffRepo) ListByBusiness(businessID string) ([]models.Staff, error) {
	var out []models.Staff
	for _, s := range r.staff {
		if s.BusinessID == businessID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *memStaffRepo) Create(s *models.Staff) error {
	cp := *s
	r.staff[s.ID] = &cp
	return nil
}

// Applies the subset of $set paths the service actually writes.
func (r *memStaffRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	s, ok := r.staff[id]
	if !ok {
		return fmt.Errorf("staff with id %s not found", id)
	}
	set, _ := updateDoc["$set"].(bson.M)
	for k, v := range set {
		switch k {
		case "security.passwordHash":
			s.Security.PasswordHash = v.(string)
		case "security.tokenHash":
			s.Security.TokenHash = v.(string)
		case "active":
			s.Active = v.(bool)
		case "verification_status":
			s.VerificationStatus = v.(string)
		case "background_check_status":
			s.BackgroundCheckStatus = v.(string)
		case "role":
			s.Role = v.(string)
		}
	}
	return nil
}

func (r *memStaffRepo) Delete(id string) error {
	delete(r.staff, id)
	return nil
}

type memOTPStore struct {
	codes map[string]string
}

func (s *memOTPStore) Put(key, code string, _ time.Duration) error {
	s.codes[key] = code
	return nil
}

func (s *memOTPStore) Get(key string) (string, error) {
	code, ok := s.codes[key]
	if !ok {
		return "", fmt.Errorf("no OTP for key %s", key)
	}
	return code, nil
}

func (s *memOTPStore) Delete(key string) error {
	delete(s.codes, key)
	return nil
}

type captureMailer struct {
	email string
	code  string
}

func (m *captureMailer) SendOTP(email, code string) error {
	m.email = email
	m.code = code
	return nil
}

func newTestStaffService() (*DefaultStaffService, *memStaffRepo, *memOTPStore, *captureMailer) {
	repo := &memStaffRepo{staff: make(map[string]*models.Staff)}
	otp := &memOTPStore{codes: make(map[string]string)}
	mailer := &captureMailer{}
	return &DefaultStaffService{Repo: repo, OTP: otp, Mailer: mailer}, repo, otp, mailer
}

func TestInviteThenCompleteOnboarding(t *testing.T) {
	svc, repo, _, mailer := newTestStaffService()

	member, err := svc.Invite("biz1", InviteInput{
		FirstName: "Maya",
		LastName:  "Reyes",
		Email:     "maya@example.com",
		Role:      models.RoleProvider,
	})
	require.NoError(t, err)
	assert.False(t, member.Active)
	assert.Equal(t, models.VerificationPending, member.VerificationStatus)
	assert.Equal(t, "maya@example.com", mailer.email)
	require.NotEmpty(t, mailer.code)

	resp, err := svc.CompleteOnboarding(member.ID, mailer.code, "s3cret-pass")
	require.NoError(t, err)
	assert.True(t, resp.Staff.Active)
	assert.NotEmpty(t, resp.Token)

	stored := repo.staff[member.ID]
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Security.PasswordHash), []byte("s3cret-pass")))
	assert.Equal(t, models.VerificationVerified, stored.VerificationStatus)
}

func TestCompleteOnboardingRejectsWrongOTP(t *testing.T) {
	svc, _, _, mailer := newTestStaffService()

	member, err := svc.Invite("biz1", InviteInput{Email: "a@example.com", Role: models.RoleDispatcher})
	require.NoError(t, err)
	require.NotEmpty(t, mailer.code)

	_, err = svc.CompleteOnboarding(member.ID, "WRONG1", "pass")
	var mismatch OTPMismatchError
	assert.ErrorAs(t, err, &mismatch)
}

func TestInviteRejectsDuplicateEmailAndBadRole(t *testing.T) {
	svc, _, _, _ := newTestStaffService()

	_, err := svc.Invite("biz1", InviteInput{Email: "dup@example.com", Role: models.RoleProvider})
	require.NoError(t, err)

	_, err = svc.Invite("biz1", InviteInput{Email: "dup@example.com", Role: models.RoleProvider})
	assert.ErrorContains(t, err, "already exists")

	_, err = svc.Invite("biz1", InviteInput{Email: "new@example.com", Role: "janitor"})
	assert.ErrorContains(t, err, "unknown staff role")
}

func TestAuthenticate(t *testing.T) {
	svc, repo, _, mailer := newTestStaffService()

	member, err := svc.Invite("biz1", InviteInput{Email: "auth@example.com", Role: models.RoleOwner})
	require.NoError(t, err)
	_, err = svc.CompleteOnboarding(member.ID, mailer.code, "good-pass")
	require.NoError(t, err)

	resp, err := svc.Authenticate("auth@example.com", "good-pass")
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Empty(t, resp.Staff.Security.PasswordHash)

	_, err = svc.Authenticate("auth@example.com", "bad-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	repo.staff[member.ID].Active = false
	_, err = svc.Authenticate("auth@example.com", "good-pass")
	assert.ErrorIs(t, err, ErrInactiveStaff)
}
