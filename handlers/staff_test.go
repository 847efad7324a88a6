package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketdesk/models"
	"marketdesk/services/staff"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeStaffService struct {
	members         map[string]*models.Staff
	updateCalls     int
	deactivateCalls int
	checkCalls      int
}

func (f *fakeStaffService) ListStaff(businessID string) ([]models.Staff, error) { return nil, nil }

func (f *fakeStaffService) GetStaff(id string) (*models.Staff, error) {
	m, ok := f.members[id]
	if !ok {
		return nil, fmt.Errorf("staff %s not found", id)
	}
	return m, nil
}

func (f *fakeStaffService) Invite(businessID string, input staff.InviteInput) (*models.Staff, error) {
	return nil, nil
}

func (f *fakeStaffService) CompleteOnboarding(staffID, otp, password string) (*staff.AuthResponse, error) {
	return nil, nil
}

func (f *fakeStaffService) Authenticate(email, password string) (*staff.AuthResponse, error) {
	return nil, nil
}

func (f *fakeStaffService) RefreshToken(staffID string) (*staff.AuthResponse, error) {
	return nil, nil
}

func (f *fakeStaffService) RevokeToken(staffID string) error { return nil }

func (f *fakeStaffService) UpdateStaff(id string, updates map[string]interface{}) (*models.Staff, error) {
	f.updateCalls++
	return f.members[id], nil
}

func (f *fakeStaffService) Deactivate(id string) error {
	f.deactivateCalls++
	return nil
}

func (f *fakeStaffService) SetBackgroundCheckStatus(id, status string) error {
	f.checkCalls++
	return nil
}

func newStaffTestContext(t *testing.T, body, staffID, businessID string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: staffID}}
	c.Set("businessID", businessID)
	c.Request = httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func newFakeStaffService() *fakeStaffService {
	return &fakeStaffService{members: map[string]*models.Staff{
		"staff-1": {ID: "staff-1", BusinessID: "biz-A", Role: models.RoleProvider, Active: true},
	}}
}

func TestUpdateStaffForeignBusiness(t *testing.T) {
	svc := newFakeStaffService()
	h := NewStaffHandler(svc)

	c, w := newStaffTestContext(t, `{"role":"owner"}`, "staff-1", "biz-B")
	h.UpdateStaffHandler(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, svc.updateCalls)
}

func TestDeactivateStaffForeignBusiness(t *testing.T) {
	svc := newFakeStaffService()
	h := NewStaffHandler(svc)

	c, w := newStaffTestContext(t, ``, "staff-1", "biz-B")
	h.DeactivateStaffHandler(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, svc.deactivateCalls)
}

func TestSetBackgroundCheckForeignBusiness(t *testing.T) {
	svc := newFakeStaffService()
	h := NewStaffHandler(svc)

	c, w := newStaffTestContext(t, `{"status":"passed"}`, "staff-1", "biz-B")
	h.SetBackgroundCheckHandler(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, svc.checkCalls)
}

func TestUpdateStaffOwnBusiness(t *testing.T) {
	svc := newFakeStaffService()
	h := NewStaffHandler(svc)

	c, w := newStaffTestContext(t, `{"phone":"555-0100"}`, "staff-1", "biz-A")
	h.UpdateStaffHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.updateCalls)
}
