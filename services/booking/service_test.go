package booking

import (
	"fmt"
	"testing"
	"time"

	"marketdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeBookingRepo struct {
	bookings map[string]*models.Booking
	updates  []bson.M
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking with id %s not found", id)
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) ListByBusiness(businessID string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.BusinessID == businessID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) ListByBusinessAndDateRange(businessID, from, to string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range r.bookings {
		if b.BusinessID == businessID && b.Date >= from && b.Date <= to {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	if _, ok := r.bookings[id]; !ok {
		return fmt.Errorf("booking with id %s not found", id)
	}
	r.updates = append(r.updates, updateDoc)
	return nil
}

type fakeStaffRepo struct {
	staff map[string]*models.Staff
}

func (r *fakeStaffRepo) GetByID(id string) (*models.Staff, error) {
	s, ok := r.staff[id]
	if !ok {
		return nil, fmt.Errorf("staff with id %s not found", id)
	}
	return s, nil
}

func (r *fakeStaffRepo) GetByEmail(email string) (*models.Staff, error) {
	for _, s := range r.staff {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, fmt.Errorf("staff with email %s not found", email)
}

func (r *fakeStaffRepo) GetByTokenHash(string) (*models.Staff, error) {
	return nil, fmt.Errorf("not implemented")
}

func (r *fakeStaffRepo) ListByBusiness(businessID string) ([]models.Staff, error) {
	var out []models.Staff
	for _, s := range r.staff {
		if s.BusinessID == businessID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeStaffRepo) Create(s *models.Staff) error {
	r.staff[s.ID] = s
	return nil
}

func (r *fakeStaffRepo) UpdateWithDocument(id string, _ bson.M) error {
	if _, ok := r.staff[id]; !ok {
		return fmt.Errorf("staff with id %s not found", id)
	}
	return nil
}

func (r *fakeStaffRepo) Delete(id string) error {
	delete(r.staff, id)
	return nil
}

func newTestService() (*DefaultBookingService, *fakeBookingRepo, *fakeStaffRepo) {
	bookings := &fakeBookingRepo{bookings: map[string]*models.Booking{
		"b-unassigned": {ID: "b-unassigned", BusinessID: "biz1", Date: "2026-09-03", Status: models.BookingStatusPending},
		"b-assigned":   {ID: "b-assigned", BusinessID: "biz1", Date: "2026-09-03", Status: models.BookingStatusPending, ProviderID: "p1"},
	}}
	staff := &fakeStaffRepo{staff: map[string]*models.Staff{
		"p1":       {ID: "p1", BusinessID: "biz1", Role: models.RoleProvider, Active: true},
		"p-other":  {ID: "p-other", BusinessID: "biz2", Role: models.RoleProvider, Active: true},
		"p-idle":   {ID: "p-idle", BusinessID: "biz1", Role: models.RoleProvider, Active: false},
		"d-spatch": {ID: "d-spatch", BusinessID: "biz1", Role: models.RoleDispatcher, Active: true},
	}}
	return &DefaultBookingService{Repo: bookings, StaffRepo: staff}, bookings, staff
}

func TestUpdateStatusRequiresProviderForConfirm(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.UpdateStatus("b-unassigned", models.BookingStatusConfirmed, "")
	require.Error(t, err)
	var provErr ProviderRequiredError
	assert.ErrorAs(t, err, &provErr)

	_, err = svc.UpdateStatus("b-unassigned", models.BookingStatusCompleted, "")
	assert.ErrorAs(t, err, &provErr)

	// Cancelling without a provider is fine.
	updated, err := svc.UpdateStatus("b-unassigned", models.BookingStatusCancelled, "")
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCancelled, updated.Status)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc, _, _ := newTestService()
	_, err := svc.UpdateStatus("b-assigned", "archived", "")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestUpdateStatusKeepsDeclineReasonOnlyForDeclined(t *testing.T) {
	svc, _, _ := newTestService()

	declined, err := svc.UpdateStatus("b-assigned", models.BookingStatusDeclined, "double booked")
	require.NoError(t, err)
	assert.Equal(t, "double booked", declined.DeclineReason)

	confirmed, err := svc.UpdateStatus("b-assigned", models.BookingStatusConfirmed, "stale reason")
	require.NoError(t, err)
	assert.Empty(t, confirmed.DeclineReason)
}

func TestAssignProviderValidation(t *testing.T) {
	svc, _, _ := newTestService()

	updated, err := svc.AssignProvider("b-unassigned", "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", updated.ProviderID)

	_, err = svc.AssignProvider("b-unassigned", "p-other")
	assert.ErrorContains(t, err, "does not belong to business")

	_, err = svc.AssignProvider("b-unassigned", "p-idle")
	assert.ErrorContains(t, err, "not active")

	_, err = svc.AssignProvider("b-unassigned", "d-spatch")
	assert.ErrorContains(t, err, "not a provider")
}

func TestCalendarUsesGridRange(t *testing.T) {
	svc, _, _ := newTestService()

	cells, err := svc.Calendar("biz1", CalendarWeek, date(2026, time.September, 2))
	require.NoError(t, err)
	require.Len(t, cells, 7)

	byDate := make(map[string]CalendarCell)
	for _, c := range cells {
		byDate[c.Date] = c
	}
	assert.Len(t, byDate["2026-09-03"].Bookings, 2)
}
