package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"marketdesk/models"
	"marketdesk/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBookingService struct {
	bookings      map[string]*models.Booking
	statusCalls   int
	assignCalls   int
	listedBuckets []string
}

func (f *fakeBookingService) ListBookings(businessID string, filter booking.Filter) ([]models.Booking, error) {
	f.listedBuckets = append(f.listedBuckets, filter.Bucket)
	return nil, nil
}

func (f *fakeBookingService) GetBooking(id string) (*models.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking %s not found", id)
	}
	return b, nil
}

func (f *fakeBookingService) UpdateStatus(id, status, declineReason string) (*models.Booking, error) {
	f.statusCalls++
	b := f.bookings[id]
	b.Status = status
	return b, nil
}

func (f *fakeBookingService) AssignProvider(id, providerID string) (*models.Booking, error) {
	f.assignCalls++
	b := f.bookings[id]
	b.ProviderID = providerID
	return b, nil
}

func (f *fakeBookingService) Calendar(businessID, mode string, anchor time.Time) ([]booking.CalendarCell, error) {
	return nil, nil
}

func newBookingTestContext(t *testing.T, method, body, bookingID, businessID string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: bookingID}}
	c.Set("businessID", businessID)
	c.Request = httptest.NewRequest(method, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func newFakeBookingService() *fakeBookingService {
	return &fakeBookingService{bookings: map[string]*models.Booking{
		"bk-1": {ID: "bk-1", BusinessID: "biz-A", Status: models.BookingStatusPending},
	}}
}

func TestUpdateBookingStatusForeignBusiness(t *testing.T) {
	svc := newFakeBookingService()
	h := NewBookingHandler(svc)

	c, w := newBookingTestContext(t, http.MethodPatch, `{"status":"cancelled"}`, "bk-1", "biz-B")
	h.UpdateBookingStatusHandler(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, svc.statusCalls)
	assert.Equal(t, models.BookingStatusPending, svc.bookings["bk-1"].Status)
}

func TestUpdateBookingStatusOwnBusiness(t *testing.T) {
	svc := newFakeBookingService()
	h := NewBookingHandler(svc)

	c, w := newBookingTestContext(t, http.MethodPatch, `{"status":"cancelled"}`, "bk-1", "biz-A")
	h.UpdateBookingStatusHandler(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.statusCalls)
	assert.Equal(t, models.BookingStatusCancelled, svc.bookings["bk-1"].Status)
}

func TestAssignProviderForeignBusiness(t *testing.T) {
	svc := newFakeBookingService()
	h := NewBookingHandler(svc)

	c, w := newBookingTestContext(t, http.MethodPatch, `{"provider_id":"staff-9"}`, "bk-1", "biz-B")
	h.AssignProviderHandler(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, svc.assignCalls)
}

func TestListBookingsRejectsUnknownBucket(t *testing.T) {
	svc := newFakeBookingService()
	h := NewBookingHandler(svc)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("businessID", "biz-A")
	c.Request = httptest.NewRequest(http.MethodGet, "/?bucket=someday", nil)
	h.ListBookingsHandler(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, svc.listedBuckets)
}
