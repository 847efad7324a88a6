package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketdesk/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeLocationService struct {
	locations   map[string]*models.Location
	deleteCalls int
	hoursCalls  int
}

func (f *fakeLocationService) ListLocations(businessID string) ([]models.Location, error) {
	return nil, nil
}

func (f *fakeLocationService) GetLocation(id string) (*models.Location, error) {
	loc, ok := f.locations[id]
	if !ok {
		return nil, fmt.Errorf("location %s not found", id)
	}
	return loc, nil
}

func (f *fakeLocationService) CreateLocation(loc *models.Location) (*models.Location, error) {
	return loc, nil
}

func (f *fakeLocationService) UpdateLocation(id string, updates map[string]interface{}) (*models.Location, error) {
	return f.locations[id], nil
}

func (f *fakeLocationService) DeleteLocation(id string) error {
	f.deleteCalls++
	return nil
}

func (f *fakeLocationService) SetPrimary(businessID, locationID string) error { return nil }

func (f *fakeLocationService) UpdateHours(id string, hours models.BusinessHours) error {
	f.hoursCalls++
	return nil
}

func newLocationTestContext(t *testing.T, body, locationID, businessID string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: locationID}}
	c.Set("businessID", businessID)
	c.Request = httptest.NewRequest(http.MethodPut, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func newFakeLocationService() *fakeLocationService {
	return &fakeLocationService{locations: map[string]*models.Location{
		"loc-1": {ID: "loc-1", BusinessID: "biz-A", Name: "Downtown"},
	}}
}

func TestDeleteLocationForeignBusiness(t *testing.T) {
	svc := newFakeLocationService()
	h := NewLocationHandler(svc)

	c, w := newLocationTestContext(t, ``, "loc-1", "biz-B")
	h.DeleteLocationHandler(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, svc.deleteCalls)
}

func TestUpdateLocationHoursForeignBusiness(t *testing.T) {
	svc := newFakeLocationService()
	h := NewLocationHandler(svc)

	c, w := newLocationTestContext(t, `{}`, "loc-1", "biz-B")
	h.UpdateLocationHoursHandler(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, svc.hoursCalls)
}

func TestUpdateLocationHoursOwnBusiness(t *testing.T) {
	svc := newFakeLocationService()
	h := NewLocationHandler(svc)

	c, w := newLocationTestContext(t, `{}`, "loc-1", "biz-A")
	h.UpdateLocationHoursHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, svc.hoursCalls)
}
