package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"marketdesk/models"
	"marketdesk/services/catalog"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeCatalogService struct {
	services    map[string]*catalog.ServiceWithAddons
	updateCalls int
	attachCalls int
	deletedFor  []string
}

func (f *fakeCatalogService) ListServices(businessID string) ([]catalog.ServiceWithAddons, error) {
	return nil, nil
}

func (f *fakeCatalogService) GetService(id string) (*catalog.ServiceWithAddons, error) {
	s, ok := f.services[id]
	if !ok {
		return nil, fmt.Errorf("service %s not found", id)
	}
	return s, nil
}

func (f *fakeCatalogService) CreateService(svc *models.Service) (*models.Service, error) {
	return svc, nil
}

func (f *fakeCatalogService) UpdateService(id string, updates map[string]interface{}) (*models.Service, error) {
	f.updateCalls++
	return &f.services[id].Service, nil
}

func (f *fakeCatalogService) DeleteService(id string) error { return nil }

func (f *fakeCatalogService) ListAddons(businessID string) ([]models.Addon, error) { return nil, nil }

func (f *fakeCatalogService) CreateAddon(addon *models.Addon) (*models.Addon, error) {
	return addon, nil
}

func (f *fakeCatalogService) DeleteAddon(businessID, id string) error {
	f.deletedFor = append(f.deletedFor, businessID)
	return nil
}

func (f *fakeCatalogService) AttachAddon(serviceID, addonID string) error {
	f.attachCalls++
	return nil
}

func (f *fakeCatalogService) DetachAddon(serviceID, addonID string) error { return nil }

func newCatalogTestContext(t *testing.T, body, serviceID, businessID string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: serviceID}}
	c.Set("businessID", businessID)
	c.Request = httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func newFakeCatalogService() *fakeCatalogService {
	return &fakeCatalogService{services: map[string]*catalog.ServiceWithAddons{
		"svc-1": {Service: models.Service{ID: "svc-1", BusinessID: "biz-A", Name: "Wash"}},
	}}
}

func TestUpdateServiceForeignBusiness(t *testing.T) {
	svc := newFakeCatalogService()
	h := NewCatalogHandler(svc)

	c, w := newCatalogTestContext(t, `{"price":30}`, "svc-1", "biz-B")
	h.UpdateServiceHandler(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, svc.updateCalls)
}

func TestAttachAddonForeignBusiness(t *testing.T) {
	svc := newFakeCatalogService()
	h := NewCatalogHandler(svc)

	c, w := newCatalogTestContext(t, ``, "svc-1", "biz-B")
	c.Params = append(c.Params, gin.Param{Key: "addonID", Value: "addon-1"})
	h.AttachAddonHandler(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Zero(t, svc.attachCalls)
}

func TestDeleteAddonScopedToCaller(t *testing.T) {
	svc := newFakeCatalogService()
	h := NewCatalogHandler(svc)

	c, w := newCatalogTestContext(t, ``, "addon-1", "biz-A")
	h.DeleteAddonHandler(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"biz-A"}, svc.deletedFor)
}
