package messaging

import (
	"fmt"
	"testing"

	"marketdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type memConversationRepo struct {
	convs []models.Conversation
}

func (m *memConversationRepo) Create(conv *models.Conversation) error {
	m.convs = append(m.convs, *conv)
	return nil
}

func (m *memConversationRepo) ListByBooking(bookingID string) ([]models.Conversation, error) {
	var out []models.Conversation
	for _, c := range m.convs {
		if c.BookingID == bookingID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memConversationRepo) ListByBusiness(businessID string) ([]models.Conversation, error) {
	var out []models.Conversation
	for _, c := range m.convs {
		if c.BusinessID == businessID {
			out = append(out, c)
		}
	}
	return out, nil
}

type memBookingRepo struct {
	bookings map[string]*models.Booking
}

func (m *memBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := m.bookings[id]
	if !ok {
		return nil, fmt.Errorf("booking %s not found", id)
	}
	return b, nil
}

func (m *memBookingRepo) ListByBusiness(businessID string) ([]models.Booking, error) {
	return nil, nil
}

func (m *memBookingRepo) ListByBusinessAndDateRange(businessID, from, to string) ([]models.Booking, error) {
	return nil, nil
}

func (m *memBookingRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	return nil
}

func newTestService() (*DefaultMessagingService, *memConversationRepo) {
	repo := &memConversationRepo{}
	bookings := &memBookingRepo{bookings: map[string]*models.Booking{
		"bk-1": {ID: "bk-1", BusinessID: "biz-1"},
		"bk-2": {ID: "bk-2", BusinessID: "biz-2"},
	}}
	return &DefaultMessagingService{Repo: repo, Bookings: bookings}, repo
}

func TestOpenThreadCreatesOnce(t *testing.T) {
	svc, repo := newTestService()

	first, err := svc.OpenThread("biz-1", "bk-1", []string{"staff-1", "cust-1"})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "bk-1", first.BookingID)
	assert.Equal(t, "biz-1", first.BusinessID)

	second, err := svc.OpenThread("biz-1", "bk-1", nil)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.convs, 1)
}

func TestOpenThreadRejectsForeignBooking(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.OpenThread("biz-1", "bk-2", nil)
	assert.ErrorIs(t, err, ErrBookingMismatch)
	assert.Empty(t, repo.convs)
}

func TestOpenThreadUnknownBooking(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.OpenThread("biz-1", "bk-missing", nil)
	assert.Error(t, err)
}

func TestListThreadsScopedToBusiness(t *testing.T) {
	svc, repo := newTestService()
	repo.convs = []models.Conversation{
		{ID: "c1", BusinessID: "biz-1", BookingID: "bk-1"},
		{ID: "c2", BusinessID: "biz-2", BookingID: "bk-2"},
	}

	threads, err := svc.ListThreads("biz-1")
	require.NoError(t, err)
	require.Len(t, threads, 1)
	assert.Equal(t, "c1", threads[0].ID)
}
