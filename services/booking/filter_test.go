package booking

import (
	"testing"

	"marketdesk/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const today = "2026-09-01"

func mkBooking(id, date, status string) models.Booking {
	return models.Booking{ID: id, Date: date, Status: status}
}

func ids(bookings []models.Booking) []string {
	out := make([]string, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, b.ID)
	}
	return out
}

func TestFilterBuckets(t *testing.T) {
	bookings := []models.Booking{
		mkBooking("past-completed", "2026-08-30", models.BookingStatusCompleted),
		mkBooking("past-cancelled", "2026-08-25", models.BookingStatusCancelled),
		mkBooking("today-pending", today, models.BookingStatusPending),
		mkBooking("today-completed", today, models.BookingStatusCompleted),
		mkBooking("future-confirmed", "2026-09-05", models.BookingStatusConfirmed),
		mkBooking("overdue-pending", "2026-08-31", models.BookingStatusPending),
	}

	past := FilterBookings(bookings, Filter{Bucket: BucketPast}, today)
	assert.ElementsMatch(t, []string{"past-completed", "past-cancelled"}, ids(past))

	present := FilterBookings(bookings, Filter{Bucket: BucketPresent}, today)
	assert.ElementsMatch(t, []string{"today-pending", "today-completed", "overdue-pending"}, ids(present))

	future := FilterBookings(bookings, Filter{Bucket: BucketFuture}, today)
	assert.ElementsMatch(t, []string{"future-confirmed"}, ids(future))

	all := FilterBookings(bookings, Filter{Bucket: BucketAll}, today)
	assert.Len(t, all, len(bookings))
}

// A booking dated yesterday that is still pending shows under present, not
// past: it still needs action.
func TestOverduePendingStaysPresent(t *testing.T) {
	bookings := []models.Booking{mkBooking("overdue", "2026-08-31", models.BookingStatusPending)}

	present := FilterBookings(bookings, Filter{Bucket: BucketPresent}, today)
	require.Len(t, present, 1)
	assert.Equal(t, "overdue", present[0].ID)

	past := FilterBookings(bookings, Filter{Bucket: BucketPast}, today)
	assert.Empty(t, past)
}

func TestTodayAlwaysPresent(t *testing.T) {
	statuses := []string{
		models.BookingStatusPending, models.BookingStatusConfirmed,
		models.BookingStatusInProgress, models.BookingStatusCompleted,
		models.BookingStatusCancelled, models.BookingStatusDeclined,
		models.BookingStatusNoShow,
	}
	for _, status := range statuses {
		bookings := []models.Booking{mkBooking("b", today, status)}
		assert.Len(t, FilterBookings(bookings, Filter{Bucket: BucketPresent}, today), 1, "status %s", status)
		assert.Empty(t, FilterBookings(bookings, Filter{Bucket: BucketPast}, today), "status %s", status)
		assert.Empty(t, FilterBookings(bookings, Filter{Bucket: BucketFuture}, today), "status %s", status)
	}
}

func TestSearchFilter(t *testing.T) {
	b := models.Booking{
		ID:                "b1",
		Date:              today,
		Status:            models.BookingStatusPending,
		Reference:         "REF123",
		CustomerFirstName: "Jane",
		CustomerLastName:  "Doe",
		CustomerEmail:     "jane@x.com",
	}
	bookings := []models.Booking{b}

	assert.Len(t, FilterBookings(bookings, Filter{Search: "jane"}, today), 1)
	assert.Len(t, FilterBookings(bookings, Filter{Search: "REF123"}, today), 1)
	assert.Len(t, FilterBookings(bookings, Filter{Search: "ref123"}, today), 1)
	assert.Len(t, FilterBookings(bookings, Filter{Search: "jane doe"}, today), 1)
	assert.Empty(t, FilterBookings(bookings, Filter{Search: "zzz"}, today))
}

func TestSearchFallsBackToGuestName(t *testing.T) {
	b := models.Booking{
		ID:        "b1",
		Date:      today,
		Status:    models.BookingStatusPending,
		Reference: "REF999",
		GuestName: "Walk-In Bob",
	}
	bookings := []models.Booking{b}

	assert.Len(t, FilterBookings(bookings, Filter{Search: "bob"}, today), 1)
	assert.Empty(t, FilterBookings(bookings, Filter{Search: "jane"}, today))
}

func TestEqualityFilters(t *testing.T) {
	bookings := []models.Booking{
		{ID: "b1", Date: today, Status: models.BookingStatusPending, ProviderID: "p1", LocationID: "l1"},
		{ID: "b2", Date: today, Status: models.BookingStatusConfirmed, ProviderID: "p2", LocationID: "l1"},
		{ID: "b3", Date: today, Status: models.BookingStatusPending, ProviderID: "p1", LocationID: "l2"},
	}

	byProvider := FilterBookings(bookings, Filter{ProviderID: "p1"}, today)
	assert.ElementsMatch(t, []string{"b1", "b3"}, ids(byProvider))

	byLocation := FilterBookings(bookings, Filter{LocationID: "l1"}, today)
	assert.ElementsMatch(t, []string{"b1", "b2"}, ids(byLocation))

	byStatus := FilterBookings(bookings, Filter{Status: models.BookingStatusConfirmed}, today)
	assert.ElementsMatch(t, []string{"b2"}, ids(byStatus))

	combined := FilterBookings(bookings, Filter{ProviderID: "p1", LocationID: "l2"}, today)
	assert.ElementsMatch(t, []string{"b3"}, ids(combined))
}

func TestFilterIsIdempotentAndOrderPreserving(t *testing.T) {
	bookings := []models.Booking{
		mkBooking("b1", "2026-08-30", models.BookingStatusPending),
		mkBooking("b2", today, models.BookingStatusConfirmed),
		mkBooking("b3", today, models.BookingStatusPending),
	}
	f := Filter{Bucket: BucketPresent}

	first := FilterBookings(bookings, f, today)
	second := FilterBookings(bookings, f, today)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"b1", "b2", "b3"}, ids(first))
}

func TestValidBucket(t *testing.T) {
	for _, b := range []string{"", BucketAll, BucketPresent, BucketFuture, BucketPast} {
		assert.True(t, ValidBucket(b), b)
	}
	for _, b := range []string{"someday", "PAST", "upcoming"} {
		assert.False(t, ValidBucket(b), b)
	}
}
