package booking

import (
	"strings"

	"marketdesk/models"
)

// Date buckets for the dashboard's booking tabs.
const (
	BucketAll     = "all"
	BucketPresent = "present"
	BucketFuture  = "future"
	BucketPast    = "past"
)

// ValidBucket reports whether b names a known date bucket. The empty string
// is valid and means "all".
func ValidBucket(b string) bool {
	switch b {
	case "", BucketAll, BucketPresent, BucketFuture, BucketPast:
		return true
	}
	return false
}

// Filter holds the dashboard's active booking filters. Zero values mean "no
// restriction" for that dimension.
type Filter struct {
	Bucket     string
	Status     string
	ProviderID string
	LocationID string
	Search     string
}

// FilterBookings returns the subset of bookings matching the filter, relative
// to the given civil date ("YYYY-MM-DD"). The input order is preserved and the
// input slice is never mutated.
//
// Bucket rules:
//   - present holds everything dated today, plus anything dated earlier whose
//     status is neither cancelled nor completed. An overdue pending booking
//     therefore shows under present, not past; it still needs action.
//   - past holds only finished work: earlier dates with status completed or
//     cancelled.
//   - future is strictly later dates.
func FilterBookings(bookings []models.Booking, f Filter, today string) []models.Booking {
	out := make([]models.Booking, 0, len(bookings))
	query := strings.ToLower(strings.TrimSpace(f.Search))
	for _, b := range bookings {
		if !inBucket(&b, f.Bucket, today) {
			continue
		}
		if f.Status != "" && b.Status != f.Status {
			continue
		}
		if f.ProviderID != "" && b.ProviderID != f.ProviderID {
			continue
		}
		if f.LocationID != "" && b.LocationID != f.LocationID {
			continue
		}
		if query != "" && !matchesSearch(&b, query) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// inBucket applies the date-bucket rule. Dates are "YYYY-MM-DD", so string
// comparison orders them correctly.
func inBucket(b *models.Booking, bucket, today string) bool {
	switch bucket {
	case "", BucketAll:
		return true
	case BucketPresent:
		if b.Date == today {
			return true
		}
		return b.Date < today &&
			b.Status != models.BookingStatusCancelled &&
			b.Status != models.BookingStatusCompleted
	case BucketFuture:
		return b.Date > today
	case BucketPast:
		return b.Date < today &&
			(b.Status == models.BookingStatusCompleted || b.Status == models.BookingStatusCancelled)
	}
	return false
}

// matchesSearch checks the query against the booking reference, the customer
// display name, and the customer email, case-insensitively.
func matchesSearch(b *models.Booking, query string) bool {
	if strings.Contains(strings.ToLower(b.Reference), query) {
		return true
	}
	if strings.Contains(strings.ToLower(b.CustomerName()), query) {
		return true
	}
	return strings.Contains(strings.ToLower(b.CustomerEmail), query)
}
