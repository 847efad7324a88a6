package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"marketdesk/models"
	"marketdesk/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

const bookingListCacheTTL = 30 * time.Second

func bookingListCacheKey(businessID string) string {
	return fmt.Sprintf("bookings:%s", businessID)
}

// ListBookings loads the business's bookings and applies the dashboard
// filters. The unfiltered list is cached briefly; cache failures are logged
// and ignored.
func (s *DefaultBookingService) ListBookings(businessID string, f Filter) ([]models.Booking, error) {
	bookings, err := s.loadBookings(businessID)
	if err != nil {
		return nil, err
	}
	today := time.Now().Format("2006-01-02")
	return FilterBookings(bookings, f, today), nil
}

func (s *DefaultBookingService) loadBookings(businessID string) ([]models.Booking, error) {
	ctx := context.Background()
	key := bookingListCacheKey(businessID)

	if s.Cache != nil {
		if data, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var cached []models.Booking
			if err := json.Unmarshal([]byte(data), &cached); err == nil {
				return cached, nil
			}
		}
	}

	bookings, err := s.Repo.ListByBusiness(businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for business %s: %w", businessID, err)
	}

	if s.Cache != nil {
		if data, err := json.Marshal(bookings); err == nil {
			if err := s.Cache.Set(ctx, key, data, bookingListCacheTTL).Err(); err != nil {
				utils.GetLogger().Warn("Failed to cache booking list", zap.Error(err))
			}
		}
	}
	return bookings, nil
}

func (s *DefaultBookingService) invalidateCache(businessID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(context.Background(), bookingListCacheKey(businessID)).Err(); err != nil {
		utils.GetLogger().Warn("Failed to invalidate booking cache", zap.Error(err))
	}
}

func (s *DefaultBookingService) GetBooking(id string) (*models.Booking, error) {
	return s.Repo.GetByID(id)
}

// UpdateStatus writes a new status onto the booking. Status transitions are
// not otherwise gated, but confirmed and completed both require an assigned
// provider. A decline reason persists only alongside status declined.
func (s *DefaultBookingService) UpdateStatus(id, status, declineReason string) (*models.Booking, error) {
	if !models.ValidBookingStatus(status) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}

	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("booking not found: %w", err)
	}

	if (status == models.BookingStatusConfirmed || status == models.BookingStatusCompleted) &&
		existing.ProviderID == "" {
		return nil, ProviderRequiredError{BookingID: id, Status: status}
	}

	updateFields := bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}
	if status == models.BookingStatusDeclined {
		updateFields["decline_reason"] = declineReason
	} else {
		updateFields["decline_reason"] = ""
	}

	if err := s.Repo.UpdateWithDocument(id, bson.M{"$set": updateFields}); err != nil {
		return nil, err
	}
	s.invalidateCache(existing.BusinessID)

	existing.Status = status
	if status == models.BookingStatusDeclined {
		existing.DeclineReason = declineReason
	} else {
		existing.DeclineReason = ""
	}
	return existing, nil
}

// AssignProvider sets the provider on a booking. The provider must belong to
// the same business, be active, and carry the provider role.
func (s *DefaultBookingService) AssignProvider(id, providerID string) (*models.Booking, error) {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("booking not found: %w", err)
	}

	provider, err := s.StaffRepo.GetByID(providerID)
	if err != nil {
		return nil, fmt.Errorf("provider not found: %w", err)
	}
	if provider.BusinessID != existing.BusinessID {
		return nil, fmt.Errorf("provider %s does not belong to business %s", providerID, existing.BusinessID)
	}
	if !provider.Active {
		return nil, fmt.Errorf("provider %s is not active", providerID)
	}
	if provider.Role != models.RoleProvider {
		return nil, fmt.Errorf("staff member %s is not a provider", providerID)
	}

	update := bson.M{"$set": bson.M{"provider_id": providerID, "updated_at": time.Now()}}
	if err := s.Repo.UpdateWithDocument(id, update); err != nil {
		return nil, err
	}
	s.invalidateCache(existing.BusinessID)

	existing.ProviderID = providerID
	return existing, nil
}

// Calendar returns the week or month grid around the anchor date with
// bookings bucketed into day cells.
func (s *DefaultBookingService) Calendar(businessID, mode string, anchor time.Time) ([]CalendarCell, error) {
	var dates []time.Time
	if mode == CalendarWeek {
		dates = WeekCells(anchor)
	} else {
		dates = MonthCells(anchor)
	}
	from := dates[0].Format("2006-01-02")
	to := dates[len(dates)-1].Format("2006-01-02")

	bookings, err := s.Repo.ListByBusinessAndDateRange(businessID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load calendar bookings: %w", err)
	}
	return BuildCalendar(bookings, mode, anchor), nil
}
