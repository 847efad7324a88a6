package messaging

import (
	"errors"
	"fmt"
	"time"

	"marketdesk/models"

	"github.com/google/uuid"
)

// ErrBookingMismatch is returned when the booking does not belong to the
// business opening the thread.
var ErrBookingMismatch = errors.New("booking does not belong to this business")

func (s *DefaultMessagingService) OpenThread(businessID, bookingID string, participantIDs []string) (*models.Conversation, error) {
	booking, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if booking.BusinessID != businessID {
		return nil, ErrBookingMismatch
	}

	existing, err := s.Repo.ListByBooking(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up thread: %w", err)
	}
	if len(existing) > 0 {
		return &existing[0], nil
	}

	conv := &models.Conversation{
		ID:             uuid.New().String(),
		BookingID:      bookingID,
		BusinessID:     businessID,
		ParticipantIDs: participantIDs,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.Repo.Create(conv); err != nil {
		return nil, fmt.Errorf("failed to create thread: %w", err)
	}
	return conv, nil
}

func (s *DefaultMessagingService) ListThreads(businessID string) ([]models.Conversation, error) {
	convs, err := s.Repo.ListByBusiness(businessID)
	if err != nil {
		return nil, fmt.Errorf("failed to list threads: %w", err)
	}
	return convs, nil
}
