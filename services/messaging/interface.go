package messaging

import (
	"marketdesk/models"

	bookingRepo "marketdesk/database/repository/booking"
	conversationRepo "marketdesk/database/repository/conversation"
)

// MessagingService manages conversation threads anchored to bookings.
type MessagingService interface {
	// OpenThread returns the existing thread for the booking, creating one
	// if none exists yet.
	OpenThread(businessID, bookingID string, participantIDs []string) (*models.Conversation, error)

	// ListThreads returns every thread belonging to the business.
	ListThreads(businessID string) ([]models.Conversation, error)
}

// DefaultMessagingService implements MessagingService.
type DefaultMessagingService struct {
	Repo     conversationRepo.ConversationRepository
	Bookings bookingRepo.BookingRepository
}

func NewMessagingService(repo conversationRepo.ConversationRepository, bookings bookingRepo.BookingRepository) MessagingService {
	return &DefaultMessagingService{Repo: repo, Bookings: bookings}
}
