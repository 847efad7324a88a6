package conversationRepo

import "marketdesk/models"

// ConversationRepository abstracts persistence for conversation threads.
type ConversationRepository interface {
	Create(conv *models.Conversation) error
	ListByBooking(bookingID string) ([]models.Conversation, error)
	ListByBusiness(businessID string) ([]models.Conversation, error)
}
