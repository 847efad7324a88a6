package models

import "time"

// Conversation is a message thread keyed by booking ID. Message delivery is
// handled by the hosted conversations service; this record is only the thread
// anchor the dashboard lists and opens.
type Conversation struct {
	ID             string    `bson:"id" json:"id"`
	BookingID      string    `bson:"booking_id" json:"booking_id"`
	BusinessID     string    `bson:"business_id" json:"business_id"`
	ParticipantIDs []string  `bson:"participant_ids" json:"participant_ids"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}
