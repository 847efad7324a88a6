package conversationRepo

import (
	"context"
	"fmt"
	"time"

	"marketdesk/database"
	"marketdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoConversationRepo implements ConversationRepository using MongoDB.
type MongoConversationRepo struct {
	coll *mongo.Collection
}

// NewMongoConversationRepo creates a new instance of ConversationRepository using MongoDB.
func NewMongoConversationRepo() ConversationRepository {
	return &MongoConversationRepo{coll: database.Collection("conversations")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoConversationRepo) Create(conv *models.Conversation) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, conv); err != nil {
		return fmt.Errorf("failed to create conversation: %w", err)
	}
	return nil
}

func (r *MongoConversationRepo) ListByBooking(bookingID string) ([]models.Conversation, error) {
	return r.list(bson.M{"booking_id": bookingID})
}

func (r *MongoConversationRepo) ListByBusiness(businessID string) ([]models.Conversation, error) {
	return r.list(bson.M{"business_id": businessID})
}

func (r *MongoConversationRepo) list(filter bson.M) ([]models.Conversation, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve conversations: %w", err)
	}
	defer cursor.Close(ctx)

	var conversations []models.Conversation
	for cursor.Next(ctx) {
		var c models.Conversation
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode conversation: %w", err)
		}
		conversations = append(conversations, c)
	}
	return conversations, nil
}
