package locationRepo

import (
	"context"
	"fmt"
	"time"

	"marketdesk/database"
	"marketdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoLocationRepo implements LocationRepository using MongoDB.
type MongoLocationRepo struct {
	coll *mongo.Collection
}

// NewMongoLocationRepo creates a new instance of LocationRepository using MongoDB.
func NewMongoLocationRepo() LocationRepository {
	return &MongoLocationRepo{coll: database.Collection("business_locations")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoLocationRepo) GetByID(id string) (*models.Location, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var loc models.Location
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&loc); err != nil {
		return nil, fmt.Errorf("failed to fetch location with id %s: %w", id, err)
	}
	return &loc, nil
}

func (r *MongoLocationRepo) ListByBusiness(businessID string) ([]models.Location, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"business_id": businessID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve locations for business %s: %w", businessID, err)
	}
	defer cursor.Close(ctx)

	var locations []models.Location
	for cursor.Next(ctx) {
		var l models.Location
		if err := cursor.Decode(&l); err != nil {
			return nil, fmt.Errorf("failed to decode location: %w", err)
		}
		locations = append(locations, l)
	}
	return locations, nil
}

func (r *MongoLocationRepo) Create(loc *models.Location) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, loc); err != nil {
		return fmt.Errorf("failed to create location: %w", err)
	}
	return nil
}

func (r *MongoLocationRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, updateDoc)
	if err != nil {
		return fmt.Errorf("failed to update location with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("location with id %s not found", id)
	}
	return nil
}

func (r *MongoLocationRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete location with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("location with id %s not found", id)
	}
	return nil
}

func (r *MongoLocationRepo) ClearPrimary(businessID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"business_id": businessID, "primary": true}
	update := bson.M{"$set": bson.M{"primary": false}}
	if _, err := r.coll.UpdateMany(ctx, filter, update); err != nil {
		return fmt.Errorf("failed to clear primary locations for business %s: %w", businessID, err)
	}
	return nil
}
