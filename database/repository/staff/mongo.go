package staffRepo

import (
	"context"
	"fmt"
	"time"

	"marketdesk/database"
	"marketdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoStaffRepo implements StaffRepository using MongoDB.
type MongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo creates a new instance of StaffRepository using MongoDB.
func NewMongoStaffRepo() StaffRepository {
	return &MongoStaffRepo{coll: database.Collection("staff")}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoStaffRepo) GetByID(id string) (*models.Staff, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var staff models.Staff
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&staff); err != nil {
		return nil, fmt.Errorf("failed to fetch staff with id %s: %w", id, err)
	}
	return &staff, nil
}

func (r *MongoStaffRepo) GetByEmail(email string) (*models.Staff, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var staff models.Staff
	if err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&staff); err != nil {
		return nil, fmt.Errorf("failed to fetch staff with email %s: %w", email, err)
	}
	return &staff, nil
}

func (r *MongoStaffRepo) GetByTokenHash(tokenHash string) (*models.Staff, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var staff models.Staff
	if err := r.coll.FindOne(ctx, bson.M{"security.tokenHash": tokenHash}).Decode(&staff); err != nil {
		return nil, fmt.Errorf("failed to fetch staff by token hash: %w", err)
	}
	return &staff, nil
}

func (r *MongoStaffRepo) ListByBusiness(businessID string) ([]models.Staff, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"business_id": businessID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve staff for business %s: %w", businessID, err)
	}
	defer cursor.Close(ctx)

	var members []models.Staff
	for cursor.Next(ctx) {
		var s models.Staff
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode staff: %w", err)
		}
		members = append(members, s)
	}
	return members, nil
}

func (r *MongoStaffRepo) Create(staff *models.Staff) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, staff); err != nil {
		return fmt.Errorf("failed to create staff: %w", err)
	}
	return nil
}

// UpdateWithDocument updates a staff record using a custom update document.
func (r *MongoStaffRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, updateDoc)
	if err != nil {
		return fmt.Errorf("failed to update staff with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("staff with id %s not found", id)
	}
	return nil
}

func (r *MongoStaffRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete staff with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("staff with id %s not found", id)
	}
	return nil
}
