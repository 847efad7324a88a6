package businessRepo

import (
	"context"
	"fmt"
	"time"

	"marketdesk/database"
	"marketdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoBusinessRepo implements BusinessRepository using MongoDB.
type MongoBusinessRepo struct {
	profiles      *mongo.Collection
	documents     *mongo.Collection
	taxInfo       *mongo.Collection
	subscriptions *mongo.Collection
	bankLinks     *mongo.Collection
}

// NewMongoBusinessRepo creates a new instance of BusinessRepository using MongoDB.
func NewMongoBusinessRepo() BusinessRepository {
	return &MongoBusinessRepo{
		profiles:      database.Collection("business_profiles"),
		documents:     database.Collection("business_documents"),
		taxInfo:       database.Collection("business_stripe_tax_info"),
		subscriptions: database.Collection("business_subscriptions"),
		bankLinks:     database.Collection("business_bank_links"),
	}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoBusinessRepo) GetProfile(businessID string) (*models.BusinessProfile, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var profile models.BusinessProfile
	if err := r.profiles.FindOne(ctx, bson.M{"id": businessID}).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to fetch business profile %s: %w", businessID, err)
	}
	return &profile, nil
}

func (r *MongoBusinessRepo) UpdateProfileWithDocument(businessID string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.profiles.UpdateOne(ctx, bson.M{"id": businessID}, updateDoc)
	if err != nil {
		return fmt.Errorf("failed to update business profile %s: %w", businessID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("business profile %s not found", businessID)
	}
	return nil
}

func (r *MongoBusinessRepo) ListDocuments(businessID string) ([]models.BusinessDocument, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.documents.Find(ctx, bson.M{"business_id": businessID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve documents for business %s: %w", businessID, err)
	}
	defer cursor.Close(ctx)

	var docs []models.BusinessDocument
	for cursor.Next(ctx) {
		var d models.BusinessDocument
		if err := cursor.Decode(&d); err != nil {
			return nil, fmt.Errorf("failed to decode business document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, nil
}

func (r *MongoBusinessRepo) CreateDocument(doc *models.BusinessDocument) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.documents.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create business document: %w", err)
	}
	return nil
}

func (r *MongoBusinessRepo) GetDocument(id string) (*models.BusinessDocument, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var doc models.BusinessDocument
	if err := r.documents.FindOne(ctx, bson.M{"id": id}).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to fetch business document %s: %w", id, err)
	}
	return &doc, nil
}

func (r *MongoBusinessRepo) DeleteDocument(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.documents.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete business document %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("business document %s not found", id)
	}
	return nil
}

func (r *MongoBusinessRepo) GetTaxInfo(businessID string) (*models.TaxInfo, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var info models.TaxInfo
	if err := r.taxInfo.FindOne(ctx, bson.M{"business_id": businessID}).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to fetch tax info for business %s: %w", businessID, err)
	}
	return &info, nil
}

func (r *MongoBusinessRepo) UpsertTaxInfo(info *models.TaxInfo) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"business_id": info.BusinessID}
	update := bson.M{"$set": info}
	opts := options.Update().SetUpsert(true)
	if _, err := r.taxInfo.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert tax info for business %s: %w", info.BusinessID, err)
	}
	return nil
}

func (r *MongoBusinessRepo) GetSubscription(businessID string) (*models.Subscription, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var sub models.Subscription
	if err := r.subscriptions.FindOne(ctx, bson.M{"business_id": businessID}).Decode(&sub); err != nil {
		return nil, fmt.Errorf("failed to fetch subscription for business %s: %w", businessID, err)
	}
	return &sub, nil
}

func (r *MongoBusinessRepo) UpsertSubscription(sub *models.Subscription) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"business_id": sub.BusinessID}
	update := bson.M{"$set": sub}
	opts := options.Update().SetUpsert(true)
	if _, err := r.subscriptions.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert subscription for business %s: %w", sub.BusinessID, err)
	}
	return nil
}

func (r *MongoBusinessRepo) GetBankLink(businessID string) (*models.BankLink, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var link models.BankLink
	if err := r.bankLinks.FindOne(ctx, bson.M{"business_id": businessID}).Decode(&link); err != nil {
		return nil, fmt.Errorf("failed to fetch bank link for business %s: %w", businessID, err)
	}
	return &link, nil
}

func (r *MongoBusinessRepo) UpsertBankLink(link *models.BankLink) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"business_id": link.BusinessID}
	update := bson.M{"$set": link}
	opts := options.Update().SetUpsert(true)
	if _, err := r.bankLinks.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("failed to upsert bank link for business %s: %w", link.BusinessID, err)
	}
	return nil
}
