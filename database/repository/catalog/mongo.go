package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"marketdesk/database"
	"marketdesk/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoCatalogRepo implements CatalogRepository using MongoDB.
type MongoCatalogRepo struct {
	services *mongo.Collection
	addons   *mongo.Collection
	links    *mongo.Collection
}

// NewMongoCatalogRepo creates a new instance of CatalogRepository using MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	return &MongoCatalogRepo{
		services: database.Collection("business_services"),
		addons:   database.Collection("business_addons"),
		links:    database.Collection("service_addons"),
	}
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoCatalogRepo) GetServiceByID(id string) (*models.Service, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var svc models.Service
	if err := r.services.FindOne(ctx, bson.M{"id": id}).Decode(&svc); err != nil {
		return nil, fmt.Errorf("failed to fetch service with id %s: %w", id, err)
	}
	return &svc, nil
}

func (r *MongoCatalogRepo) ListServicesByBusiness(businessID string) ([]models.Service, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.services.Find(ctx, bson.M{"business_id": businessID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve services for business %s: %w", businessID, err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	for cursor.Next(ctx) {
		var s models.Service
		if err := cursor.Decode(&s); err != nil {
			return nil, fmt.Errorf("failed to decode service: %w", err)
		}
		services = append(services, s)
	}
	return services, nil
}

func (r *MongoCatalogRepo) CreateService(svc *models.Service) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.services.InsertOne(ctx, svc); err != nil {
		return fmt.Errorf("failed to create service: %w", err)
	}
	return nil
}

func (r *MongoCatalogRepo) UpdateServiceWithDocument(id string, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.services.UpdateOne(ctx, bson.M{"id": id}, updateDoc)
	if err != nil {
		return fmt.Errorf("failed to update service with id %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("service with id %s not found", id)
	}
	return nil
}

func (r *MongoCatalogRepo) DeleteService(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.services.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete service with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("service with id %s not found", id)
	}
	// Links to the removed service are orphaned otherwise.
	if _, err := r.links.DeleteMany(ctx, bson.M{"service_id": id}); err != nil {
		return fmt.Errorf("failed to remove addon links for service %s: %w", id, err)
	}
	return nil
}

func (r *MongoCatalogRepo) GetAddonByID(id string) (*models.Addon, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var addon models.Addon
	if err := r.addons.FindOne(ctx, bson.M{"id": id}).Decode(&addon); err != nil {
		return nil, fmt.Errorf("failed to fetch addon with id %s: %w", id, err)
	}
	return &addon, nil
}

func (r *MongoCatalogRepo) ListAddonsByBusiness(businessID string) ([]models.Addon, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.addons.Find(ctx, bson.M{"business_id": businessID})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve addons for business %s: %w", businessID, err)
	}
	defer cursor.Close(ctx)

	var addons []models.Addon
	for cursor.Next(ctx) {
		var a models.Addon
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode addon: %w", err)
		}
		addons = append(addons, a)
	}
	return addons, nil
}

func (r *MongoCatalogRepo) CreateAddon(addon *models.Addon) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.addons.InsertOne(ctx, addon); err != nil {
		return fmt.Errorf("failed to create addon: %w", err)
	}
	return nil
}

func (r *MongoCatalogRepo) DeleteAddon(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.addons.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete addon with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("addon with id %s not found", id)
	}
	if _, err := r.links.DeleteMany(ctx, bson.M{"addon_id": id}); err != nil {
		return fmt.Errorf("failed to remove service links for addon %s: %w", id, err)
	}
	return nil
}

func (r *MongoCatalogRepo) AttachAddon(serviceID, addonID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	link := models.ServiceAddon{ServiceID: serviceID, AddonID: addonID}
	if _, err := r.links.InsertOne(ctx, link); err != nil {
		return fmt.Errorf("failed to attach addon %s to service %s: %w", addonID, serviceID, err)
	}
	return nil
}

func (r *MongoCatalogRepo) DetachAddon(serviceID, addonID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"service_id": serviceID, "addon_id": addonID}
	result, err := r.links.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to detach addon %s from service %s: %w", addonID, serviceID, err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("addon %s is not attached to service %s", addonID, serviceID)
	}
	return nil
}

func (r *MongoCatalogRepo) ListAddonIDsForService(serviceID string) ([]string, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.links.Find(ctx, bson.M{"service_id": serviceID})
	if err != nil {
		return nil, fmt.Errorf("failed to list addons for service %s: %w", serviceID, err)
	}
	defer cursor.Close(ctx)

	var ids []string
	for cursor.Next(ctx) {
		var link models.ServiceAddon
		if err := cursor.Decode(&link); err != nil {
			return nil, fmt.Errorf("failed to decode service-addon link: %w", err)
		}
		ids = append(ids, link.AddonID)
	}
	return ids, nil
}
