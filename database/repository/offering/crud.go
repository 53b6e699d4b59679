package offeringRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/models"
)

// hiddenStatuses are never shown on the storefront.
var hiddenStatuses = []string{"draft", "archived"}

// publishedFilter matches offerings without a status as well as published ones.
func publishedFilter() bson.M {
	return bson.M{"status": bson.M{"$nin": hiddenStatuses}}
}

func (r *mongoOfferingRepo) GetByID(ctx context.Context, kind models.OfferingKind, id string) (*models.Offering, error) {
	coll, err := r.coll(kind)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var o models.Offering
	if err := coll.FindOne(ctx, bson.M{"id": id}).Decode(&o); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load %s %s: %w", kind, id, err)
	}
	o.Kind = kind
	return &o, nil
}

func (r *mongoOfferingRepo) ListPublished(ctx context.Context, kind models.OfferingKind) ([]models.Offering, error) {
	coll, err := r.coll(kind)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "title", Value: 1}})
	cursor, err := coll.Find(ctx, publishedFilter(), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s offerings: %w", kind, err)
	}
	defer cursor.Close(ctx)

	var offerings []models.Offering
	if err := cursor.All(ctx, &offerings); err != nil {
		return nil, fmt.Errorf("failed to decode %s offerings: %w", kind, err)
	}
	for i := range offerings {
		offerings[i].Kind = kind
	}
	return offerings, nil
}
