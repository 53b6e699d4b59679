package offeringRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on every offering collection.
func (r *mongoOfferingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// listing query: published offerings by title
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "title", Value: 1}},
			Options: options.Index().SetName("status_title_idx"),
		},
	}

	for kind, coll := range r.colls {
		if _, err := coll.Indexes().CreateMany(ctx, indexModels); err != nil {
			return fmt.Errorf("failed to create %s indexes: %w", kind, err)
		}
	}
	return nil
}
