package offeringRepo

import (
	"context"
	"errors"
	"fmt"

	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/database"
	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no offering matches the id.
var ErrNotFound = errors.New("offering not found")

// Collection names per product line.
var collections = map[models.OfferingKind]string{
	models.KindWorkshop:  "workshops",
	models.KindCutFlower: "cutFlowerSessions",
}

type OfferingRepository interface {
	GetByID(ctx context.Context, kind models.OfferingKind, id string) (*models.Offering, error)
	ListPublished(ctx context.Context, kind models.OfferingKind) ([]models.Offering, error)
	EnsureIndexes() error
}

type mongoOfferingRepo struct {
	colls map[models.OfferingKind]*mongo.Collection
}

// NewMongoOfferingRepo constructs a new MongoDB OfferingRepository.
func NewMongoOfferingRepo() OfferingRepository {
	db := database.Database()
	colls := make(map[models.OfferingKind]*mongo.Collection, len(collections))
	for kind, name := range collections {
		colls[kind] = db.Collection(name)
	}
	return &mongoOfferingRepo{colls: colls}
}

// CollectionName returns the collection holding offerings of the given kind.
func CollectionName(kind models.OfferingKind) (string, bool) {
	name, ok := collections[kind]
	return name, ok
}

func (r *mongoOfferingRepo) coll(kind models.OfferingKind) (*mongo.Collection, error) {
	c, ok := r.colls[kind]
	if !ok {
		return nil, fmt.Errorf("unknown offering kind %q", kind)
	}
	return c, nil
}
