package catalogRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"fixflow/database"
	"fixflow/models"
)

// MongoCatalogRepo is the MongoDB-backed CatalogRepository.
type MongoCatalogRepo struct {
	coll *mongo.Collection
}

func NewMongoCatalogRepo() *MongoCatalogRepo {
	return &MongoCatalogRepo{coll: database.Collection("work_items")}
}

func (repo *MongoCatalogRepo) List(ctx context.Context) ([]models.WorkItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing work items: %w", err)
	}
	var items []models.WorkItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("error decoding work items: %w", err)
	}
	return items, nil
}

func (repo *MongoCatalogRepo) Seed(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := repo.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("error counting work items: %w", err)
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, len(defaultCatalog))
	for i, item := range defaultCatalog {
		docs[i] = item
	}
	if _, err := repo.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("error seeding work items: %w", err)
	}
	return nil
}

// defaultCatalog is the standard price list, including the two
// non-choosable surcharge items the pricing engine injects.
var defaultCatalog = []models.WorkItem{
	{ID: 1, Category: "General", Name: "Leak detection", DurationMinutes: 30, Cost: 300, Choosable: true, Enumerable: true},
	{ID: 2, Category: "General", Name: "Leak repair", DurationMinutes: 45, Cost: 650, Choosable: true, Enumerable: true},
	{ID: 3, Category: "Drain cleaning", Name: "Simple clog removal", DurationMinutes: 30, Cost: 500, Choosable: true, Enumerable: true},
	{ID: 4, Category: "Drain cleaning", Name: "Complex clog removal", DurationMinutes: 60, Cost: 1000, Choosable: true, Enumerable: true},
	{ID: 5, Category: "Appliance installation", Name: "Dishwasher installation", DurationMinutes: 60, Cost: 3000, Choosable: true, Enumerable: true},
	{ID: 6, Category: "Appliance installation", Name: "Dishwasher removal", DurationMinutes: 60, Cost: 2000, Choosable: true, Enumerable: true},
	{ID: 7, Category: "Extra charges", Name: models.NighttimeWorkName, Coefficient: 0.1},
	{ID: 8, Category: "Extra charges", Name: models.HolidayWorkName, Coefficient: 0.15},
}
