package calendarRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fixflow/database"
	"fixflow/models"
)

// MongoCalendarRepo is the MongoDB-backed CalendarRepository.
type MongoCalendarRepo struct {
	coll *mongo.Collection
}

func NewMongoCalendarRepo() *MongoCalendarRepo {
	return &MongoCalendarRepo{coll: database.Collection("calendar_exceptions")}
}

func (repo *MongoCalendarRepo) Upsert(ctx context.Context, ex *models.CalendarException) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	ex.Date = truncate(ex.Date)
	filter := bson.M{"date": ex.Date}
	update := bson.M{"$set": ex}
	opts := options.Update().SetUpsert(true)
	if _, err := repo.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("error upserting calendar exception: %w", err)
	}
	return nil
}

func (repo *MongoCalendarRepo) ListOnOrAfter(ctx context.Context, date time.Time) ([]models.CalendarException, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctx, bson.M{"date": bson.M{"$gte": truncate(date)}})
	if err != nil {
		return nil, fmt.Errorf("error listing calendar exceptions: %w", err)
	}
	var exceptions []models.CalendarException
	if err := cursor.All(ctx, &exceptions); err != nil {
		return nil, fmt.Errorf("error decoding calendar exceptions: %w", err)
	}
	return exceptions, nil
}

func (repo *MongoCalendarRepo) Delete(ctx context.Context, date time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.DeleteOne(ctx, bson.M{"date": truncate(date)}); err != nil {
		return fmt.Errorf("error deleting calendar exception: %w", err)
	}
	return nil
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
