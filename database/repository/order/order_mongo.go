package orderRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"fixflow/database"
	"fixflow/models"
)

// MongoOrderRepo is the MongoDB-backed OrderRepository.
type MongoOrderRepo struct {
	orderColl    *mongo.Collection
	historyColl  *mongo.Collection
	employeeColl *mongo.Collection
}

func NewMongoOrderRepo() *MongoOrderRepo {
	return &MongoOrderRepo{
		orderColl:    database.Collection("orders"),
		historyColl:  database.Collection("order_history"),
		employeeColl: database.Collection("employees"),
	}
}

func (repo *MongoOrderRepo) Create(ctx context.Context, order *models.Order) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.orderColl.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("error creating order: %w", err)
	}
	return nil
}

func (repo *MongoOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var order models.Order
	if err := repo.orderColl.FindOne(ctx, bson.M{"id": id}).Decode(&order); err != nil {
		return nil, fmt.Errorf("order not found: %w", err)
	}
	return &order, nil
}

func (repo *MongoOrderRepo) List(ctx context.Context) ([]models.Order, error) {
	return repo.find(ctx, bson.M{})
}

func (repo *MongoOrderRepo) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	return repo.find(ctx, bson.M{"user_id": userID})
}

// ListByManager returns orders assigned to any employee managed by the
// given manager.
func (repo *MongoOrderRepo) ListByManager(ctx context.Context, managerID string) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.employeeColl.Find(ctx, bson.M{"manager_id": managerID})
	if err != nil {
		return nil, fmt.Errorf("error listing employees for manager %s: %w", managerID, err)
	}
	var employees []models.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, fmt.Errorf("error decoding employees: %w", err)
	}

	ids := make([]string, len(employees))
	for i, emp := range employees {
		ids[i] = emp.ID
	}
	return repo.find(ctx, bson.M{"employee_id": bson.M{"$in": ids}})
}

func (repo *MongoOrderRepo) find(ctx context.Context, filter bson.M) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.orderColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing orders: %w", err)
	}
	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("error decoding orders: %w", err)
	}
	return orders, nil
}

func (repo *MongoOrderRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.orderColl.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("error deleting order %s: %w", id, err)
	}
	return nil
}

func (repo *MongoOrderRepo) ArchiveHistory(ctx context.Context, record *models.OrderHistory) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.historyColl.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("error archiving order %s: %w", record.ID, err)
	}
	return nil
}

func (repo *MongoOrderRepo) ListHistory(ctx context.Context) ([]models.OrderHistory, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.historyColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error listing order history: %w", err)
	}
	var records []models.OrderHistory
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("error decoding order history: %w", err)
	}
	return records, nil
}
