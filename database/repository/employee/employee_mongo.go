package employeeRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"fixflow/database"
	"fixflow/models"
)

// MongoEmployeeRepo is the MongoDB-backed EmployeeRepository.
type MongoEmployeeRepo struct {
	employeeColl *mongo.Collection
	shiftColl    *mongo.Collection
	orderColl    *mongo.Collection
}

// NewMongoEmployeeRepo returns a repository bound to the default collections.
func NewMongoEmployeeRepo() *MongoEmployeeRepo {
	return &MongoEmployeeRepo{
		employeeColl: database.Collection("employees"),
		shiftColl:    database.Collection("shifts"),
		orderColl:    database.Collection("orders"),
	}
}

func (repo *MongoEmployeeRepo) Create(ctx context.Context, emp *models.Employee) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.employeeColl.InsertOne(ctx, emp); err != nil {
		return fmt.Errorf("error creating employee: %w", err)
	}
	return nil
}

func (repo *MongoEmployeeRepo) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var emp models.Employee
	if err := repo.employeeColl.FindOne(ctx, bson.M{"id": id}).Decode(&emp); err != nil {
		return nil, fmt.Errorf("employee not found: %w", err)
	}
	return &emp, nil
}

func (repo *MongoEmployeeRepo) List(ctx context.Context) ([]models.Employee, error) {
	return repo.find(ctx, bson.M{})
}

func (repo *MongoEmployeeRepo) ListByManager(ctx context.Context, managerID string) ([]models.Employee, error) {
	return repo.find(ctx, bson.M{"manager_id": managerID})
}

func (repo *MongoEmployeeRepo) find(ctx context.Context, filter bson.M) ([]models.Employee, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.employeeColl.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing employees: %w", err)
	}
	var employees []models.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		return nil, fmt.Errorf("error decoding employees: %w", err)
	}
	return employees, nil
}

func (repo *MongoEmployeeRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.employeeColl.DeleteOne(ctx, bson.M{"id": id}); err != nil {
		return fmt.Errorf("error deleting employee %s: %w", id, err)
	}
	if _, err := repo.shiftColl.DeleteMany(ctx, bson.M{"employee_id": id}); err != nil {
		return fmt.Errorf("error deleting shifts for employee %s: %w", id, err)
	}
	return nil
}

func (repo *MongoEmployeeRepo) AddShift(ctx context.Context, shift *models.Shift) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.shiftColl.InsertOne(ctx, shift); err != nil {
		return fmt.Errorf("error creating shift: %w", err)
	}
	return nil
}

func (repo *MongoEmployeeRepo) GetShifts(ctx context.Context, employeeID string) ([]models.Shift, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.shiftColl.Find(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return nil, fmt.Errorf("error listing shifts for employee %s: %w", employeeID, err)
	}
	var shifts []models.Shift
	if err := cursor.All(ctx, &shifts); err != nil {
		return nil, fmt.Errorf("error decoding shifts: %w", err)
	}
	return shifts, nil
}

func (repo *MongoEmployeeRepo) GetShiftByID(ctx context.Context, shiftID string) (*models.Shift, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var shift models.Shift
	if err := repo.shiftColl.FindOne(ctx, bson.M{"id": shiftID}).Decode(&shift); err != nil {
		return nil, fmt.Errorf("shift not found: %w", err)
	}
	return &shift, nil
}

func (repo *MongoEmployeeRepo) DeleteShift(ctx context.Context, shiftID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.shiftColl.DeleteOne(ctx, bson.M{"id": shiftID}); err != nil {
		return fmt.Errorf("error deleting shift %s: %w", shiftID, err)
	}
	return nil
}

// Roster assembles the scheduling snapshot: every employee joined with
// their shifts and active orders.
func (repo *MongoEmployeeRepo) Roster(ctx context.Context) ([]models.Employee, error) {
	employees, err := repo.find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	shiftCursor, err := repo.shiftColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error loading shifts: %w", err)
	}
	var shifts []models.Shift
	if err := shiftCursor.All(ctx, &shifts); err != nil {
		return nil, fmt.Errorf("error decoding shifts: %w", err)
	}

	orderCursor, err := repo.orderColl.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("error loading orders: %w", err)
	}
	var orders []models.Order
	if err := orderCursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("error decoding orders: %w", err)
	}

	shiftsByEmployee := make(map[string][]models.Shift, len(employees))
	for _, s := range shifts {
		shiftsByEmployee[s.EmployeeID] = append(shiftsByEmployee[s.EmployeeID], s)
	}
	ordersByEmployee := make(map[string][]models.Order, len(employees))
	for _, o := range orders {
		ordersByEmployee[o.EmployeeID] = append(ordersByEmployee[o.EmployeeID], o)
	}

	for i := range employees {
		employees[i].Shifts = shiftsByEmployee[employees[i].ID]
		employees[i].ActiveOrders = ordersByEmployee[employees[i].ID]
	}
	return employees, nil
}
