package employeeRepo

import (
	"context"

	"fixflow/models"
)

// EmployeeRepository manages employees, their shifts, and roster snapshots.
type EmployeeRepository interface {
	Create(ctx context.Context, emp *models.Employee) error
	GetByID(ctx context.Context, id string) (*models.Employee, error)
	List(ctx context.Context) ([]models.Employee, error)
	ListByManager(ctx context.Context, managerID string) ([]models.Employee, error)
	Delete(ctx context.Context, id string) error

	AddShift(ctx context.Context, shift *models.Shift) error
	GetShifts(ctx context.Context, employeeID string) ([]models.Shift, error)
	GetShiftByID(ctx context.Context, shiftID string) (*models.Shift, error)
	DeleteShift(ctx context.Context, shiftID string) error

	// Roster returns every employee with shifts and active orders attached,
	// the snapshot the scheduling engine operates on. Order of employees is
	// stable (insertion order) and is the selection tie-break.
	Roster(ctx context.Context) ([]models.Employee, error)
}
