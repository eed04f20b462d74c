package employee

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	employeeRepo "fixflow/database/repository/employee"
	"fixflow/models"
	"fixflow/services/scheduling"
	"fixflow/utils"
)

// ErrShiftLocked is returned when a shift is too close to be deleted.
var ErrShiftLocked = errors.New("shifts starting within the next 7 days cannot be deleted")

// EmployeeService manages employees and their shift registrations.
type EmployeeService interface {
	Create(ctx context.Context, managerID string) (*models.Employee, error)
	List(ctx context.Context, client *models.User) ([]models.Employee, error)
	Delete(ctx context.Context, id string) error

	RegisterShift(ctx context.Context, employeeID string, start, end time.Time) (*models.Shift, error)
	ListShifts(ctx context.Context, client *models.User) ([]models.Shift, error)
	DeleteShift(ctx context.Context, shiftID string) error
}

// DefaultEmployeeService implements EmployeeService.
type DefaultEmployeeService struct {
	Repo employeeRepo.EmployeeRepository
}

func (s *DefaultEmployeeService) Create(ctx context.Context, managerID string) (*models.Employee, error) {
	emp := &models.Employee{
		ID:        uuid.New().String(),
		ManagerID: managerID,
	}
	if err := s.Repo.Create(ctx, emp); err != nil {
		return nil, err
	}
	return emp, nil
}

// List scopes employees by role: Administrator sees all, Manager sees
// their own.
func (s *DefaultEmployeeService) List(ctx context.Context, client *models.User) ([]models.Employee, error) {
	if client.Role == models.RoleAdministrator {
		return s.Repo.List(ctx)
	}
	return s.Repo.ListByManager(ctx, client.ID)
}

func (s *DefaultEmployeeService) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// RegisterShift validates the candidate against the employee's existing
// shifts and persists it on acceptance.
func (s *DefaultEmployeeService) RegisterShift(ctx context.Context, employeeID string, start, end time.Time) (*models.Shift, error) {
	if _, err := s.Repo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	existing, err := s.Repo.GetShifts(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	candidate := models.Shift{
		ID:         uuid.New().String(),
		EmployeeID: employeeID,
		Start:      start,
		End:        end,
	}
	if err := scheduling.ValidateShift(candidate, existing); err != nil {
		return nil, err
	}
	if err := s.Repo.AddShift(ctx, &candidate); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("shift registered",
		zap.String("employeeID", employeeID),
		zap.Time("start", start), zap.Time("end", end))
	return &candidate, nil
}

func (s *DefaultEmployeeService) ListShifts(ctx context.Context, client *models.User) ([]models.Shift, error) {
	employees, err := s.List(ctx, client)
	if err != nil {
		return nil, err
	}
	var shifts []models.Shift
	for _, emp := range employees {
		empShifts, err := s.Repo.GetShifts(ctx, emp.ID)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, empShifts...)
	}
	return shifts, nil
}

// DeleteShift removes a shift, but only if it starts more than 7 days
// out; near-term shifts are locked because availability answers may
// already depend on them.
func (s *DefaultEmployeeService) DeleteShift(ctx context.Context, shiftID string) error {
	shift, err := s.Repo.GetShiftByID(ctx, shiftID)
	if err != nil {
		return err
	}

	now := time.Now()
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 7)
	if !shift.Start.After(cutoff) {
		return ErrShiftLocked
	}
	return s.Repo.DeleteShift(ctx, shiftID)
}
