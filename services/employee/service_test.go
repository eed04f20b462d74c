package employee

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixflow/models"
	"fixflow/services/scheduling"
)

type fakeRepo struct {
	employees map[string]*models.Employee
	shifts    map[string]*models.Shift
	deleted   []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		employees: make(map[string]*models.Employee),
		shifts:    make(map[string]*models.Shift),
	}
}

func (f *fakeRepo) Create(ctx context.Context, emp *models.Employee) error {
	f.employees[emp.ID] = emp
	return nil
}
func (f *fakeRepo) GetByID(ctx context.Context, id string) (*models.Employee, error) {
	emp, ok := f.employees[id]
	if !ok {
		return nil, errors.New("employee not found")
	}
	return emp, nil
}
func (f *fakeRepo) List(ctx context.Context) ([]models.Employee, error) {
	var out []models.Employee
	for _, emp := range f.employees {
		out = append(out, *emp)
	}
	return out, nil
}
func (f *fakeRepo) ListByManager(ctx context.Context, managerID string) ([]models.Employee, error) {
	var out []models.Employee
	for _, emp := range f.employees {
		if emp.ManagerID == managerID {
			out = append(out, *emp)
		}
	}
	return out, nil
}
func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	delete(f.employees, id)
	return nil
}
func (f *fakeRepo) AddShift(ctx context.Context, shift *models.Shift) error {
	f.shifts[shift.ID] = shift
	return nil
}
func (f *fakeRepo) GetShifts(ctx context.Context, employeeID string) ([]models.Shift, error) {
	var out []models.Shift
	for _, s := range f.shifts {
		if s.EmployeeID == employeeID {
			out = append(out, *s)
		}
	}
	return out, nil
}
func (f *fakeRepo) GetShiftByID(ctx context.Context, shiftID string) (*models.Shift, error) {
	shift, ok := f.shifts[shiftID]
	if !ok {
		return nil, errors.New("shift not found")
	}
	return shift, nil
}
func (f *fakeRepo) DeleteShift(ctx context.Context, shiftID string) error {
	delete(f.shifts, shiftID)
	f.deleted = append(f.deleted, shiftID)
	return nil
}
func (f *fakeRepo) Roster(ctx context.Context) ([]models.Employee, error) {
	return f.List(ctx)
}

func TestRegisterShift(t *testing.T) {
	repo := newFakeRepo()
	svc := &DefaultEmployeeService{Repo: repo}
	ctx := context.Background()

	emp, err := svc.Create(ctx, "mgr-1")
	require.NoError(t, err)

	day := time.Date(2026, time.September, 14, 0, 0, 0, 0, time.UTC)
	shift, err := svc.RegisterShift(ctx, emp.ID, day.Add(8*time.Hour), day.Add(16*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, emp.ID, shift.EmployeeID)
	assert.Contains(t, repo.shifts, shift.ID)

	// Overlapping second shift for the same employee is rejected.
	_, err = svc.RegisterShift(ctx, emp.ID, day.Add(12*time.Hour), day.Add(18*time.Hour))
	var schedErr *scheduling.ScheduleError
	require.ErrorAs(t, err, &schedErr)
	assert.Equal(t, scheduling.CodeShiftOverlap, schedErr.Code)

	// Back-to-back is fine.
	_, err = svc.RegisterShift(ctx, emp.ID, day.Add(16*time.Hour), day.Add(20*time.Hour))
	assert.NoError(t, err)

	// Unknown employee.
	_, err = svc.RegisterShift(ctx, "nobody", day.Add(8*time.Hour), day.Add(12*time.Hour))
	assert.Error(t, err)
}

func TestDeleteShift_LockWindow(t *testing.T) {
	repo := newFakeRepo()
	svc := &DefaultEmployeeService{Repo: repo}
	ctx := context.Background()

	near := &models.Shift{ID: "near", EmployeeID: "e1",
		Start: time.Now().AddDate(0, 0, 2), End: time.Now().AddDate(0, 0, 2).Add(4 * time.Hour)}
	far := &models.Shift{ID: "far", EmployeeID: "e1",
		Start: time.Now().AddDate(0, 0, 14), End: time.Now().AddDate(0, 0, 14).Add(4 * time.Hour)}
	require.NoError(t, repo.AddShift(ctx, near))
	require.NoError(t, repo.AddShift(ctx, far))

	assert.ErrorIs(t, svc.DeleteShift(ctx, "near"), ErrShiftLocked)
	assert.Contains(t, repo.shifts, "near")

	require.NoError(t, svc.DeleteShift(ctx, "far"))
	assert.NotContains(t, repo.shifts, "far")
}

func TestList_ScopesByRole(t *testing.T) {
	repo := newFakeRepo()
	svc := &DefaultEmployeeService{Repo: repo}
	ctx := context.Background()

	_, err := svc.Create(ctx, "mgr-1")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "mgr-1")
	require.NoError(t, err)
	_, err = svc.Create(ctx, "mgr-2")
	require.NoError(t, err)

	all, err := svc.List(ctx, &models.User{ID: "adm", Role: models.RoleAdministrator})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	mine, err := svc.List(ctx, &models.User{ID: "mgr-1", Role: models.RoleManager})
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}
