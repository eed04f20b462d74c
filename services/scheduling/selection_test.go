package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixflow/models"
)

func TestChooseEmployee_NoneFree(t *testing.T) {
	day := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	emp := employeeWithShift("e1", day.Add(8*time.Hour), 4*time.Hour)

	_, err := ChooseEmployee(day.Add(20*time.Hour), day.Add(21*time.Hour), []models.Employee{emp})
	assert.ErrorIs(t, err, ErrNoEmployeeAvailable)

	_, err = ChooseEmployee(day, day.Add(time.Hour), nil)
	assert.ErrorIs(t, err, ErrNoEmployeeAvailable)
}

func TestChooseEmployee_IdleEmployeeWins(t *testing.T) {
	day := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	start, end := day.Add(9*time.Hour), day.Add(10*time.Hour)

	busy := employeeWithShift("busy", day.Add(8*time.Hour), 8*time.Hour)
	busy.ActiveOrders = []models.Order{orderAt(day.Add(13*time.Hour), 60)}
	idle := employeeWithShift("idle", day.Add(8*time.Hour), 8*time.Hour)

	id, err := ChooseEmployee(start, end, []models.Employee{busy, idle})
	require.NoError(t, err)
	assert.Equal(t, "idle", id)
}

func TestChooseEmployee_LeastLoaded(t *testing.T) {
	day := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	start, end := day.Add(9*time.Hour), day.Add(10*time.Hour)

	heavy := employeeWithShift("heavy", day.Add(8*time.Hour), 8*time.Hour)
	heavy.ActiveOrders = []models.Order{
		orderAt(day.Add(12*time.Hour), 60),
		orderAt(day.Add(14*time.Hour), 60),
	}
	light := employeeWithShift("light", day.Add(8*time.Hour), 8*time.Hour)
	light.ActiveOrders = []models.Order{orderAt(day.Add(13*time.Hour), 60)}

	id, err := ChooseEmployee(start, end, []models.Employee{heavy, light})
	require.NoError(t, err)
	assert.Equal(t, "light", id)
}

func TestChooseEmployee_TieKeepsRosterOrder(t *testing.T) {
	day := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	start, end := day.Add(9*time.Hour), day.Add(10*time.Hour)

	first := employeeWithShift("first", day.Add(8*time.Hour), 8*time.Hour)
	first.ActiveOrders = []models.Order{orderAt(day.Add(13*time.Hour), 60)}
	second := employeeWithShift("second", day.Add(8*time.Hour), 8*time.Hour)
	second.ActiveOrders = []models.Order{orderAt(day.Add(13*time.Hour), 60)}

	id, err := ChooseEmployee(start, end, []models.Employee{first, second})
	require.NoError(t, err)
	assert.Equal(t, "first", id)
}

func TestChooseEmployee_SkipsBusyCandidates(t *testing.T) {
	day := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	start, end := day.Add(9*time.Hour), day.Add(10*time.Hour)

	// Idle but the order window collides with an existing booking's buffer.
	blocked := employeeWithShift("blocked", day.Add(8*time.Hour), 8*time.Hour)
	blocked.ActiveOrders = []models.Order{orderAt(day.Add(9*time.Hour), 60)}
	fallback := employeeWithShift("fallback", day.Add(8*time.Hour), 8*time.Hour)
	fallback.ActiveOrders = []models.Order{
		orderAt(day.Add(12*time.Hour), 60),
		orderAt(day.Add(14*time.Hour), 60),
	}

	id, err := ChooseEmployee(start, end, []models.Employee{blocked, fallback})
	require.NoError(t, err)
	assert.Equal(t, "fallback", id)
}
