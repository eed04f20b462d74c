package scheduling

import (
	"time"

	"fixflow/models"
)

// ChooseEmployee selects the employee to assign for the window
// [start, end). Among employees free for the window it picks the one with
// the fewest active orders; an employee with no orders at all is taken
// immediately. Ties go to the employee listed first on the roster, so the
// caller's roster order is the tie-break.
func ChooseEmployee(start, end time.Time, roster []models.Employee) (string, error) {
	var free []models.Employee
	for _, emp := range roster {
		if IsEmployeeFree(start, end, emp) {
			free = append(free, emp)
		}
	}
	if len(free) == 0 {
		return "", ErrNoEmployeeAvailable
	}

	best := free[0]
	for _, emp := range free {
		if len(emp.ActiveOrders) == 0 {
			return emp.ID, nil
		}
		if len(emp.ActiveOrders) < len(best.ActiveOrders) {
			best = emp
		}
	}
	return best.ID, nil
}
