package pricing

import (
	"fmt"

	"fixflow/models"
)

// Duration totals the estimated job length in minutes for the requested
// item quantities. Every requested item must be a choosable catalog entry;
// enumerable items need a positive quantity, non-enumerable ones exactly
// zero.
func Duration(items map[int]int, catalog []models.WorkItem) (int, error) {
	total := 0
	for id, qty := range items {
		item := findItem(catalog, id)
		if item == nil {
			return 0, &QuoteError{Code: CodeUnknownItem, Message: fmt.Sprintf("work item %d is not in the catalog", id)}
		}
		if !item.Choosable {
			return 0, &QuoteError{Code: CodeNotChoosable, Message: fmt.Sprintf("work item %d cannot be requested directly", id)}
		}
		if item.Enumerable {
			if qty <= 0 {
				return 0, badQuantity(id, qty)
			}
			total += item.DurationMinutes * qty
		} else {
			if qty != 0 {
				return 0, badQuantity(id, qty)
			}
			total += item.DurationMinutes
		}
	}
	return total, nil
}

func findItem(catalog []models.WorkItem, id int) *models.WorkItem {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i]
		}
	}
	return nil
}

func badQuantity(id, qty int) error {
	return &QuoteError{Code: CodeBadQuantity, Message: fmt.Sprintf("quantity %d is invalid for work item %d", qty, id)}
}
