package pricing

import (
	"fmt"
	"math"

	"fixflow/models"
)

// Cost computes the final price for the (possibly surcharge-augmented)
// order content: the sum of item costs times one plus the sum of item
// coefficients, rounded to two decimal places. Unlike Duration it accepts
// non-choosable items, since surcharges are injected by the engine itself.
func Cost(items map[int]int, catalog []models.WorkItem) (float64, error) {
	cost := 0.0
	multiplier := 1.0
	for id, qty := range items {
		item := findItem(catalog, id)
		if item == nil {
			return 0, &QuoteError{Code: CodeUnknownItem, Message: fmt.Sprintf("work item %d is not in the catalog", id)}
		}
		if item.Enumerable {
			if qty <= 0 {
				return 0, badQuantity(id, qty)
			}
			cost += item.Cost * float64(qty)
		} else {
			if qty != 0 {
				return 0, badQuantity(id, qty)
			}
			cost += item.Cost
		}
		multiplier += item.Coefficient
	}
	return math.Round(cost*multiplier*100) / 100, nil
}
