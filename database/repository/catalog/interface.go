package catalogRepo

import (
	"context"

	"fixflow/models"
)

// CatalogRepository serves the work catalog, immutable reference data.
type CatalogRepository interface {
	List(ctx context.Context) ([]models.WorkItem, error)
	// Seed inserts the default catalog when the collection is empty.
	Seed(ctx context.Context) error
}
