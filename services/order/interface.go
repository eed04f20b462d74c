package order

import (
	"context"
	"time"

	"fixflow/models"
)

// OrderService orchestrates the booking flow: pricing, employee selection,
// persistence and notification. client is nil for guest calls.
type OrderService interface {
	Create(ctx context.Context, draft *models.OrderDraft) (*models.Order, error)
	HourlyAvailability(ctx context.Context, date time.Time, durationMinutes int) (map[int]bool, error)
	Get(ctx context.Context, client *models.User, id string) (*models.Order, error)
	ListFor(ctx context.Context, client *models.User) ([]models.Order, error)
	Cancel(ctx context.Context, client *models.User, id string) error
	Close(ctx context.Context, client *models.User, id string, info string) (*models.OrderHistory, error)
	ListHistory(ctx context.Context) ([]models.OrderHistory, error)
}
