package notification

import (
	"context"

	"fixflow/models"
)

// NotificationService sends customer-facing emails. Implementations are
// fire-and-forget from the caller's point of view: delivery happens on a
// background queue.
type NotificationService interface {
	OrderCreated(ctx context.Context, order *models.Order, catalog []models.WorkItem) error
	OrderCancelled(ctx context.Context, order *models.Order) error
	OrderClosed(ctx context.Context, order *models.Order) error
	AccountCreated(ctx context.Context, user *models.User) error
}
