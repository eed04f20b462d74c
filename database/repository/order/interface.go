package orderRepo

import (
	"context"

	"fixflow/models"
)

// OrderRepository manages active orders and the closed-order archive.
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id string) (*models.Order, error)
	List(ctx context.Context) ([]models.Order, error)
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	ListByManager(ctx context.Context, managerID string) ([]models.Order, error)
	Delete(ctx context.Context, id string) error

	ArchiveHistory(ctx context.Context, record *models.OrderHistory) error
	ListHistory(ctx context.Context) ([]models.OrderHistory, error)
}
