package order

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	calendarRepo "fixflow/database/repository/calendar"
	catalogRepo "fixflow/database/repository/catalog"
	employeeRepo "fixflow/database/repository/employee"
	orderRepo "fixflow/database/repository/order"
	"fixflow/models"
	"fixflow/services/notification"
	"fixflow/services/pricing"
	"fixflow/services/scheduling"
	"fixflow/utils"
)

// ErrForbidden is returned when the client may not act on the order.
var ErrForbidden = errors.New("order is not accessible to this client")

// DefaultOrderService implements OrderService over the mongo repositories.
type DefaultOrderService struct {
	Catalog   catalogRepo.CatalogRepository
	Calendar  calendarRepo.CalendarRepository
	Employees employeeRepo.EmployeeRepository
	Orders    orderRepo.OrderRepository
	Notifier  notification.NotificationService
}

// Create prices the draft, selects the least-loaded free employee and
// persists the resulting order. The catalog, calendar exceptions and
// roster are read as snapshots here and handed to the pure engines;
// selection and persistence are not transactional across requests.
func (s *DefaultOrderService) Create(ctx context.Context, draft *models.OrderDraft) (*models.Order, error) {
	logger := utils.GetLogger()

	catalog, err := s.Catalog.List(ctx)
	if err != nil {
		return nil, err
	}
	exceptions, err := s.Calendar.ListOnOrAfter(ctx, draft.StartTime)
	if err != nil {
		return nil, err
	}

	quote, err := pricing.CompleteQuote(draft, catalog, exceptions, time.Now())
	if err != nil {
		return nil, err
	}

	roster, err := s.Employees.Roster(ctx)
	if err != nil {
		return nil, err
	}
	end := draft.StartTime.Add(time.Duration(quote.DurationMinutes) * time.Minute)
	employeeID, err := scheduling.ChooseEmployee(draft.StartTime, end, roster)
	if err != nil {
		return nil, err
	}

	content := make([]models.OrderItem, 0, len(quote.Items))
	for id, qty := range quote.Items {
		content = append(content, models.OrderItem{WorkItemID: id, Quantity: qty})
	}

	order := &models.Order{
		ID:              uuid.New().String(),
		UserID:          draft.UserID,
		EmployeeID:      employeeID,
		CustomerName:    draft.CustomerName,
		CustomerEmail:   draft.CustomerEmail,
		Address:         draft.Address,
		Commentary:      draft.Commentary,
		StartTime:       draft.StartTime,
		DurationMinutes: quote.DurationMinutes,
		Cost:            quote.Cost,
		Content:         content,
		CreatedAt:       time.Now(),
	}
	if err := s.Orders.Create(ctx, order); err != nil {
		return nil, err
	}

	if err := s.Notifier.OrderCreated(ctx, order, catalog); err != nil {
		logger.Warn("failed to enqueue order-created email",
			zap.String("orderID", order.ID), zap.Error(err))
	}

	logger.Info("order created",
		zap.String("orderID", order.ID),
		zap.String("employeeID", employeeID),
		zap.Float64("cost", order.Cost))
	return order, nil
}

// HourlyAvailability reports, for each hour of the date, whether any
// employee could take a job of the given duration starting at that hour.
func (s *DefaultOrderService) HourlyAvailability(ctx context.Context, date time.Time, durationMinutes int) (map[int]bool, error) {
	roster, err := s.Employees.Roster(ctx)
	if err != nil {
		return nil, err
	}
	return scheduling.HourlyAvailability(date, durationMinutes, roster), nil
}

func (s *DefaultOrderService) Get(ctx context.Context, client *models.User, id string) (*models.Order, error) {
	order, err := s.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, client, order); err != nil {
		return nil, err
	}
	return order, nil
}

// ListFor scopes orders by role: Support and Administrator see all,
// Manager sees their employees' orders, User sees their own.
func (s *DefaultOrderService) ListFor(ctx context.Context, client *models.User) ([]models.Order, error) {
	switch client.Role {
	case models.RoleSupport, models.RoleAdministrator:
		return s.Orders.List(ctx)
	case models.RoleManager:
		return s.Orders.ListByManager(ctx, client.ID)
	case models.RoleUser:
		return s.Orders.ListByUser(ctx, client.ID)
	default:
		return nil, nil
	}
}

func (s *DefaultOrderService) Cancel(ctx context.Context, client *models.User, id string) error {
	logger := utils.GetLogger()

	order, err := s.Orders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.authorize(ctx, client, order); err != nil {
		return err
	}

	if err := s.Orders.Delete(ctx, id); err != nil {
		return err
	}
	if err := s.Notifier.OrderCancelled(ctx, order); err != nil {
		logger.Warn("failed to enqueue order-cancelled email",
			zap.String("orderID", id), zap.Error(err))
	}
	return nil
}

// Close archives the order to history and removes it from the active set.
func (s *DefaultOrderService) Close(ctx context.Context, client *models.User, id string, info string) (*models.OrderHistory, error) {
	logger := utils.GetLogger()

	order, err := s.Orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.authorize(ctx, client, order); err != nil {
		return nil, err
	}

	record := &models.OrderHistory{
		ID:         order.ID,
		UserID:     order.UserID,
		EmployeeID: order.EmployeeID,
		StartTime:  order.StartTime,
		Info:       info,
		ClosedAt:   time.Now(),
	}
	if err := s.Orders.ArchiveHistory(ctx, record); err != nil {
		return nil, err
	}
	if err := s.Orders.Delete(ctx, id); err != nil {
		return nil, err
	}

	if err := s.Notifier.OrderClosed(ctx, order); err != nil {
		logger.Warn("failed to enqueue order-closed email",
			zap.String("orderID", id), zap.Error(err))
	}
	return record, nil
}

func (s *DefaultOrderService) ListHistory(ctx context.Context) ([]models.OrderHistory, error) {
	return s.Orders.ListHistory(ctx)
}

func (s *DefaultOrderService) authorize(ctx context.Context, client *models.User, order *models.Order) error {
	if client == nil {
		return ErrForbidden
	}
	switch client.Role {
	case models.RoleSupport, models.RoleAdministrator:
		return nil
	case models.RoleUser:
		if order.UserID == client.ID {
			return nil
		}
	case models.RoleManager:
		emp, err := s.Employees.GetByID(ctx, order.EmployeeID)
		if err != nil {
			return err
		}
		if emp.ManagerID == client.ID {
			return nil
		}
	}
	return ErrForbidden
}
