package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hibiken/asynq"

	"fixflow/models"
)

// DefaultNotificationService enqueues email tasks on the asynq queue.
type DefaultNotificationService struct {
	Client *asynq.Client
}

func (s *DefaultNotificationService) enqueue(ctx context.Context, payload EmailPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}
	if _, err := s.Client.EnqueueContext(ctx, asynq.NewTask(TypeEmailSend, data)); err != nil {
		return fmt.Errorf("failed to enqueue email task: %w", err)
	}
	return nil
}

func (s *DefaultNotificationService) OrderCreated(ctx context.Context, order *models.Order, catalog []models.WorkItem) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Order ID: %s<br/>", order.ID)
	fmt.Fprintf(&b, "Customer: %s<br/>", order.CustomerName)
	fmt.Fprintf(&b, "Work address: %s<br/>", order.Address)
	fmt.Fprintf(&b, "Scheduled for: %s<br/>", order.StartTime.Format("2006-01-02 15:04"))
	fmt.Fprintf(&b, "Estimated duration (min): %d<br/>", order.DurationMinutes)
	fmt.Fprintf(&b, "Estimated cost: %.2f<br/>", order.Cost)
	if order.Commentary != "" {
		fmt.Fprintf(&b, "Commentary: %s<br/>", order.Commentary)
	}
	b.WriteString("Order content:<br/>")
	for _, line := range order.Content {
		name := workItemName(catalog, line.WorkItemID)
		if line.Quantity > 0 {
			fmt.Fprintf(&b, "&nbsp;&nbsp;%s (x%d)<br/>", name, line.Quantity)
		} else {
			fmt.Fprintf(&b, "&nbsp;&nbsp;%s<br/>", name)
		}
	}

	return s.enqueue(ctx, EmailPayload{
		To:      order.CustomerEmail,
		Subject: "Your service order has been created",
		Body:    b.String(),
	})
}

func (s *DefaultNotificationService) OrderCancelled(ctx context.Context, order *models.Order) error {
	return s.enqueue(ctx, EmailPayload{
		To:      order.CustomerEmail,
		Subject: "Your service order has been cancelled",
		Body:    fmt.Sprintf("Order %s has been cancelled.<br/>", order.ID),
	})
}

func (s *DefaultNotificationService) OrderClosed(ctx context.Context, order *models.Order) error {
	return s.enqueue(ctx, EmailPayload{
		To:      order.CustomerEmail,
		Subject: "Your service order has been completed",
		Body:    fmt.Sprintf("Order %s has been completed. Thank you for choosing us.<br/>", order.ID),
	})
}

func (s *DefaultNotificationService) AccountCreated(ctx context.Context, user *models.User) error {
	var b strings.Builder
	b.WriteString("Thank you for creating an account.<br/>")
	fmt.Fprintf(&b, "Name: %s<br/>", user.Name)
	fmt.Fprintf(&b, "Email: %s<br/>", user.Email)

	return s.enqueue(ctx, EmailPayload{
		To:      user.Email,
		Subject: "Welcome to the service",
		Body:    b.String(),
	})
}

func workItemName(catalog []models.WorkItem, id int) string {
	for _, item := range catalog {
		if item.ID == id {
			return item.Name
		}
	}
	return fmt.Sprintf("work item %d", id)
}
