package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fixflow/middleware"
	"fixflow/models"
	"fixflow/services/order"
)

// BookingHandler exposes order creation and availability lookups.
type BookingHandler struct {
	Orders order.OrderService
}

func NewBookingHandler(orders order.OrderService) *BookingHandler {
	return &BookingHandler{Orders: orders}
}

// CreateOrder prices and books a new order. Guests and customers may
// book; staff accounts that manage the schedule may not.
func (h *BookingHandler) CreateOrder(c *gin.Context) {
	var draft models.OrderDraft
	if err := c.ShouldBindJSON(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	client := middleware.Client(c)
	switch {
	case client == nil || client.Role == models.RoleSupport:
		if draft.UserID != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_id may not be set on this request"})
			return
		}
	case client.Role == models.RoleManager || client.Role == models.RoleAdministrator:
		c.JSON(http.StatusForbidden, gin.H{"error": "staff accounts cannot place orders"})
		return
	default:
		draft.UserID = client.ID
	}

	created, err := h.Orders.Create(c.Request.Context(), &draft)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, created)
}

// FreeHours reports per-hour availability for a date and job duration:
// GET /api/availability?date=2026-09-03&duration=90
func (h *BookingHandler) FreeHours(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}
	duration, err := strconv.Atoi(c.Query("duration"))
	if err != nil || duration <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid duration, expected positive minutes"})
		return
	}

	hours, err := h.Orders.HourlyAvailability(c.Request.Context(), date, duration)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": c.Query("date"), "hours": hours})
}
