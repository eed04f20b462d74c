package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixflow/middleware"
	"fixflow/services/order"
)

// OrderHandler exposes role-scoped order queries and lifecycle endpoints.
type OrderHandler struct {
	Orders order.OrderService
}

func NewOrderHandler(orders order.OrderService) *OrderHandler {
	return &OrderHandler{Orders: orders}
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.Orders.ListFor(c.Request.Context(), middleware.Client(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	found, err := h.Orders.Get(c.Request.Context(), middleware.Client(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	if err := h.Orders.Cancel(c.Request.Context(), middleware.Client(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// Close archives an active order into history.
func (h *OrderHandler) Close(c *gin.Context) {
	var input struct {
		Info string `json:"info" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	record, err := h.Orders.Close(c.Request.Context(), middleware.Client(c), c.Param("id"), input.Info)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *OrderHandler) History(c *gin.Context) {
	records, err := h.Orders.ListHistory(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}
