package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fixflow/middleware"
	"fixflow/services/employee"
)

// ShiftHandler exposes shift registration and management.
type ShiftHandler struct {
	Employees employee.EmployeeService
}

func NewShiftHandler(employees employee.EmployeeService) *ShiftHandler {
	return &ShiftHandler{Employees: employees}
}

func (h *ShiftHandler) Create(c *gin.Context) {
	var input struct {
		EmployeeID string    `json:"employee_id" binding:"required"`
		Start      time.Time `json:"start" binding:"required"`
		End        time.Time `json:"end" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	shift, err := h.Employees.RegisterShift(c.Request.Context(), input.EmployeeID, input.Start, input.End)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, shift)
}

func (h *ShiftHandler) List(c *gin.Context) {
	shifts, err := h.Employees.ListShifts(c.Request.Context(), middleware.Client(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, shifts)
}

func (h *ShiftHandler) Delete(c *gin.Context) {
	if err := h.Employees.DeleteShift(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
