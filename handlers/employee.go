package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fixflow/middleware"
	"fixflow/services/employee"
)

// EmployeeHandler exposes employee management endpoints.
type EmployeeHandler struct {
	Employees employee.EmployeeService
}

func NewEmployeeHandler(employees employee.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{Employees: employees}
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var input struct {
		ManagerID string `json:"manager_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	emp, err := h.Employees.Create(c.Request.Context(), input.ManagerID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, emp)
}

func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.Employees.List(c.Request.Context(), middleware.Client(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	if err := h.Employees.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
