package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fixflow/services/employee"
	"fixflow/services/order"
	"fixflow/services/pricing"
	"fixflow/services/scheduling"
	"fixflow/services/user"
)

// respondServiceError translates service errors into HTTP responses.
// Engine validation failures are client errors, never 500s.
func respondServiceError(c *gin.Context, err error) {
	var quoteErr *pricing.QuoteError
	var schedErr *scheduling.ScheduleError

	switch {
	case errors.As(err, &quoteErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": quoteErr.Message, "code": quoteErr.Code})
	case errors.As(err, &schedErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": schedErr.Message, "code": schedErr.Code})
	case errors.Is(err, order.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
	case errors.Is(err, employee.ErrShiftLocked):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, user.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
