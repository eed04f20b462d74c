package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	calendarRepo "fixflow/database/repository/calendar"
	"fixflow/models"
)

// CalendarHandler manages per-date holiday overrides.
type CalendarHandler struct {
	Calendar calendarRepo.CalendarRepository
}

func NewCalendarHandler(calendar calendarRepo.CalendarRepository) *CalendarHandler {
	return &CalendarHandler{Calendar: calendar}
}

func (h *CalendarHandler) Upsert(c *gin.Context) {
	var input struct {
		Date      string `json:"date" binding:"required"`
		IsHoliday *bool  `json:"is_holiday" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	date, err := time.Parse("2006-01-02", input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	ex := models.CalendarException{Date: date, IsHoliday: *input.IsHoliday}
	if err := h.Calendar.Upsert(c.Request.Context(), &ex); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ex)
}

// List returns exceptions from the given date onwards (today by default).
func (h *CalendarHandler) List(c *gin.Context) {
	from := time.Now()
	if q := c.Query("from"); q != "" {
		parsed, err := time.Parse("2006-01-02", q)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid from date, expected YYYY-MM-DD"})
			return
		}
		from = parsed
	}

	exceptions, err := h.Calendar.ListOnOrAfter(c.Request.Context(), from)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exceptions)
}

func (h *CalendarHandler) Delete(c *gin.Context) {
	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}
	if err := h.Calendar.Delete(c.Request.Context(), date); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
