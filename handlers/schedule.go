package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"barberbook/models"
	"barberbook/services/schedule"
	"barberbook/utils"
)

// ScheduleHandler exposes the weekly schedule admin surface.
type ScheduleHandler struct {
	Schedule schedule.ScheduleService
}

func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Schedule: svc}
}

// GetWeekHandler handles GET /barbers/:id/schedule. Public: the
// frontend uses it to render opening hours.
func (h *ScheduleHandler) GetWeekHandler(c *gin.Context) {
	entries, err := h.Schedule.GetWeek(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.GetLogger().Error("failed to load schedule",
			zap.String("barberId", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load schedule"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

type scheduleEntryRequest struct {
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// SetEntryHandler handles PUT /barbers/:id/schedule (admin). Blank
// startTime and endTime mark the day off.
func (h *ScheduleHandler) SetEntryHandler(c *gin.Context) {
	var req scheduleEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	entry := &models.ScheduleEntry{
		BarberID:  c.Param("id"),
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := h.Schedule.SetEntry(c.Request.Context(), entry); err != nil {
		switch {
		case errors.Is(err, schedule.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, mongo.ErrNoDocuments):
			c.JSON(http.StatusNotFound, gin.H{"error": "barber not found"})
		default:
			utils.GetLogger().Error("failed to save schedule entry",
				zap.String("barberId", entry.BarberID), zap.Int("dayOfWeek", entry.DayOfWeek), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save schedule entry"})
		}
		return
	}
	c.JSON(http.StatusOK, entry)
}

// ClearDayHandler handles DELETE /barbers/:id/schedule/:day (admin).
func (h *ScheduleHandler) ClearDayHandler(c *gin.Context) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 0 || day > 6 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "day must be 0 (Sunday) through 6 (Saturday)"})
		return
	}
	if err := h.Schedule.ClearDay(c.Request.Context(), c.Param("id"), day); err != nil {
		utils.GetLogger().Error("failed to clear schedule day",
			zap.String("barberId", c.Param("id")), zap.Int("dayOfWeek", day), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear schedule day"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "day marked off"})
}
