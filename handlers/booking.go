package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"barberbook/middleware"
	"barberbook/services/booking"
	"barberbook/utils"
)

// BookingHandler exposes availability lookups and the appointment
// lifecycle.
type BookingHandler struct {
	Booking booking.BookingService
	Loc     *time.Location
}

func NewBookingHandler(svc booking.BookingService, loc *time.Location) *BookingHandler {
	return &BookingHandler{Booking: svc, Loc: loc}
}

// GetAvailabilityHandler handles GET /booking/availability?barberId=&serviceId=&date=YYYY-MM-DD.
func (h *BookingHandler) GetAvailabilityHandler(c *gin.Context) {
	barberID := c.Query("barberId")
	serviceID := c.Query("serviceId")
	if barberID == "" || serviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "barberId and serviceId are required"})
		return
	}
	date, err := time.ParseInLocation("2006-01-02", c.Query("date"), h.Loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	slots, err := h.Booking.GetAvailability(c.Request.Context(), barberID, serviceID, date)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "barber or service not found"})
			return
		}
		utils.GetLogger().Error("failed to compute availability",
			zap.String("barberId", barberID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute availability"})
		return
	}

	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Format(time.RFC3339))
	}
	c.JSON(http.StatusOK, gin.H{"date": c.Query("date"), "slots": out})
}

// GetEligibleDaysHandler handles GET /booking/days?barberId=&serviceId=&month=YYYY-MM.
func (h *BookingHandler) GetEligibleDaysHandler(c *gin.Context) {
	barberID := c.Query("barberId")
	serviceID := c.Query("serviceId")
	if barberID == "" || serviceID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "barberId and serviceId are required"})
		return
	}
	month, err := time.ParseInLocation("2006-01", c.Query("month"), h.Loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be YYYY-MM"})
		return
	}

	days, err := h.Booking.GetEligibleDays(c.Request.Context(), barberID, serviceID, month.Year(), month.Month())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			c.JSON(http.StatusNotFound, gin.H{"error": "barber or service not found"})
			return
		}
		utils.GetLogger().Error("failed to compute eligible days",
			zap.String("barberId", barberID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute eligible days"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}

type createAppointmentRequest struct {
	BarberID  string    `json:"barberId" binding:"required"`
	ServiceID string    `json:"serviceId" binding:"required"`
	StartTime time.Time `json:"startTime" binding:"required"`
}

// CreateAppointmentHandler handles POST /booking/appointments (authenticated).
func (h *BookingHandler) CreateAppointmentHandler(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	var req createAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ap, err := h.Booking.CreateAppointment(c.Request.Context(), booking.CreateAppointmentInput{
		Identity:  ident,
		BarberID:  req.BarberID,
		ServiceID: req.ServiceID,
		StartTime: req.StartTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrSlotTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "slot no longer available"})
		case errors.Is(err, mongo.ErrNoDocuments):
			c.JSON(http.StatusNotFound, gin.H{"error": "barber or service not found"})
		default:
			utils.GetLogger().Error("failed to create appointment",
				zap.String("uid", ident.UID), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create appointment"})
		}
		return
	}
	c.JSON(http.StatusCreated, ap)
}

// CancelAppointmentHandler handles PUT /booking/appointments/:id/cancel. A
// customer may cancel their own confirmed appointment; an admin may
// cancel anyone's.
func (h *BookingHandler) CancelAppointmentHandler(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	id := c.Param("id")
	if err := h.Booking.CancelAppointment(c.Request.Context(), id, ident); err != nil {
		switch {
		case errors.Is(err, booking.ErrNotOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "not your appointment"})
		case errors.Is(err, booking.ErrInvalidStatus):
			c.JSON(http.StatusConflict, gin.H{"error": "appointment is not cancellable"})
		case errors.Is(err, mongo.ErrNoDocuments):
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
		default:
			utils.GetLogger().Error("failed to cancel appointment", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel appointment"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment cancelled"})
}

// CompleteAppointmentHandler handles PUT /admin/appointments/:id/complete (admin).
func (h *BookingHandler) CompleteAppointmentHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Booking.CompleteAppointment(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, booking.ErrInvalidStatus):
			c.JSON(http.StatusConflict, gin.H{"error": "appointment is not completable"})
		case errors.Is(err, mongo.ErrNoDocuments):
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
		default:
			utils.GetLogger().Error("failed to complete appointment", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to complete appointment"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment completed"})
}

type rescheduleRequest struct {
	NewStartTime time.Time `json:"newStartTime" binding:"required"`
}

// RescheduleAppointmentHandler handles PUT /admin/appointments/:id/reschedule
// (admin). Used to apply an optimizer proposal one appointment at a
// time.
func (h *BookingHandler) RescheduleAppointmentHandler(c *gin.Context) {
	var req rescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	id := c.Param("id")
	if err := h.Booking.RescheduleAppointment(c.Request.Context(), id, req.NewStartTime); err != nil {
		switch {
		case errors.Is(err, booking.ErrSlotTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "target slot is not available"})
		case errors.Is(err, booking.ErrInvalidStatus):
			c.JSON(http.StatusConflict, gin.H{"error": "appointment is not reschedulable"})
		case errors.Is(err, mongo.ErrNoDocuments):
			c.JSON(http.StatusNotFound, gin.H{"error": "appointment not found"})
		default:
			utils.GetLogger().Error("failed to reschedule appointment", zap.String("id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to reschedule appointment"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "appointment rescheduled"})
}

// MyAppointmentsHandler handles GET /customers/me/appointments.
func (h *BookingHandler) MyAppointmentsHandler(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}
	aps, err := h.Booking.GetCustomerAppointments(c.Request.Context(), ident.UID)
	if err != nil {
		utils.GetLogger().Error("failed to load appointments", zap.String("uid", ident.UID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load appointments"})
		return
	}
	c.JSON(http.StatusOK, aps)
}

// BarberDayHandler handles GET /admin/appointments?barberId=&date=YYYY-MM-DD:
// the blocking appointments for one barber on one day, for the admin
// day grid.
func (h *BookingHandler) BarberDayHandler(c *gin.Context) {
	barberID := c.Query("barberId")
	if barberID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "barberId is required"})
		return
	}
	date, err := time.ParseInLocation("2006-01-02", c.Query("date"), h.Loc)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}
	aps, err := h.Booking.GetBarberDay(c.Request.Context(), barberID, date)
	if err != nil {
		utils.GetLogger().Error("failed to load barber day",
			zap.String("barberId", barberID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load appointments"})
		return
	}
	c.JSON(http.StatusOK, aps)
}
