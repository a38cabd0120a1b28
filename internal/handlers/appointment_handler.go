package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	confirm *appointment.ConfirmAppointment
	history *appointment.ListClientHistory
}

func NewAppointmentHandler(
	confirm *appointment.ConfirmAppointment,
	history *appointment.ListClientHistory,
) *AppointmentHandler {
	return &AppointmentHandler{
		confirm: confirm,
		history: history,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ConfirmAppointmentRequest struct {
	BarberID   uint   `json:"barber_id" binding:"required"`
	ServiceID  uint   `json:"service_id" binding:"required"`
	ScheduleID uint   `json:"schedule_id" binding:"required"`
	Date       string `json:"date" binding:"required"`      // YYYY-MM-DD
	TimeSlot   string `json:"time_slot" binding:"required"` // HH:MM
}

// ======================================================
// CONFIRM
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	var req ConfirmAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.confirm.Execute(
		c.Request.Context(),
		appointment.ConfirmAppointmentInput{
			BarberID:   req.BarberID,
			ClientID:   clientID(c),
			ServiceID:  req.ServiceID,
			ScheduleID: req.ScheduleID,
			Date:       req.Date,
			TimeSlot:   req.TimeSlot,
		},
	)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// HISTORY
// ======================================================

func (h *AppointmentHandler) History(c *gin.Context) {
	items, err := h.history.Execute(c.Request.Context(), clientID(c))
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.List(c, items)
}
