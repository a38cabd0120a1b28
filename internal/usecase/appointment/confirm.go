package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type ConfirmAppointmentInput struct {
	BarberID   uint
	ClientID   uint
	ServiceID  uint
	ScheduleID uint

	Date     string // YYYY-MM-DD
	TimeSlot string // HH:MM
}

// ======================================================
// USE CASE
// ======================================================

type ConfirmAppointment struct {
	catalog      domain.CatalogStore
	clients      domain.ClientStore
	schedules    domain.ScheduleStore
	appointments domain.AppointmentStore

	audit   *audit.Dispatcher
	metrics *metrics.Metrics

	now func() time.Time
}

func NewConfirmAppointment(
	catalog domain.CatalogStore,
	clients domain.ClientStore,
	schedules domain.ScheduleStore,
	appointments domain.AppointmentStore,
	audit *audit.Dispatcher,
	m *metrics.Metrics,
	tz string,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		catalog:      catalog,
		clients:      clients,
		schedules:    schedules,
		appointments: appointments,
		audit:        audit,
		metrics:      m,
		now:          func() time.Time { return timezone.NowIn(tz) },
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	in ConfirmAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Data / horário
	// --------------------------------------------------
	date, err := schedule.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}
	if date.Before(schedule.CivilDate(uc.now())) {
		return nil, httperr.ErrBusiness("date_in_past")
	}
	in.Date = date.Format(schedule.DateLayout)
	weekday := int(date.Weekday())

	if !schedule.IsTimeLabel(in.TimeSlot) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	// --------------------------------------------------
	// 2️⃣ Barbeiro, cliente e serviço
	// --------------------------------------------------
	if _, err := uc.catalog.GetBarber(ctx, in.BarberID); err != nil {
		return nil, httperr.DataAccess("get_barber", err)
	}

	if _, err := uc.clients.GetClientByID(ctx, in.ClientID); err != nil {
		return nil, httperr.DataAccess("get_client", err)
	}

	if _, err := uc.catalog.GetBarberService(ctx, in.BarberID, in.ServiceID); err != nil {
		return nil, httperr.DataAccess("get_barber_service", err)
	}

	// --------------------------------------------------
	// 3️⃣ Horário recorrente coerente com a data
	// --------------------------------------------------
	slot, err := uc.schedules.GetRecurringSlot(ctx, in.ScheduleID)
	if err != nil {
		return nil, httperr.DataAccess("get_recurring_slot", err)
	}

	if slot.BarberID != in.BarberID ||
		slot.DayOfWeek != weekday ||
		slot.TimeSlot != in.TimeSlot {
		return nil, httperr.ErrBusiness("invalid_slot")
	}

	// --------------------------------------------------
	// 4️⃣ Conflito (caminho rápido; o índice único decide)
	// --------------------------------------------------
	n, err := uc.appointments.CountAppointmentsAt(ctx, in.BarberID, in.Date, in.TimeSlot)
	if err != nil {
		return nil, httperr.DataAccess("count_appointments", err)
	}

	if n > 0 {
		dup := httperr.DuplicateBookingError{
			BarberID: in.BarberID,
			Date:     in.Date,
			TimeSlot: in.TimeSlot,
		}
		uc.conflict(in)
		return nil, dup
	}

	// --------------------------------------------------
	// 5️⃣ Criação
	// --------------------------------------------------
	ap := &models.Appointment{
		BarberID:   in.BarberID,
		ClientID:   in.ClientID,
		ServiceID:  in.ServiceID,
		ScheduleID: slot.ID,
		Date:       in.Date,
		TimeSlot:   in.TimeSlot,
	}

	if err := uc.appointments.CreateAppointment(ctx, ap); err != nil {
		if httperr.IsDuplicateBooking(err) {
			uc.conflict(in)
			return nil, err
		}
		return nil, httperr.DataAccess("create_appointment", err)
	}

	// --------------------------------------------------
	// 6️⃣ Auditoria
	// --------------------------------------------------
	uc.metrics.BookingCreated()
	uc.audit.Dispatch(audit.Event{
		ClientID: &in.ClientID,
		BarberID: &in.BarberID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func (uc *ConfirmAppointment) conflict(in ConfirmAppointmentInput) {
	uc.metrics.BookingConflict()
	uc.audit.Dispatch(audit.Event{
		ClientID: &in.ClientID,
		BarberID: &in.BarberID,
		Action:   "appointment_conflict",
		Entity:   "appointment",
		Metadata: map[string]any{
			"date":      in.Date,
			"time_slot": in.TimeSlot,
		},
	})
}
