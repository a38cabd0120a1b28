package appointment

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

const defaultConcurrency = 8

type GetAvailability struct {
	schedules    domain.ScheduleStore
	appointments domain.AppointmentStore
	metrics      *metrics.Metrics

	concurrency int
	timezone    string
	now         func() time.Time
}

func NewGetAvailability(
	schedules domain.ScheduleStore,
	appointments domain.AppointmentStore,
	m *metrics.Metrics,
	concurrency int,
	tz string,
) *GetAvailability {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	return &GetAvailability{
		schedules:    schedules,
		appointments: appointments,
		metrics:      m,
		concurrency:  concurrency,
		timezone:     tz,
		now:          func() time.Time { return timezone.NowIn(tz) },
	}
}

// Execute resolve os horários livres de um barbeiro numa data "YYYY-MM-DD".
// O dia da semana vem da data civil; datas anteriores a hoje são recusadas.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*domain.Availability, error) {

	date, err := schedule.ParseDate(in.Date)
	if err != nil {
		return nil, err
	}

	if date.Before(schedule.CivilDate(uc.now())) {
		return nil, httperr.ErrBusiness("date_in_past")
	}

	weekday := int(date.Weekday())
	day := date.Format(schedule.DateLayout)

	slots, err := uc.AvailableSlots(ctx, in.BarberID, weekday, day)
	if err != nil {
		return nil, err
	}

	return &domain.Availability{
		Date:    day,
		Weekday: weekday,
		Slots:   slots,
	}, nil
}

// AvailableSlots devolve os horários recorrentes de (barberID, weekday) sem
// agendamento em targetDate, na ordem cronológica da agenda.
//
// As checagens por horário rodam em paralelo; qualquer falha aborta a
// consulta inteira com DataAccessError em vez de marcar o horário ocupado.
func (uc *GetAvailability) AvailableSlots(
	ctx context.Context,
	barberID uint,
	weekday int,
	targetDate string,
) (out []domain.AvailableSlot, err error) {

	started := time.Now()
	defer func() { uc.metrics.ObserveAvailability(started, err) }()

	if !schedule.IsWeekday(weekday) {
		return nil, httperr.ErrBusiness("invalid_weekday")
	}

	// targetDate compõe a chave de conflito; só a forma canônica serve
	if _, err = schedule.ParseDate(targetDate); err != nil {
		return nil, err
	}

	recurring, err := uc.schedules.RecurringSlotsFor(ctx, barberID, weekday)
	if err != nil {
		return nil, httperr.DataAccess("recurring_slots_for", err)
	}

	if len(recurring) == 0 {
		return []domain.AvailableSlot{}, nil
	}

	free := make([]bool, len(recurring))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(uc.concurrency)

	for i, slot := range recurring {
		g.Go(func() error {
			n, err := uc.appointments.CountAppointmentsAt(gctx, barberID, targetDate, slot.TimeSlot)
			if err != nil {
				return err
			}
			free[i] = n == 0
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, httperr.DataAccess("count_appointments", err)
	}

	out = make([]domain.AvailableSlot, 0, len(recurring))
	for i, slot := range recurring {
		if free[i] {
			out = append(out, domain.AvailableSlot{
				SlotID:   slot.ID,
				TimeSlot: slot.TimeSlot,
			})
		}
	}

	return out, nil
}
