package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// ListBookableDays alimenta o seletor de datas: os dias da semana em que o
// barbeiro atende e a próxima data de cada um, contando a partir de hoje.
type ListBookableDays struct {
	catalog   domain.CatalogStore
	schedules domain.ScheduleStore
	now       func() time.Time
}

func NewListBookableDays(
	catalog domain.CatalogStore,
	schedules domain.ScheduleStore,
	tz string,
) *ListBookableDays {
	return &ListBookableDays{
		catalog:   catalog,
		schedules: schedules,
		now:       func() time.Time { return timezone.NowIn(tz) },
	}
}

func (uc *ListBookableDays) Weekdays(
	ctx context.Context,
	barberID uint,
) ([]int, error) {

	if _, err := uc.catalog.GetBarber(ctx, barberID); err != nil {
		return nil, httperr.DataAccess("get_barber", err)
	}

	days, err := uc.schedules.WeekdaysWithAvailability(ctx, barberID)
	if err != nil {
		return nil, httperr.DataAccess("weekdays_with_availability", err)
	}
	if days == nil {
		days = []int{}
	}

	return days, nil
}

func (uc *ListBookableDays) Execute(
	ctx context.Context,
	barberID uint,
) ([]domain.BookableDay, error) {

	days, err := uc.Weekdays(ctx, barberID)
	if err != nil {
		return nil, err
	}

	today := uc.now()

	out := make([]domain.BookableDay, 0, len(days))
	for _, wd := range days {
		out = append(out, domain.BookableDay{
			Weekday: wd,
			Date:    schedule.NextDateFor(today, wd),
		})
	}

	return out, nil
}
