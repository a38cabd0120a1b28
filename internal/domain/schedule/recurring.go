package schedule

import (
	"fmt"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// WorkingConfig descreve o expediente semanal de um barbeiro.
type WorkingConfig struct {
	BarberID    uint
	WorkingDays []int
	DailyStart  string
	DailyEnd    string
	Interval    int
}

// Expand aplica o gerador a cada dia trabalhado, na ordem dos dias
// e, dentro de cada dia, em ordem cronológica.
func (wc WorkingConfig) Expand() ([]models.BarberSchedule, error) {
	labels, err := GenerateTimeSlots(wc.DailyStart, wc.DailyEnd, wc.Interval)
	if err != nil {
		return nil, err
	}

	out := make([]models.BarberSchedule, 0, len(labels)*len(wc.WorkingDays))
	for _, day := range wc.WorkingDays {
		if !IsWeekday(day) {
			return nil, httperr.InvalidRange(fmt.Sprintf("weekday %d out of 0..6", day))
		}
		for _, label := range labels {
			out = append(out, models.BarberSchedule{
				BarberID:  wc.BarberID,
				DayOfWeek: day,
				TimeSlot:  label,
			})
		}
	}

	return out, nil
}
