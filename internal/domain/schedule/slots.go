package schedule

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

const (
	labelLayout  = "15:04"
	minutesInDay = 24 * 60
)

// ParseTimeLabel converte "HH:MM" (24h, dois dígitos) em minutos do dia.
func ParseTimeLabel(label string) (int, error) {
	if len(label) != len(labelLayout) {
		return 0, fmt.Errorf("time label %q: expected HH:MM", label)
	}

	t, err := time.Parse(labelLayout, label)
	if err != nil {
		return 0, fmt.Errorf("time label %q: %w", label, err)
	}

	return t.Hour()*60 + t.Minute(), nil
}

func FormatTimeLabel(minuteOfDay int) string {
	return fmt.Sprintf("%02d:%02d", minuteOfDay/60, minuteOfDay%60)
}

func IsTimeLabel(label string) bool {
	_, err := ParseTimeLabel(label)
	return err == nil
}

// GenerateTimeSlots produz os rótulos de dailyStart até dailyEnd (inclusive)
// de interval em interval minutos. Início depois do fim gera lista vazia.
func GenerateTimeSlots(dailyStart, dailyEnd string, interval int) ([]string, error) {
	if interval <= 0 {
		return nil, httperr.InvalidRange(fmt.Sprintf("interval must be positive, got %d", interval))
	}

	start, err := ParseTimeLabel(dailyStart)
	if err != nil {
		return nil, httperr.InvalidRange(err.Error())
	}

	end, err := ParseTimeLabel(dailyEnd)
	if err != nil {
		return nil, httperr.InvalidRange(err.Error())
	}

	slots := make([]string, 0, slotCount(start, end, interval))
	for cur := start; cur <= end && cur < minutesInDay; cur += interval {
		slots = append(slots, FormatTimeLabel(cur))
		// evita overflow de cur com intervalos enormes
		if interval > end-cur {
			break
		}
	}

	return slots, nil
}

func slotCount(start, end, interval int) int {
	if start > end {
		return 0
	}
	return (end-start)/interval + 1
}
