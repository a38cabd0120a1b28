package schedule

import (
	"strconv"
	"strings"
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

const DateLayout = "2006-01-02"

// ParseDate lê "YYYY-MM-DD" como data civil, sem fuso horário.
//
// Os componentes são montados em UTC apenas como suporte neutro: nenhuma
// conversão acontece, então o dia da semana não depende do fuso do processo.
func ParseDate(s string) (time.Time, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || len(parts[0]) != 4 || len(parts[1]) != 2 || len(parts[2]) != 2 {
		return time.Time{}, httperr.ErrBusiness("invalid_date")
	}

	for _, p := range parts {
		if !allDigits(p) {
			return time.Time{}, httperr.ErrBusiness("invalid_date")
		}
	}

	year, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	day, _ := strconv.Atoi(parts[2])

	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

	// a data vira chave de conflito: só a forma canônica é aceita
	// (time.Date normaliza 2024-02-30 para março).
	if d.Format(DateLayout) != s {
		return time.Time{}, httperr.ErrBusiness("invalid_date")
	}

	return d, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// WeekdayOf devolve 0 (domingo) a 6 (sábado) para uma data "YYYY-MM-DD".
func WeekdayOf(date string) (int, error) {
	d, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	return int(d.Weekday()), nil
}

func IsWeekday(weekday int) bool {
	return weekday >= 0 && weekday <= 6
}

// CivilDate descarta hora e fuso de t, mantendo o dia do calendário local de t.
func CivilDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NextDateFor devolve a próxima data (hoje incluso) que cai em weekday.
func NextDateFor(today time.Time, weekday int) string {
	base := CivilDate(today)
	diff := (weekday - int(base.Weekday()) + 7) % 7
	return base.AddDate(0, 0, diff).Format(DateLayout)
}
