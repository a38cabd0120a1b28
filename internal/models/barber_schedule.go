package models

// BarberSchedule é um horário recorrente: (barbeiro, dia da semana, "HH:MM").
// Gerado em lote no seed e não alterado pelo fluxo de agendamento.
type BarberSchedule struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"not null;uniqueIndex:idx_schedule_barber_day_slot,priority:1" json:"barber_id"`

	// 0 = domingo ... 6 = sábado
	DayOfWeek int    `gorm:"not null;uniqueIndex:idx_schedule_barber_day_slot,priority:2" json:"day_of_week"`
	TimeSlot  string `gorm:"size:5;not null;uniqueIndex:idx_schedule_barber_day_slot,priority:3" json:"time_slot"`
}
