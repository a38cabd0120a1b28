package appointment

type AvailabilityInput struct {
	BarberID uint
	Date     string // YYYY-MM-DD
}

// AvailableSlot é um horário recorrente ainda livre na data consultada.
type AvailableSlot struct {
	SlotID   uint   `json:"slot_id"`
	TimeSlot string `json:"time_slot"`
}

type Availability struct {
	Date    string          `json:"date"`
	Weekday int             `json:"weekday"`
	Slots   []AvailableSlot `json:"slots"`
}

// BookableDay associa um dia da semana atendido à próxima data correspondente.
type BookableDay struct {
	Weekday int    `json:"weekday"`
	Date    string `json:"date"`
}

// HistoryRow é a leitura desnormalizada usada pelo histórico do cliente.
type HistoryRow struct {
	AppointmentID uint
	Date          string
	TimeSlot      string
	BarberName    string
	ServiceName   string
	Price         float64
}
