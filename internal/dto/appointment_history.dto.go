package dto

type AppointmentHistoryDTO struct {
	ID           uint    `json:"id"`
	Date         string  `json:"date"`
	DisplayDate  string  `json:"display_date"`
	Time         string  `json:"time"`
	Barber       string  `json:"barber"`
	Service      string  `json:"service"`
	Price        float64 `json:"price"`
	DisplayPrice string  `json:"display_price"`
}
