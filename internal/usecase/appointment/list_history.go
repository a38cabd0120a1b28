package appointment

import (
	"context"
	"fmt"
	"strings"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

type ListClientHistory struct {
	appointments domain.AppointmentStore
}

func NewListClientHistory(appointments domain.AppointmentStore) *ListClientHistory {
	return &ListClientHistory{appointments: appointments}
}

func (uc *ListClientHistory) Execute(
	ctx context.Context,
	clientID uint,
) ([]dto.AppointmentHistoryDTO, error) {

	rows, err := uc.appointments.ListHistoryForClient(ctx, clientID)
	if err != nil {
		return nil, httperr.DataAccess("list_history", err)
	}

	out := make([]dto.AppointmentHistoryDTO, 0, len(rows))
	for _, r := range rows {
		barber := r.BarberName
		if barber == "" {
			barber = "Barbeiro não encontrado"
		}
		service := r.ServiceName
		if service == "" {
			service = "Serviço não encontrado"
		}

		out = append(out, dto.AppointmentHistoryDTO{
			ID:           r.AppointmentID,
			Date:         r.Date,
			DisplayDate:  displayDate(r.Date),
			Time:         r.TimeSlot,
			Barber:       barber,
			Service:      service,
			Price:        r.Price,
			DisplayPrice: formatBRL(r.Price),
		})
	}

	return out, nil
}

// "2024-06-10" → "10/06/2024"
func displayDate(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[2] + "/" + parts[1] + "/" + parts[0]
}

// 35 → "R$ 35,00"
func formatBRL(v float64) string {
	return "R$ " + strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1)
}
