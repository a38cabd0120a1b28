package appointment

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

func TestListClientHistory(t *testing.T) {
	apps := &memAppointments{history: []domain.HistoryRow{
		{AppointmentID: 2, Date: "2024-06-12", TimeSlot: "10:00", BarberName: "Roberto Estilo", ServiceName: "Barba Lenhador", Price: 35},
		{AppointmentID: 1, Date: "2024-06-10", TimeSlot: "09:20", Price: 42.5},
	}}

	out, err := NewListClientHistory(apps).Execute(t.Context(), 5)
	require.NoError(t, err)

	assert.Equal(t, []dto.AppointmentHistoryDTO{
		{
			ID:           2,
			Date:         "2024-06-12",
			DisplayDate:  "12/06/2024",
			Time:         "10:00",
			Barber:       "Roberto Estilo",
			Service:      "Barba Lenhador",
			Price:        35,
			DisplayPrice: "R$ 35,00",
		},
		{
			ID:           1,
			Date:         "2024-06-10",
			DisplayDate:  "10/06/2024",
			Time:         "09:20",
			Barber:       "Barbeiro não encontrado",
			Service:      "Serviço não encontrado",
			Price:        42.5,
			DisplayPrice: "R$ 42,50",
		},
	}, out)
}

func TestListClientHistoryEmpty(t *testing.T) {
	out, err := NewListClientHistory(&memAppointments{}).Execute(t.Context(), 5)
	require.NoError(t, err)
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestListClientHistoryFailure(t *testing.T) {
	_, err := NewListClientHistory(&memAppointments{createErr: errors.New("boom")}).Execute(t.Context(), 5)
	assert.True(t, httperr.IsDataAccess(err))
}
