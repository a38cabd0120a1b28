package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Implementações devolvem httperr.NotFoundError para registros ausentes e
// httperr.DataAccessError para qualquer outra falha de persistência.

type ScheduleStore interface {
	// Ordenados por horário (ordem cronológica).
	RecurringSlotsFor(
		ctx context.Context,
		barberID uint,
		weekday int,
	) ([]models.BarberSchedule, error)

	// Dias distintos, em ordem crescente.
	WeekdaysWithAvailability(
		ctx context.Context,
		barberID uint,
	) ([]int, error)

	GetRecurringSlot(
		ctx context.Context,
		id uint,
	) (*models.BarberSchedule, error)
}

type AppointmentStore interface {
	CountAppointmentsAt(
		ctx context.Context,
		barberID uint,
		date string,
		timeSlot string,
	) (int64, error)

	// Violação do índice único vira httperr.DuplicateBookingError.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListHistoryForClient(
		ctx context.Context,
		clientID uint,
	) ([]HistoryRow, error)
}

type CatalogStore interface {
	ListBarbers(ctx context.Context) ([]models.Barber, error)

	GetBarber(
		ctx context.Context,
		id uint,
	) (*models.Barber, error)

	ListServicesForBarber(
		ctx context.Context,
		barberID uint,
	) ([]models.BarberService, error)

	GetBarberService(
		ctx context.Context,
		barberID uint,
		serviceID uint,
	) (*models.BarberService, error)
}

type ClientStore interface {
	GetClientByID(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	GetClientByEmail(
		ctx context.Context,
		email string,
	) (*models.Client, error)

	CreateClient(
		ctx context.Context,
		client *models.Client,
	) error
}
