package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

func (r *AppointmentGormRepository) CountAppointmentsAt(
	ctx context.Context,
	barberID uint,
	date string,
	timeSlot string,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"barber_id = ? AND date = ? AND time_slot = ?",
			barberID, date, timeSlot,
		).
		Count(&count).Error; err != nil {
		return 0, httperr.DataAccess("count_appointments", err)
	}

	return count, nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.DuplicateBookingError{
				BarberID: ap.BarberID,
				Date:     ap.Date,
				TimeSlot: ap.TimeSlot,
			}
		}
		return httperr.DataAccess("create_appointment", err)
	}

	return nil
}

func (r *AppointmentGormRepository) ListHistoryForClient(
	ctx context.Context,
	clientID uint,
) ([]domain.HistoryRow, error) {

	var rows []domain.HistoryRow
	if err := r.db.WithContext(ctx).
		Table("appointments AS a").
		Select(`
			a.id                  AS appointment_id,
			a.date                AS date,
			a.time_slot           AS time_slot,
			COALESCE(b.name, '')  AS barber_name,
			COALESCE(s.name, '')  AS service_name,
			COALESCE(bs.price, 0) AS price`).
		Joins("LEFT JOIN barbers b ON b.id = a.barber_id").
		Joins("LEFT JOIN services s ON s.id = a.service_id").
		Joins("LEFT JOIN barber_services bs ON bs.barber_id = a.barber_id AND bs.service_id = a.service_id").
		Where("a.client_id = ?", clientID).
		Order("a.date DESC, a.time_slot DESC").
		Scan(&rows).Error; err != nil {
		return nil, httperr.DataAccess("list_history", err)
	}

	return rows, nil
}

// Compile-time check
var _ domain.AppointmentStore = (*AppointmentGormRepository)(nil)
