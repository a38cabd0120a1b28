package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

func (r *ScheduleGormRepository) RecurringSlotsFor(
	ctx context.Context,
	barberID uint,
	weekday int,
) ([]models.BarberSchedule, error) {

	var slots []models.BarberSchedule
	if err := r.db.WithContext(ctx).
		Where("barber_id = ? AND day_of_week = ?", barberID, weekday).
		Order("time_slot ASC").
		Find(&slots).Error; err != nil {
		return nil, httperr.DataAccess("recurring_slots_for", err)
	}

	return slots, nil
}

func (r *ScheduleGormRepository) WeekdaysWithAvailability(
	ctx context.Context,
	barberID uint,
) ([]int, error) {

	var days []int
	if err := r.db.WithContext(ctx).
		Model(&models.BarberSchedule{}).
		Where("barber_id = ?", barberID).
		Distinct("day_of_week").
		Order("day_of_week ASC").
		Pluck("day_of_week", &days).Error; err != nil {
		return nil, httperr.DataAccess("weekdays_with_availability", err)
	}

	return days, nil
}

func (r *ScheduleGormRepository) GetRecurringSlot(
	ctx context.Context,
	id uint,
) (*models.BarberSchedule, error) {

	var slot models.BarberSchedule
	if err := r.db.WithContext(ctx).First(&slot, id).Error; err != nil {
		return nil, lookupErr("get_recurring_slot", "schedule", id, err)
	}

	return &slot, nil
}

// InsertRecurringSlots grava em lote; linhas já existentes são ignoradas.
func (r *ScheduleGormRepository) InsertRecurringSlots(
	ctx context.Context,
	slots []models.BarberSchedule,
) error {
	if len(slots) == 0 {
		return nil
	}

	if err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(&slots, 100).Error; err != nil {
		return httperr.DataAccess("insert_recurring_slots", err)
	}

	return nil
}

// Compile-time check
var _ domain.ScheduleStore = (*ScheduleGormRepository)(nil)
