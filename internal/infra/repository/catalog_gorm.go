package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type CatalogGormRepository struct {
	db *gorm.DB
}

func NewCatalogGormRepository(db *gorm.DB) *CatalogGormRepository {
	return &CatalogGormRepository{db: db}
}

// --------------------------------------------------
// Barber
// --------------------------------------------------

func (r *CatalogGormRepository) ListBarbers(ctx context.Context) ([]models.Barber, error) {
	var barbers []models.Barber
	if err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		return nil, httperr.DataAccess("list_barbers", err)
	}
	return barbers, nil
}

func (r *CatalogGormRepository) GetBarber(
	ctx context.Context,
	id uint,
) (*models.Barber, error) {

	var barber models.Barber
	if err := r.db.WithContext(ctx).First(&barber, id).Error; err != nil {
		return nil, lookupErr("get_barber", "barber", id, err)
	}
	return &barber, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *CatalogGormRepository) ListServicesForBarber(
	ctx context.Context,
	barberID uint,
) ([]models.BarberService, error) {

	var offers []models.BarberService
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("barber_id = ?", barberID).
		Order("service_id ASC").
		Find(&offers).Error; err != nil {
		return nil, httperr.DataAccess("list_services_for_barber", err)
	}
	return offers, nil
}

func (r *CatalogGormRepository) GetBarberService(
	ctx context.Context,
	barberID uint,
	serviceID uint,
) (*models.BarberService, error) {

	var offer models.BarberService
	if err := r.db.WithContext(ctx).
		Preload("Service").
		Where("barber_id = ? AND service_id = ?", barberID, serviceID).
		First(&offer).Error; err != nil {
		return nil, lookupErr("get_barber_service", "service", serviceID, err)
	}
	return &offer, nil
}

// Compile-time check
var _ domain.CatalogStore = (*CatalogGormRepository)(nil)
