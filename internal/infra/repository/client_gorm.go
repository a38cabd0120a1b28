package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type ClientGormRepository struct {
	db *gorm.DB
}

func NewClientGormRepository(db *gorm.DB) *ClientGormRepository {
	return &ClientGormRepository{db: db}
}

func (r *ClientGormRepository) GetClientByID(
	ctx context.Context,
	id uint,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).First(&client, id).Error; err != nil {
		return nil, lookupErr("get_client", "client", id, err)
	}
	return &client, nil
}

func (r *ClientGormRepository) GetClientByEmail(
	ctx context.Context,
	email string,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&client).Error; err != nil {
		return nil, lookupErr("get_client_by_email", "client", email, err)
	}
	return &client, nil
}

func (r *ClientGormRepository) CreateClient(
	ctx context.Context,
	client *models.Client,
) error {
	if err := r.db.WithContext(ctx).Create(client).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrBusiness("email_already_exists")
		}
		return httperr.DataAccess("create_client", err)
	}
	return nil
}

// Compile-time check
var _ domain.ClientStore = (*ClientGormRepository)(nil)
