package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/models"
	ucService "github.com/BruksfildServices01/barber-booking/internal/usecase/service"
)

type ServiceGormRepository struct {
	db *gorm.DB
}

func NewServiceGormRepository(db *gorm.DB) *ServiceGormRepository {
	return &ServiceGormRepository{db: db}
}

func (r *ServiceGormRepository) GetBarbershop(ctx context.Context, id string) (*models.Barbershop, error) {
	var shop models.Barbershop
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&shop).Error; err != nil {
		return nil, translate(err)
	}
	return &shop, nil
}

func (r *ServiceGormRepository) Create(ctx context.Context, svc *models.Service) error {
	return translate(r.db.WithContext(ctx).Create(svc).Error)
}

func (r *ServiceGormRepository) GetWithShop(ctx context.Context, id string) (*models.Service, error) {
	var svc models.Service
	if err := r.db.WithContext(ctx).
		Preload("Barbershop").
		Where("id = ?", id).
		First(&svc).Error; err != nil {
		return nil, translate(err)
	}
	return &svc, nil
}

func (r *ServiceGormRepository) ListByBarbershop(ctx context.Context, barbershopID string) ([]models.Service, error) {
	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ?", barbershopID).
		Order("created_at ASC").
		Find(&services).Error; err != nil {
		return nil, translate(err)
	}
	return services, nil
}

func (r *ServiceGormRepository) Update(ctx context.Context, svc *models.Service) error {
	return translate(r.db.WithContext(ctx).Save(svc).Error)
}

func (r *ServiceGormRepository) Delete(ctx context.Context, id string) error {
	return translate(r.db.WithContext(ctx).Delete(&models.Service{}, "id = ?", id).Error)
}

// Compile-time check
var _ ucService.Repository = (*ServiceGormRepository)(nil)
