package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/models"
	ucOpeningHours "github.com/BruksfildServices01/barber-booking/internal/usecase/openinghours"
)

type OpeningHoursGormRepository struct {
	db *gorm.DB
}

func NewOpeningHoursGormRepository(db *gorm.DB) *OpeningHoursGormRepository {
	return &OpeningHoursGormRepository{db: db}
}

func (r *OpeningHoursGormRepository) GetBarbershop(ctx context.Context, id string) (*models.Barbershop, error) {
	var shop models.Barbershop
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&shop).Error; err != nil {
		return nil, translate(err)
	}
	return &shop, nil
}

func (r *OpeningHoursGormRepository) FindByShopAndDay(ctx context.Context, barbershopID string, day int) (*models.OpeningHours, error) {
	var oh models.OpeningHours
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ? AND day = ?", barbershopID, day).
		First(&oh).Error; err != nil {
		return nil, translate(err)
	}
	return &oh, nil
}

func (r *OpeningHoursGormRepository) Create(ctx context.Context, oh *models.OpeningHours) error {
	return translate(r.db.WithContext(ctx).Create(oh).Error)
}

func (r *OpeningHoursGormRepository) GetWithShop(ctx context.Context, id string) (*models.OpeningHours, error) {
	var oh models.OpeningHours
	if err := r.db.WithContext(ctx).
		Preload("Barbershop").
		Where("id = ?", id).
		First(&oh).Error; err != nil {
		return nil, translate(err)
	}
	return &oh, nil
}

func (r *OpeningHoursGormRepository) ListByBarbershop(ctx context.Context, barbershopID string) ([]models.OpeningHours, error) {
	var hours []models.OpeningHours
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ?", barbershopID).
		Order("day ASC").
		Find(&hours).Error; err != nil {
		return nil, translate(err)
	}
	return hours, nil
}

func (r *OpeningHoursGormRepository) Update(ctx context.Context, oh *models.OpeningHours) error {
	return translate(r.db.WithContext(ctx).Save(oh).Error)
}

func (r *OpeningHoursGormRepository) Delete(ctx context.Context, id string) error {
	return translate(r.db.WithContext(ctx).Delete(&models.OpeningHours{}, "id = ?", id).Error)
}

// Compile-time check
var _ ucOpeningHours.Repository = (*OpeningHoursGormRepository)(nil)
