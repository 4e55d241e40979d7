package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/models"
	ucBarbershop "github.com/BruksfildServices01/barber-booking/internal/usecase/barbershop"
)

type BarbershopGormRepository struct {
	db *gorm.DB
}

func NewBarbershopGormRepository(db *gorm.DB) *BarbershopGormRepository {
	return &BarbershopGormRepository{db: db}
}

func (r *BarbershopGormRepository) GetOwner(ctx context.Context, id string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (r *BarbershopGormRepository) GetByOwner(ctx context.Context, ownerID string) (*models.Barbershop, error) {
	var shop models.Barbershop
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		First(&shop).Error; err != nil {
		return nil, translate(err)
	}
	return &shop, nil
}

func (r *BarbershopGormRepository) Create(ctx context.Context, b *models.Barbershop) error {
	return translate(r.db.WithContext(ctx).Create(b).Error)
}

func (r *BarbershopGormRepository) GetByID(ctx context.Context, id string) (*models.Barbershop, error) {
	var shop models.Barbershop
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&shop).Error; err != nil {
		return nil, translate(err)
	}
	return &shop, nil
}

func (r *BarbershopGormRepository) ListWithOwner(ctx context.Context) ([]models.Barbershop, error) {
	var shops []models.Barbershop
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Order("created_at ASC").
		Find(&shops).Error; err != nil {
		return nil, translate(err)
	}
	return shops, nil
}

func (r *BarbershopGormRepository) Update(ctx context.Context, b *models.Barbershop) error {
	return translate(r.db.WithContext(ctx).Save(b).Error)
}

func (r *BarbershopGormRepository) Delete(ctx context.Context, id string) error {
	return translate(r.db.WithContext(ctx).Delete(&models.Barbershop{}, "id = ?", id).Error)
}

// Compile-time check
var _ ucBarbershop.Repository = (*BarbershopGormRepository)(nil)
