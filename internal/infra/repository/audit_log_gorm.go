package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/models"
	ucAuditLog "github.com/BruksfildServices01/barber-booking/internal/usecase/auditlog"
)

type AuditLogGormRepository struct {
	db *gorm.DB
}

func NewAuditLogGormRepository(db *gorm.DB) *AuditLogGormRepository {
	return &AuditLogGormRepository{db: db}
}

func (r *AuditLogGormRepository) GetBarbershop(ctx context.Context, id string) (*models.Barbershop, error) {
	var shop models.Barbershop
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&shop).Error; err != nil {
		return nil, translate(err)
	}
	return &shop, nil
}

func (r *AuditLogGormRepository) ListByBarbershop(ctx context.Context, barbershopID string, limit int) ([]models.AuditLog, error) {
	var logs []models.AuditLog
	if err := r.db.WithContext(ctx).
		Where("barbershop_id = ?", barbershopID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, translate(err)
	}
	return logs, nil
}

// Compile-time check
var _ ucAuditLog.Repository = (*AuditLogGormRepository)(nil)
