package auditlog

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Repository interface {
	GetBarbershop(ctx context.Context, id string) (*models.Barbershop, error)
	ListByBarbershop(ctx context.Context, barbershopID string, limit int) ([]models.AuditLog, error)
}
