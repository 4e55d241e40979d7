package service

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Repository interface {
	GetBarbershop(ctx context.Context, id string) (*models.Barbershop, error)

	Create(ctx context.Context, svc *models.Service) error
	// GetWithShop carrega o serviço com a barbearia dona (para checar ownerId).
	GetWithShop(ctx context.Context, id string) (*models.Service, error)
	ListByBarbershop(ctx context.Context, barbershopID string) ([]models.Service, error)
	Update(ctx context.Context, svc *models.Service) error
	Delete(ctx context.Context, id string) error
}
