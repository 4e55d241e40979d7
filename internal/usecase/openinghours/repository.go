package openinghours

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Repository interface {
	GetBarbershop(ctx context.Context, id string) (*models.Barbershop, error)
	FindByShopAndDay(ctx context.Context, barbershopID string, day int) (*models.OpeningHours, error)

	Create(ctx context.Context, oh *models.OpeningHours) error
	// GetWithShop carrega o registro com a barbearia dona (para checar ownerId).
	GetWithShop(ctx context.Context, id string) (*models.OpeningHours, error)
	ListByBarbershop(ctx context.Context, barbershopID string) ([]models.OpeningHours, error)
	Update(ctx context.Context, oh *models.OpeningHours) error
	Delete(ctx context.Context, id string) error
}
