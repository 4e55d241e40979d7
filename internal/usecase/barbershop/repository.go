package barbershop

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Repository interface {
	GetOwner(ctx context.Context, id string) (*models.User, error)
	GetByOwner(ctx context.Context, ownerID string) (*models.Barbershop, error)

	Create(ctx context.Context, b *models.Barbershop) error
	GetByID(ctx context.Context, id string) (*models.Barbershop, error)
	ListWithOwner(ctx context.Context) ([]models.Barbershop, error)
	Update(ctx context.Context, b *models.Barbershop) error
	Delete(ctx context.Context, id string) error
}
