package appointment

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type Repository interface {
	// -------- Referências --------
	GetCustomer(
		ctx context.Context,
		id string,
	) (*models.User, error)

	GetServiceWithShop(
		ctx context.Context,
		id string,
	) (*models.Service, error)

	// -------- Appointment (create / conflict) --------
	// CreateIfNoOverlap roda a checagem de sobreposição e o insert na mesma
	// transação, com lock nas linhas varridas. Devolve ErrOverlap quando já
	// existe agendamento ativo conflitante em (barbershop_id, date).
	CreateIfNoOverlap(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (leitura / cancelamento) --------
	GetByID(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	Update(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListByCustomer(
		ctx context.Context,
		customerID string,
	) ([]models.Appointment, error)

	// -------- Disponibilidade --------
	GetOpeningHours(
		ctx context.Context,
		barbershopID string,
		day int,
	) (*models.OpeningHours, error)

	ListActiveForDay(
		ctx context.Context,
		barbershopID string,
		date string,
	) ([]models.Appointment, error)
}
