package appointment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-booking/internal/apperr"
	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/cache"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/guard"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/store"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache cache.Cache
}

func NewCancelAppointment(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	c cache.Cache,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: auditor,
		cache: c,
	}
}

// Execute marca o agendamento como cancelado. Cancelar de novo é no-op:
// a linha continua cancelada e a chamada responde sucesso.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actor guard.Identity,
	appointmentID string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.InvalidParam("Agendamento com id:%s não encontrado.", appointmentID)
		}
		return nil, err
	}

	if err := guard.RequireSelf(actor, ap.CustomerID, "cancelar este agendamento"); err != nil {
		return nil, err
	}

	if ap.Canceled {
		return ap, nil
	}

	ap.Canceled = true
	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, err
	}

	// o horário voltou a ficar livre; derruba o cache da data
	if uc.cache != nil {
		uc.cache.Purge(ctx, availabilityPattern(ap.BarbershopID, ap.Date))
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: ap.BarbershopID,
		UserID:       &actor.UserID,
		Action:       "appointment_cancelled",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}
