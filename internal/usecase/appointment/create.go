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
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

// CreateInput não tem endTime de propósito: o fim é sempre derivado da
// duração do serviço no servidor.
type CreateInput struct {
	Date         string
	StartTime    string
	CustomerID   string
	BarbershopID string
	ServiceID    string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache cache.Cache
}

func NewCreateAppointment(
	repo domain.Repository,
	auditor *audit.Dispatcher,
	c cache.Cache,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: auditor,
		cache: c,
	}
}

// Execute aplica a sequência do resolvedor de conflito. Cada passo é
// pré-condição do seguinte; a primeira falha aborta a operação.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	actor guard.Identity,
	in CreateInput,
) (*models.Appointment, error) {

	// 1. auto-checagem estrita, antes de qualquer lookup
	if err := guard.RequireSelf(actor, in.CustomerID, "criar um agendamento para outro usuário"); err != nil {
		return nil, err
	}

	if !validators.IsDate(in.Date) {
		return nil, apperr.InvalidParam("Data inválida. Utilize o formato AAAA-MM-DD.")
	}
	if !validators.IsTimeOfDay(in.StartTime) {
		return nil, apperr.InvalidParam("Formato de horário inválido. Utilize o formato HH:MM.")
	}

	// 2. cliente precisa existir
	if _, err := uc.repo.GetCustomer(ctx, in.CustomerID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.InvalidParam("Usuário com id:%s não encontrado.", in.CustomerID)
		}
		return nil, err
	}

	// 3. serviço (com a barbearia) precisa existir
	svc, err := uc.repo.GetServiceWithShop(ctx, in.ServiceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.InvalidParam("Serviço com id:%s não encontrado.", in.ServiceID)
		}
		return nil, err
	}

	if svc.BarbershopID != in.BarbershopID {
		return nil, apperr.InvalidParam("Serviço com id:%s não pertence a esta barbearia.", in.ServiceID)
	}

	// 4. fim derivado da duração do serviço
	endTime, err := domain.EndTime(in.StartTime, svc.Duration)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		Date:         in.Date,
		StartTime:    in.StartTime,
		EndTime:      endTime,
		Canceled:     false,
		CustomerID:   in.CustomerID,
		BarbershopID: in.BarbershopID,
		ServiceID:    in.ServiceID,
	}

	// 5 + 6. checagem de sobreposição e insert na mesma transação
	if err := uc.repo.CreateIfNoOverlap(ctx, ap); err != nil {
		if errors.Is(err, domain.ErrOverlap) {
			uc.audit.Dispatch(audit.Event{
				BarbershopID: in.BarbershopID,
				UserID:       &actor.UserID,
				Action:       "appointment_conflict",
				Entity:       "appointment",
				Metadata: map[string]any{
					"date":  in.Date,
					"start": in.StartTime,
					"end":   endTime,
				},
			})
			return nil, apperr.Conflict("Já existe um agendamento para este horário.")
		}
		return nil, err
	}

	// horários livres da barbearia mudaram; derruba o cache da data
	if uc.cache != nil {
		uc.cache.Purge(ctx, availabilityPattern(in.BarbershopID, in.Date))
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       &actor.UserID,
		Action:       "appointment_created",
		Entity:       "appointment",
		EntityID:     &ap.ID,
	})

	return ap, nil
}
