package openinghours

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-booking/internal/apperr"
	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/guard"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/store"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

var weekDays = [7]string{
	"Domingo",
	"Segunda-feira",
	"Terça-feira",
	"Quarta-feira",
	"Quinta-feira",
	"Sexta-feira",
	"Sábado",
}

type Service struct {
	repo  Repository
	audit *audit.Dispatcher
}

func NewService(repo Repository, auditor *audit.Dispatcher) *Service {
	return &Service{
		repo:  repo,
		audit: auditor,
	}
}

type CreateInput struct {
	Day          int
	OpeningTime  string
	ClosingTime  string
	BarbershopID string
}

// Create cadastra o horário de um dia. Invariante: no máximo um registro
// por (barbearia, dia).
func (s *Service) Create(ctx context.Context, actor guard.Identity, in CreateInput) (string, error) {
	if !validators.IsWeekday(in.Day) {
		return "", apperr.InvalidParam("Dia da semana inválido.")
	}

	if !validators.IsTimeOfDay(in.OpeningTime) || !validators.IsTimeOfDay(in.ClosingTime) {
		return "", apperr.InvalidParam("Formato de horário inválido. Utilize o formato HH:MM.")
	}

	shop, err := s.repo.GetBarbershop(ctx, in.BarbershopID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", apperr.InvalidParam("Barbearia com id:%s não encontrada.", in.BarbershopID)
		}
		return "", err
	}

	if err := guard.RequireSelf(actor, shop.OwnerID, "definir os horários de funcionamento para esta barbearia"); err != nil {
		return "", err
	}

	if existing, err := s.repo.FindByShopAndDay(ctx, in.BarbershopID, in.Day); err != nil && !errors.Is(err, store.ErrNotFound) {
		return "", err
	} else if existing != nil {
		return "", apperr.Conflict("Já há um horário para %s.", weekDays[in.Day])
	}

	oh := &models.OpeningHours{
		Day:          in.Day,
		OpeningTime:  in.OpeningTime,
		ClosingTime:  in.ClosingTime,
		BarbershopID: in.BarbershopID,
	}

	if err := s.repo.Create(ctx, oh); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return "", apperr.Conflict("Já há um horário para %s.", weekDays[in.Day])
		}
		return "", err
	}

	s.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       &actor.UserID,
		Action:       "opening_hours_created",
		Entity:       "opening_hours",
		EntityID:     &oh.ID,
	})

	return oh.ID, nil
}

func (s *Service) ListByBarbershop(ctx context.Context, barbershopID string) ([]models.OpeningHours, error) {
	return s.repo.ListByBarbershop(ctx, barbershopID)
}

type UpdateInput struct {
	OpeningTime string
	ClosingTime string
}

// Update troca apenas os horários. Dia e barbearia são imutáveis.
func (s *Service) Update(ctx context.Context, actor guard.Identity, id string, in UpdateInput) error {
	oh, err := s.repo.GetWithShop(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.InvalidParam("O dia com id %s não foi encontrado.", id)
		}
		return err
	}

	if !validators.IsTimeOfDay(in.OpeningTime) || !validators.IsTimeOfDay(in.ClosingTime) {
		return apperr.InvalidParam("Formato de horário inválido. Utilize o formato HH:MM.")
	}

	if err := guard.RequireSelf(actor, oh.Barbershop.OwnerID, "definir os horários de funcionamento para esta barbearia"); err != nil {
		return err
	}

	oh.OpeningTime = in.OpeningTime
	oh.ClosingTime = in.ClosingTime

	return s.repo.Update(ctx, oh)
}

func (s *Service) Delete(ctx context.Context, actor guard.Identity, id string) error {
	oh, err := s.repo.GetWithShop(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.InvalidParam("O dia com id %s não foi encontrado.", id)
		}
		return err
	}

	if err := guard.RequireSelf(actor, oh.Barbershop.OwnerID, "definir os horários de funcionamento para esta barbearia"); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{
		BarbershopID: oh.BarbershopID,
		UserID:       &actor.UserID,
		Action:       "opening_hours_deleted",
		Entity:       "opening_hours",
		EntityID:     &id,
	})

	return nil
}
