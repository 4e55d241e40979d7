package service

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-booking/internal/apperr"
	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/guard"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/store"
)

// Service administra o catálogo de serviços de uma barbearia. A posse é
// transitiva: quem manda é o ownerId da barbearia.
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

type View struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    float64 `json:"duration"`
}

func toView(svc *models.Service) *View {
	return &View{
		ID:          svc.ID,
		Name:        svc.Name,
		Description: svc.Description,
		Price:       svc.Price,
		Duration:    svc.Duration,
	}
}

type CreateInput struct {
	Name         string
	Description  string
	Price        float64
	Duration     float64
	BarbershopID string
}

func (s *Service) Create(ctx context.Context, actor guard.Identity, in CreateInput) (string, error) {
	if in.Price < 0 {
		return "", apperr.InvalidParam("Preço de serviço inválido.")
	}
	if in.Duration < 0 {
		return "", apperr.InvalidParam("Duração de serviço inválida.")
	}

	shop, err := s.repo.GetBarbershop(ctx, in.BarbershopID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", apperr.InvalidParam("Barbearia com id:%s não encontrada.", in.BarbershopID)
		}
		return "", err
	}

	if err := guard.RequireSelf(actor, shop.OwnerID, "criar serviços para esta barbearia"); err != nil {
		return "", err
	}

	svc := &models.Service{
		Name:         in.Name,
		Description:  in.Description,
		Price:        in.Price,
		Duration:     in.Duration,
		BarbershopID: in.BarbershopID,
	}

	if err := s.repo.Create(ctx, svc); err != nil {
		return "", err
	}

	s.audit.Dispatch(audit.Event{
		BarbershopID: in.BarbershopID,
		UserID:       &actor.UserID,
		Action:       "service_created",
		Entity:       "service",
		EntityID:     &svc.ID,
	})

	return svc.ID, nil
}

func (s *Service) ListByBarbershop(ctx context.Context, barbershopID string) ([]View, error) {
	if _, err := s.repo.GetBarbershop(ctx, barbershopID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.InvalidParam("Barbearia com id:%s não encontrada.", barbershopID)
		}
		return nil, err
	}

	services, err := s.repo.ListByBarbershop(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	out := make([]View, 0, len(services))
	for i := range services {
		out = append(out, *toView(&services[i]))
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*View, error) {
	svc, err := s.repo.GetWithShop(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.InvalidParam("Serviço com id:%s não encontrado.", id)
		}
		return nil, err
	}
	return toView(svc), nil
}

type UpdateInput struct {
	Name        string
	Description string
	Price       *float64
	Duration    *float64
}

func (s *Service) Update(ctx context.Context, actor guard.Identity, id string, in UpdateInput) error {
	svc, err := s.repo.GetWithShop(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.InvalidParam("Serviço com id:%s não encontrado.", id)
		}
		return err
	}

	if err := guard.RequireSelf(actor, svc.Barbershop.OwnerID, "editar este serviço"); err != nil {
		return err
	}

	if in.Name != "" {
		svc.Name = in.Name
	}
	if in.Description != "" {
		svc.Description = in.Description
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return apperr.InvalidParam("Preço de serviço inválido.")
		}
		svc.Price = *in.Price
	}
	if in.Duration != nil {
		if *in.Duration < 0 {
			return apperr.InvalidParam("Duração de serviço inválida.")
		}
		svc.Duration = *in.Duration
	}

	return s.repo.Update(ctx, svc)
}

func (s *Service) Delete(ctx context.Context, actor guard.Identity, id string) error {
	svc, err := s.repo.GetWithShop(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.InvalidParam("Serviço com id:%s não encontrado.", id)
		}
		return err
	}

	if err := guard.RequireSelf(actor, svc.Barbershop.OwnerID, "deletar este serviço"); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{
		BarbershopID: svc.BarbershopID,
		UserID:       &actor.UserID,
		Action:       "service_deleted",
		Entity:       "service",
		EntityID:     &id,
	})

	return nil
}
