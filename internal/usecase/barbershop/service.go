package barbershop

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-booking/internal/apperr"
	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/guard"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/store"
)

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
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	OwnerName   string `json:"owner_name,omitempty"`
	OwnerPhone  string `json:"owner_phone,omitempty"`
}

type CreateInput struct {
	Name        string
	Description string
	Phone       string
	Address     string
	OwnerID     string
}

// Create registra a barbearia do próprio usuário. Regra canônica: o dono
// precisa existir, ter papel OWNER e ainda não possuir barbearia. O papel
// do usuário nunca é alterado como efeito colateral.
func (s *Service) Create(ctx context.Context, actor guard.Identity, in CreateInput) (string, error) {
	if err := guard.RequireSelf(actor, in.OwnerID, "criar uma barbearia para outro usuário"); err != nil {
		return "", err
	}

	owner, err := s.repo.GetOwner(ctx, in.OwnerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", apperr.InvalidParam("Usuário com id:%s não encontrado.", in.OwnerID)
		}
		return "", err
	}

	if err := guard.RequireRole(
		guard.Identity{UserID: owner.ID, Role: guard.Role(owner.Role)},
		guard.BarbershopCreateRoles,
		"Este tipo de usuário não pode cadastrar barbearia.",
	); err != nil {
		return "", err
	}

	if existing, err := s.repo.GetByOwner(ctx, in.OwnerID); err != nil && !errors.Is(err, store.ErrNotFound) {
		return "", err
	} else if existing != nil {
		return "", apperr.Conflict("Este usuário já possui uma barbearia cadastrada.")
	}

	shop := &models.Barbershop{
		Name:        in.Name,
		Description: in.Description,
		Phone:       in.Phone,
		Address:     in.Address,
		OwnerID:     in.OwnerID,
	}

	if err := s.repo.Create(ctx, shop); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return "", apperr.Conflict("Este usuário já possui uma barbearia cadastrada.")
		}
		return "", err
	}

	s.audit.Dispatch(audit.Event{
		BarbershopID: shop.ID,
		UserID:       &actor.UserID,
		Action:       "barbershop_created",
		Entity:       "barbershop",
		EntityID:     &shop.ID,
	})

	return shop.ID, nil
}

func (s *Service) GetAll(ctx context.Context) ([]View, error) {
	shops, err := s.repo.ListWithOwner(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]View, 0, len(shops))
	for _, shop := range shops {
		out = append(out, View{
			ID:          shop.ID,
			Name:        shop.Name,
			Description: shop.Description,
			Phone:       shop.Phone,
			Address:     shop.Address,
			OwnerName:   shop.Owner.Name,
			OwnerPhone:  shop.Owner.Phone,
		})
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*View, error) {
	shop, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.InvalidParam("Barbearia com id:%s não encontrada.", id)
		}
		return nil, err
	}

	return &View{
		ID:          shop.ID,
		Name:        shop.Name,
		Description: shop.Description,
		Phone:       shop.Phone,
		Address:     shop.Address,
	}, nil
}

type UpdateInput struct {
	Name        string
	Description string
	Phone       string
	Address     string
}

// Update é restrito ao dono. O ownerId é imutável.
func (s *Service) Update(ctx context.Context, actor guard.Identity, id string, in UpdateInput) error {
	shop, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.InvalidParam("Barbearia com id:%s não encontrada.", id)
		}
		return err
	}

	if err := guard.RequireSelf(actor, shop.OwnerID, "editar essa barbearia"); err != nil {
		return err
	}

	if in.Name != "" {
		shop.Name = in.Name
	}
	if in.Description != "" {
		shop.Description = in.Description
	}
	if in.Phone != "" {
		shop.Phone = in.Phone
	}
	if in.Address != "" {
		shop.Address = in.Address
	}

	return s.repo.Update(ctx, shop)
}

func (s *Service) Delete(ctx context.Context, actor guard.Identity, id string) error {
	shop, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.InvalidParam("Barbearia com id:%s não encontrada.", id)
		}
		return err
	}

	if err := guard.RequireSelfOrRole(actor, shop.OwnerID, guard.BarbershopDeleteRoles, "deletar essa barbearia"); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{
		BarbershopID: id,
		UserID:       &actor.UserID,
		Action:       "barbershop_deleted",
		Entity:       "barbershop",
		EntityID:     &id,
	})

	return nil
}
