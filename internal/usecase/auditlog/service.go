package auditlog

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-booking/internal/apperr"
	"github.com/BruksfildServices01/barber-booking/internal/guard"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/store"
)

const defaultLimit = 100

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListByBarbershop devolve a trilha de auditoria de uma barbearia, do mais
// recente para o mais antigo. Restrito ao dono da barbearia ou a um ADMIN.
func (s *Service) ListByBarbershop(ctx context.Context, actor guard.Identity, barbershopID string, limit int) ([]models.AuditLog, error) {
	shop, err := s.repo.GetBarbershop(ctx, barbershopID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.InvalidParam("Barbearia com id:%s não encontrada.", barbershopID)
		}
		return nil, err
	}

	if err := guard.RequireSelfOrRole(actor, shop.OwnerID, guard.AuditListRoles, "visualizar os registros desta barbearia"); err != nil {
		return nil, err
	}

	if limit <= 0 || limit > defaultLimit {
		limit = defaultLimit
	}

	return s.repo.ListByBarbershop(ctx, barbershopID, limit)
}
