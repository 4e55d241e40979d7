package user

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/barber-booking/internal/apperr"
	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/guard"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/store"
)

type Service struct {
	repo   Repository
	hasher Hasher
	audit  *audit.Dispatcher
}

func NewService(repo Repository, hasher Hasher, auditor *audit.Dispatcher) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		audit:  auditor,
	}
}

// Profile é a projeção pública de um usuário. A senha nunca sai daqui.
type Profile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}

func toProfile(u *models.User) *Profile {
	return &Profile{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Phone: u.Phone,
		Role:  u.Role,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     string
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (*Profile, error) {
	role := strings.ToUpper(strings.TrimSpace(in.Role))
	if role == "" {
		role = models.RoleClient
	}
	if !guard.Role(role).Valid() {
		return nil, apperr.InvalidParam("Papel de usuário inválido: %s.", in.Role)
	}

	email := strings.ToLower(strings.TrimSpace(in.Email))

	if existing, err := s.repo.GetByEmail(ctx, email); err != nil && !errors.Is(err, store.ErrNotFound) {
		return nil, err
	} else if existing != nil {
		return nil, apperr.Conflict("Já existe um usuário com o e-mail %s.", email)
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:     in.Name,
		Email:    email,
		Password: hashed,
		Phone:    in.Phone,
		Role:     role,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return nil, apperr.Conflict("Já existe um usuário com o e-mail %s.", email)
		}
		return nil, err
	}

	s.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: &u.ID,
	})

	return toProfile(u), nil
}

// List devolve todos os usuários. Restrito a ADMIN.
func (s *Service) List(ctx context.Context, actor guard.Identity) ([]Profile, error) {
	if err := guard.RequireRole(actor, guard.UserListRoles, "Você não possui permissão para listar usuários."); err != nil {
		return nil, err
	}

	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]Profile, 0, len(users))
	for i := range users {
		out = append(out, *toProfile(&users[i]))
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Profile, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.InvalidParam("Usuário com id:%s não encontrado.", id)
		}
		return nil, err
	}
	return toProfile(u), nil
}

type UpdateInput struct {
	Name  string
	Email string
	Phone string
}

// Update altera os dados básicos do próprio usuário. Senha e papel não
// passam por aqui.
func (s *Service) Update(ctx context.Context, actor guard.Identity, id string, in UpdateInput) error {
	if err := guard.RequireSelf(actor, id, "editar outro usuário"); err != nil {
		return err
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.InvalidParam("Usuário com id:%s não encontrado.", id)
		}
		return err
	}

	if in.Name != "" {
		u.Name = in.Name
	}
	if in.Email != "" {
		u.Email = strings.ToLower(strings.TrimSpace(in.Email))
	}
	if in.Phone != "" {
		u.Phone = in.Phone
	}

	if err := s.repo.Update(ctx, u); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return apperr.Conflict("Já existe um usuário com o e-mail %s.", u.Email)
		}
		return err
	}

	return nil
}

func (s *Service) Delete(ctx context.Context, actor guard.Identity, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.InvalidParam("Usuário com id:%s não encontrado.", id)
		}
		return err
	}

	if err := guard.RequireSelfOrRole(actor, id, guard.UserDeleteRoles, "deletar esse usuário"); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.audit.Dispatch(audit.Event{
		UserID:   &actor.UserID,
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &id,
	})

	return nil
}

// Login confere as credenciais e devolve o usuário autenticado. A emissão
// do token fica no handler.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperr.NotAuthorized("E-mail e/ou senha incorretos!")
		}
		return nil, err
	}

	if err := s.hasher.Compare(u.Password, password); err != nil {
		return nil, apperr.NotAuthorized("E-mail e/ou senha incorretos!")
	}

	return u, nil
}
