package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/apperr"
	"github.com/BruksfildServices01/barber-booking/internal/guard"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/store"
)

// fakeRepo implementa Repository com funções plugáveis por teste.
type fakeRepo struct {
	createFn     func(ctx context.Context, u *models.User) error
	getByIDFn    func(ctx context.Context, id string) (*models.User, error)
	getByEmailFn func(ctx context.Context, email string) (*models.User, error)
	listFn       func(ctx context.Context) ([]models.User, error)
	updateFn     func(ctx context.Context, u *models.User) error
	deleteFn     func(ctx context.Context, id string) error
}

func (f *fakeRepo) Create(ctx context.Context, u *models.User) error {
	return f.createFn(ctx, u)
}

func (f *fakeRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return f.getByEmailFn(ctx, email)
}

func (f *fakeRepo) List(ctx context.Context) ([]models.User, error) {
	return f.listFn(ctx)
}

func (f *fakeRepo) Update(ctx context.Context, u *models.User) error {
	return f.updateFn(ctx, u)
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) {
	return "hashed:" + plain, nil
}

func (fakeHasher) Compare(hash, plain string) error {
	if hash != "hashed:"+plain {
		return assert.AnError
	}
	return nil
}

func notFoundByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, store.ErrNotFound
}

func TestRegister(t *testing.T) {
	var created *models.User
	repo := &fakeRepo{
		getByEmailFn: notFoundByEmail,
		createFn: func(ctx context.Context, u *models.User) error {
			u.ID = "u1"
			created = u
			return nil
		},
	}

	svc := NewService(repo, fakeHasher{}, nil)

	profile, err := svc.Register(context.Background(), RegisterInput{
		Name:     "João",
		Email:    "Joao@Example.com",
		Password: "secret123",
		Phone:    "11999990000",
	})
	require.NoError(t, err)

	// e-mail normalizado, papel padrão CLIENT
	assert.Equal(t, "joao@example.com", created.Email)
	assert.Equal(t, models.RoleClient, created.Role)
	assert.Equal(t, "hashed:secret123", created.Password)

	// a projeção pública nunca carrega a senha
	assert.Equal(t, "u1", profile.ID)
	assert.Equal(t, "joao@example.com", profile.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := &fakeRepo{
		getByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			return &models.User{ID: "u1", Email: email}, nil
		},
	}

	svc := NewService(repo, fakeHasher{}, nil)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Maria",
		Email:    "maria@example.com",
		Password: "secret123",
	})
	assert.True(t, apperr.Is(err, apperr.KindConflict))
	assert.EqualError(t, err, "Já existe um usuário com o e-mail maria@example.com.")
}

func TestRegisterDuplicateEmailOnInsert(t *testing.T) {
	// corrida entre a pré-checagem e o insert: o índice único responde
	repo := &fakeRepo{
		getByEmailFn: notFoundByEmail,
		createFn: func(ctx context.Context, u *models.User) error {
			return store.ErrDuplicate
		},
	}

	svc := NewService(repo, fakeHasher{}, nil)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Maria",
		Email:    "maria@example.com",
		Password: "secret123",
	})
	assert.True(t, apperr.Is(err, apperr.KindConflict))
}

func TestRegisterInvalidRole(t *testing.T) {
	svc := NewService(&fakeRepo{}, fakeHasher{}, nil)

	_, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Maria",
		Email:    "maria@example.com",
		Password: "secret123",
		Role:     "SUPERADMIN",
	})
	assert.True(t, apperr.Is(err, apperr.KindInvalidParam))
}

func TestListRequiresAdmin(t *testing.T) {
	repo := &fakeRepo{
		listFn: func(ctx context.Context) ([]models.User, error) {
			return []models.User{{ID: "u1", Name: "João"}}, nil
		},
	}
	svc := NewService(repo, fakeHasher{}, nil)

	profiles, err := svc.List(context.Background(), guard.Identity{UserID: "a1", Role: guard.RoleAdmin})
	require.NoError(t, err)
	assert.Len(t, profiles, 1)

	_, err = svc.List(context.Background(), guard.Identity{UserID: "c1", Role: guard.RoleClient})
	assert.True(t, apperr.Is(err, apperr.KindForbidden))
}

func TestUpdateIsSelfOnly(t *testing.T) {
	var saved *models.User
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id string) (*models.User, error) {
			return &models.User{ID: id, Name: "João", Email: "joao@example.com"}, nil
		},
		updateFn: func(ctx context.Context, u *models.User) error {
			saved = u
			return nil
		},
	}
	svc := NewService(repo, fakeHasher{}, nil)

	self := guard.Identity{UserID: "u1", Role: guard.RoleClient}
	err := svc.Update(context.Background(), self, "u1", UpdateInput{Name: "João Silva"})
	require.NoError(t, err)
	assert.Equal(t, "João Silva", saved.Name)

	// outro usuário, mesmo ADMIN, não edita
	admin := guard.Identity{UserID: "a1", Role: guard.RoleAdmin}
	err = svc.Update(context.Background(), admin, "u1", UpdateInput{Name: "X"})
	assert.True(t, apperr.Is(err, apperr.KindPermission))
}

func TestDelete(t *testing.T) {
	deleted := ""
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id string) (*models.User, error) {
			return &models.User{ID: id}, nil
		},
		deleteFn: func(ctx context.Context, id string) error {
			deleted = id
			return nil
		},
	}
	svc := NewService(repo, fakeHasher{}, nil)

	// o próprio usuário pode
	err := svc.Delete(context.Background(), guard.Identity{UserID: "u1", Role: guard.RoleClient}, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", deleted)

	// ADMIN pode deletar terceiros
	err = svc.Delete(context.Background(), guard.Identity{UserID: "a1", Role: guard.RoleAdmin}, "u2")
	require.NoError(t, err)

	// outro CLIENT não pode
	err = svc.Delete(context.Background(), guard.Identity{UserID: "c9", Role: guard.RoleClient}, "u1")
	assert.True(t, apperr.Is(err, apperr.KindPermission))
}

func TestDeleteMissingUser(t *testing.T) {
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id string) (*models.User, error) {
			return nil, store.ErrNotFound
		},
	}
	svc := NewService(repo, fakeHasher{}, nil)

	// existência é checada antes da permissão
	err := svc.Delete(context.Background(), guard.Identity{UserID: "c9", Role: guard.RoleClient}, "u1")
	assert.True(t, apperr.Is(err, apperr.KindInvalidParam))
}

func TestLogin(t *testing.T) {
	repo := &fakeRepo{
		getByEmailFn: func(ctx context.Context, email string) (*models.User, error) {
			if email == "joao@example.com" {
				return &models.User{ID: "u1", Email: email, Password: "hashed:secret123"}, nil
			}
			return nil, store.ErrNotFound
		},
	}
	svc := NewService(repo, fakeHasher{}, nil)

	u, err := svc.Login(context.Background(), "Joao@Example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)

	// senha errada e e-mail inexistente respondem a mesma mensagem
	_, err = svc.Login(context.Background(), "joao@example.com", "wrong")
	assert.True(t, apperr.Is(err, apperr.KindNotAuthorized))
	assert.EqualError(t, err, "E-mail e/ou senha incorretos!")

	_, err = svc.Login(context.Background(), "ghost@example.com", "secret123")
	assert.True(t, apperr.Is(err, apperr.KindNotAuthorized))
	assert.EqualError(t, err, "E-mail e/ou senha incorretos!")
}
