package appointment

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

func TestCancel(t *testing.T) {
	var saved *models.Appointment
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id string) (*models.Appointment, error) {
			return &models.Appointment{ID: id, CustomerID: "c1", BarbershopID: "shop1"}, nil
		},
		updateFn: func(ctx context.Context, ap *models.Appointment) error {
			saved = ap
			return nil
		},
	}
	uc := NewCancelAppointment(repo, nil, nil)

	ap, err := uc.Execute(context.Background(), client, "ap1")
	require.NoError(t, err)
	assert.True(t, ap.Canceled)
	assert.True(t, saved.Canceled)
}

func TestCancelIsIdempotent(t *testing.T) {
	updates := 0
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id string) (*models.Appointment, error) {
			return &models.Appointment{ID: id, CustomerID: "c1", Canceled: true}, nil
		},
		updateFn: func(ctx context.Context, ap *models.Appointment) error {
			updates++
			return nil
		},
	}
	uc := NewCancelAppointment(repo, nil, nil)

	ap, err := uc.Execute(context.Background(), client, "ap1")
	require.NoError(t, err)
	assert.True(t, ap.Canceled)
	assert.Zero(t, updates, "cancelar de novo não deve tocar no banco")
}

func TestCancelInvalidatesAvailabilityCache(t *testing.T) {
	c := newMemCache()
	c.data["availability:shop1:svc1:2025-10-20"] = `[]`

	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id string) (*models.Appointment, error) {
			return &models.Appointment{
				ID:           id,
				CustomerID:   "c1",
				BarbershopID: "shop1",
				Date:         "2025-10-20",
			}, nil
		},
		updateFn: func(ctx context.Context, ap *models.Appointment) error {
			return nil
		},
	}
	uc := NewCancelAppointment(repo, nil, c)

	_, err := uc.Execute(context.Background(), client, "ap1")
	require.NoError(t, err)
	assert.NotContains(t, c.data, "availability:shop1:svc1:2025-10-20")

	// cancelamento repetido é no-op e não derruba cache de novo
	purges := len(c.purged)
	repo.getByIDFn = func(ctx context.Context, id string) (*models.Appointment, error) {
		return &models.Appointment{ID: id, CustomerID: "c1", Canceled: true}, nil
	}
	_, err = uc.Execute(context.Background(), client, "ap1")
	require.NoError(t, err)
	assert.Len(t, c.purged, purges)
}

func TestCancelIsSelfOnly(t *testing.T) {
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id string) (*models.Appointment, error) {
			return &models.Appointment{ID: id, CustomerID: "c1"}, nil
		},
	}
	uc := NewCancelAppointment(repo, nil, nil)

	// nem ADMIN cancela agendamento alheio
	admin := guard.Identity{UserID: "a1", Role: guard.RoleAdmin}
	_, err := uc.Execute(context.Background(), admin, "ap1")
	assert.True(t, apperr.Is(err, apperr.KindPermission))
	assert.EqualError(t, err, "Você não tem permissão para cancelar este agendamento.")
}

func TestCancelMissing(t *testing.T) {
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id string) (*models.Appointment, error) {
			return nil, store.ErrNotFound
		},
	}
	uc := NewCancelAppointment(repo, nil, nil)

	_, err := uc.Execute(context.Background(), client, "ghost")
	assert.True(t, apperr.Is(err, apperr.KindInvalidParam))
}
