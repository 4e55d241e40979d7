package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/apperr"
	"github.com/BruksfildServices01/barber-booking/internal/guard"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func TestGetIsSelfOnly(t *testing.T) {
	repo := &fakeRepo{
		getByIDFn: func(ctx context.Context, id string) (*models.Appointment, error) {
			return &models.Appointment{ID: id, CustomerID: "c1"}, nil
		},
	}
	uc := NewGetAppointment(repo)

	ap, err := uc.Execute(context.Background(), client, "ap1")
	require.NoError(t, err)
	assert.Equal(t, "ap1", ap.ID)

	other := guard.Identity{UserID: "c2", Role: guard.RoleClient}
	_, err = uc.Execute(context.Background(), other, "ap1")
	assert.True(t, apperr.Is(err, apperr.KindPermission))
}

func TestListByCustomer(t *testing.T) {
	repo := &fakeRepo{
		listByCustomerFn: func(ctx context.Context, customerID string) ([]models.Appointment, error) {
			return []models.Appointment{
				{ID: "ap1", CustomerID: customerID},
				{ID: "ap2", CustomerID: customerID, Canceled: true},
			}, nil
		},
	}
	uc := NewListCustomerAppointments(repo)

	// o próprio cliente enxerga tudo, cancelados inclusive
	aps, err := uc.Execute(context.Background(), client, "c1")
	require.NoError(t, err)
	assert.Len(t, aps, 2)

	// ADMIN enxerga de qualquer cliente
	admin := guard.Identity{UserID: "a1", Role: guard.RoleAdmin}
	_, err = uc.Execute(context.Background(), admin, "c1")
	require.NoError(t, err)

	// outro cliente não
	other := guard.Identity{UserID: "c2", Role: guard.RoleClient}
	_, err = uc.Execute(context.Background(), other, "c1")
	assert.True(t, apperr.Is(err, apperr.KindPermission))
}
