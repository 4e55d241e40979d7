package appointment

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/barber-booking/internal/apperr"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/guard"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/store"
)

type GetAppointment struct {
	repo domain.Repository
}

func NewGetAppointment(repo domain.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

// Execute devolve um agendamento. Visualização é pessoal: só o próprio
// cliente enxerga.
func (uc *GetAppointment) Execute(
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

	if err := guard.RequireSelf(actor, ap.CustomerID, "visualizar este agendamento"); err != nil {
		return nil, err
	}

	return ap, nil
}

type ListCustomerAppointments struct {
	repo domain.Repository
}

func NewListCustomerAppointments(repo domain.Repository) *ListCustomerAppointments {
	return &ListCustomerAppointments{repo: repo}
}

// Execute lista os agendamentos de um cliente (cancelados inclusive).
// Restrito ao próprio cliente ou a um ADMIN.
func (uc *ListCustomerAppointments) Execute(
	ctx context.Context,
	actor guard.Identity,
	customerID string,
) ([]models.Appointment, error) {

	if err := guard.RequireSelfOrRole(actor, customerID, guard.AppointmentListRoles, "visualizar os agendamentos de outro usuário"); err != nil {
		return nil, err
	}

	return uc.repo.ListByCustomer(ctx, customerID)
}
