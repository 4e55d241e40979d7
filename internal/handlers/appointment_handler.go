package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

type AppointmentHandler struct {
	create       *ucAppointment.CreateAppointment
	cancel       *ucAppointment.CancelAppointment
	get          *ucAppointment.GetAppointment
	list         *ucAppointment.ListCustomerAppointments
	availability *ucAppointment.GetAvailability
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	cancel *ucAppointment.CancelAppointment,
	get *ucAppointment.GetAppointment,
	list *ucAppointment.ListCustomerAppointments,
	availability *ucAppointment.GetAvailability,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:       create,
		cancel:       cancel,
		get:          get,
		list:         list,
		availability: availability,
	}
}

// --------- Requests ---------

// CreateAppointmentRequest não aceita end_time: o fim é derivado da
// duração do serviço.
type CreateAppointmentRequest struct {
	Date         string `json:"date" binding:"required"`
	StartTime    string `json:"start_time" binding:"required"`
	CustomerID   string `json:"customer_id" binding:"required"`
	BarbershopID string `json:"barbershop_id" binding:"required"`
	ServiceID    string `json:"service_id" binding:"required"`
}

// --------- Handlers ---------

func (h *AppointmentHandler) Create(c *gin.Context) {
	actor := middleware.IdentityFrom(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), actor, ucAppointment.CreateInput{
		Date:         req.Date,
		StartTime:    req.StartTime,
		CustomerID:   req.CustomerID,
		BarbershopID: req.BarbershopID,
		ServiceID:    req.ServiceID,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) GetByID(c *gin.Context) {
	actor := middleware.IdentityFrom(c)

	ap, err := h.get.Execute(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) ListByCustomer(c *gin.Context) {
	actor := middleware.IdentityFrom(c)

	aps, err := h.list.Execute(c.Request.Context(), actor, c.Param("customerId"))
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	actor := middleware.IdentityFrom(c)

	ap, err := h.cancel.Execute(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// Availability é pública: qualquer visitante pode consultar os horários
// livres antes de criar conta.
func (h *AppointmentHandler) Availability(c *gin.Context) {
	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		BarbershopID: c.Param("barbershopId"),
		ServiceID:    c.Query("service_id"),
		Date:         c.Query("date"),
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, slots)
}
