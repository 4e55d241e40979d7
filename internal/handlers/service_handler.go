package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucService "github.com/BruksfildServices01/barber-booking/internal/usecase/service"
)

type ServiceHandler struct {
	services *ucService.Service
}

func NewServiceHandler(services *ucService.Service) *ServiceHandler {
	return &ServiceHandler{services: services}
}

// --------- Requests ---------

type CreateServiceRequest struct {
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" binding:"required"`
	Duration     float64 `json:"duration" binding:"required"`
	BarbershopID string  `json:"barbershop_id" binding:"required"`
}

type UpdateServiceRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Duration    *float64 `json:"duration"`
}

// --------- Handlers ---------

func (h *ServiceHandler) Create(c *gin.Context) {
	actor := middleware.IdentityFrom(c)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	id, err := h.services.Create(c.Request.Context(), actor, ucService.CreateInput{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Duration:     req.Duration,
		BarbershopID: req.BarbershopID,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.Created(c, gin.H{"id": id})
}

func (h *ServiceHandler) ListByBarbershop(c *gin.Context) {
	services, err := h.services.ListByBarbershop(c.Request.Context(), c.Param("barbershopId"))
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) GetByID(c *gin.Context) {
	svc, err := h.services.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, svc)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	actor := middleware.IdentityFrom(c)

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := h.services.Update(c.Request.Context(), actor, c.Param("id"), ucService.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
	}); err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.NoContent(c)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	actor := middleware.IdentityFrom(c)

	if err := h.services.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.NoContent(c)
}
