package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucOpeningHours "github.com/BruksfildServices01/barber-booking/internal/usecase/openinghours"
)

type OpeningHoursHandler struct {
	hours *ucOpeningHours.Service
}

func NewOpeningHoursHandler(hours *ucOpeningHours.Service) *OpeningHoursHandler {
	return &OpeningHoursHandler{hours: hours}
}

// --------- Requests ---------

type CreateOpeningHoursRequest struct {
	Day          *int   `json:"day" binding:"required"`
	OpeningTime  string `json:"opening_time" binding:"required"`
	ClosingTime  string `json:"closing_time" binding:"required"`
	BarbershopID string `json:"barbershop_id" binding:"required"`
}

type UpdateOpeningHoursRequest struct {
	OpeningTime string `json:"opening_time" binding:"required"`
	ClosingTime string `json:"closing_time" binding:"required"`
}

// --------- Handlers ---------

func (h *OpeningHoursHandler) Create(c *gin.Context) {
	actor := middleware.IdentityFrom(c)

	var req CreateOpeningHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	id, err := h.hours.Create(c.Request.Context(), actor, ucOpeningHours.CreateInput{
		Day:          *req.Day,
		OpeningTime:  req.OpeningTime,
		ClosingTime:  req.ClosingTime,
		BarbershopID: req.BarbershopID,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.Created(c, gin.H{"id": id})
}

func (h *OpeningHoursHandler) ListByBarbershop(c *gin.Context) {
	hours, err := h.hours.ListByBarbershop(c.Request.Context(), c.Param("barbershopId"))
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, hours)
}

func (h *OpeningHoursHandler) Update(c *gin.Context) {
	actor := middleware.IdentityFrom(c)

	var req UpdateOpeningHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := h.hours.Update(c.Request.Context(), actor, c.Param("id"), ucOpeningHours.UpdateInput{
		OpeningTime: req.OpeningTime,
		ClosingTime: req.ClosingTime,
	}); err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.NoContent(c)
}

func (h *OpeningHoursHandler) Delete(c *gin.Context) {
	actor := middleware.IdentityFrom(c)

	if err := h.hours.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.NoContent(c)
}
