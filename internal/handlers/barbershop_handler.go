package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucBarbershop "github.com/BruksfildServices01/barber-booking/internal/usecase/barbershop"
)

type BarbershopHandler struct {
	shops *ucBarbershop.Service
}

func NewBarbershopHandler(shops *ucBarbershop.Service) *BarbershopHandler {
	return &BarbershopHandler{shops: shops}
}

// --------- Requests ---------

type CreateBarbershopRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Phone       string `json:"phone"`
	Address     string `json:"address" binding:"required"`
	OwnerID     string `json:"owner_id" binding:"required"`
}

type UpdateBarbershopRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
}

// --------- Handlers ---------

func (h *BarbershopHandler) Create(c *gin.Context) {
	actor := middleware.IdentityFrom(c)

	var req CreateBarbershopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	id, err := h.shops.Create(c.Request.Context(), actor, ucBarbershop.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		Phone:       req.Phone,
		Address:     req.Address,
		OwnerID:     req.OwnerID,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.Created(c, gin.H{"id": id})
}

func (h *BarbershopHandler) GetAll(c *gin.Context) {
	shops, err := h.shops.GetAll(c.Request.Context())
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, shops)
}

func (h *BarbershopHandler) GetByID(c *gin.Context) {
	shop, err := h.shops.GetByID(c.Request.Context(), c.Param("barbershopId"))
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, shop)
}

func (h *BarbershopHandler) Update(c *gin.Context) {
	actor := middleware.IdentityFrom(c)

	var req UpdateBarbershopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := h.shops.Update(c.Request.Context(), actor, c.Param("barbershopId"), ucBarbershop.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
		Phone:       req.Phone,
		Address:     req.Address,
	}); err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.NoContent(c)
}

func (h *BarbershopHandler) Delete(c *gin.Context) {
	actor := middleware.IdentityFrom(c)

	if err := h.shops.Delete(c.Request.Context(), actor, c.Param("barbershopId")); err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.NoContent(c)
}
