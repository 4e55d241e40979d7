package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucUser "github.com/BruksfildServices01/barber-booking/internal/usecase/user"
)

type UserHandler struct {
	users *ucUser.Service
}

func NewUserHandler(users *ucUser.Service) *UserHandler {
	return &UserHandler{users: users}
}

type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email" binding:"omitempty,email"`
	Phone string `json:"phone"`
}

func (h *UserHandler) List(c *gin.Context) {
	actor := middleware.IdentityFrom(c)

	profiles, err := h.users.List(c.Request.Context(), actor)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, profiles)
}

func (h *UserHandler) Get(c *gin.Context) {
	profile, err := h.users.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, profile)
}

func (h *UserHandler) Update(c *gin.Context) {
	actor := middleware.IdentityFrom(c)

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if err := h.users.Update(c.Request.Context(), actor, c.Param("id"), ucUser.UpdateInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}); err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.NoContent(c)
}

func (h *UserHandler) Delete(c *gin.Context) {
	actor := middleware.IdentityFrom(c)

	if err := h.users.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.NoContent(c)
}
