package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	ucAuditLog "github.com/BruksfildServices01/barber-booking/internal/usecase/auditlog"
)

type AuditLogHandler struct {
	logs *ucAuditLog.Service
}

func NewAuditLogHandler(logs *ucAuditLog.Service) *AuditLogHandler {
	return &AuditLogHandler{logs: logs}
}

func (h *AuditLogHandler) ListByBarbershop(c *gin.Context) {
	actor := middleware.IdentityFrom(c)

	limit, _ := strconv.Atoi(c.Query("limit"))

	logs, err := h.logs.ListByBarbershop(c.Request.Context(), actor, c.Param("barbershopId"), limit)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, logs)
}
