package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/apperr"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// From converte um erro de domínio na resposta HTTP correspondente.
// Erros não classificados viram 500 opaco; o detalhe fica no log.
func From(c *gin.Context, err error) {
	kind := apperr.KindOf(err)

	switch kind {
	case apperr.KindInvalidParam:
		Write(c, http.StatusBadRequest, string(kind), err.Error())
	case apperr.KindNotAuthorized:
		Write(c, http.StatusUnauthorized, string(kind), err.Error())
	case apperr.KindPermission, apperr.KindForbidden:
		Write(c, http.StatusForbidden, string(kind), err.Error())
	case apperr.KindConflict:
		Write(c, http.StatusConflict, string(kind), err.Error())
	default:
		Internal(c, "internal_error", "Erro interno.")
	}
}
