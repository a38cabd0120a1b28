package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
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

func NotFoundResponse(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

var businessMessages = map[string]string{
	"invalid_date":         "Data inválida.",
	"invalid_time":         "Horário inválido.",
	"invalid_weekday":      "Dia da semana inválido.",
	"date_in_past":         "Não é possível agendar em uma data passada.",
	"invalid_slot":         "Horário não pertence à agenda do barbeiro.",
	"email_already_exists": "E-mail já cadastrado.",
	"invalid_email_domain": "O domínio do e-mail informado não parece ser válido.",
	"invalid_email":        "E-mail inválido.",
	"invalid_name":         "Informe o nome.",
	"weak_password":        "A senha deve ter pelo menos 6 caracteres.",
	"invalid_request":      "Requisição inválida.",
}

// FromError traduz os erros tipados do domínio para a resposta HTTP.
func FromError(c *gin.Context, err error) {
	var (
		be BusinessError
		ir InvalidRangeError
		nf NotFoundError
		db DuplicateBookingError
	)

	switch {
	case errors.As(err, &be):
		msg, ok := businessMessages[be.Code]
		if !ok {
			msg = "Requisição inválida."
		}
		BadRequest(c, be.Code, msg)
	case errors.As(err, &ir):
		BadRequest(c, "invalid_range", "Configuração de horários inválida.")
	case errors.As(err, &nf):
		NotFoundResponse(c, nf.Entity+"_not_found", "Registro não encontrado.")
	case errors.As(err, &db):
		Conflict(c, "time_conflict", "Horário já reservado.")
	default:
		Internal(c, "data_access_error", "Erro ao acessar os dados.")
	}
}
