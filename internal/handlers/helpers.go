package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
)

// paramID lê um id numérico da rota; responde 400 e devolve false se inválido.
func paramID(c *gin.Context, name, code string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, code, "Identificador inválido.")
		return 0, false
	}
	return uint(id), true
}

func clientID(c *gin.Context) uint {
	return c.MustGet(middleware.ContextClientID).(uint)
}

func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	httperr.FromError(c, err)
}
