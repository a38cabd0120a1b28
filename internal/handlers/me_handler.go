package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
)

type MeHandler struct {
	clients domain.ClientStore
}

func NewMeHandler(clients domain.ClientStore) *MeHandler {
	return &MeHandler{clients: clients}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	client, err := h.clients.GetClientByID(c.Request.Context(), clientID(c))
	if err != nil {
		fail(c, httperr.DataAccess("get_client", err))
		return
	}

	httpresp.OK(c, gin.H{"client": client})
}
