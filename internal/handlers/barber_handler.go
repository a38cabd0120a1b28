package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// BarberHandler atende o fluxo público de escolha: barbeiro → serviço →
// data → horário.
type BarberHandler struct {
	catalog      domain.CatalogStore
	bookableDays *appointment.ListBookableDays
	availability *appointment.GetAvailability
}

func NewBarberHandler(
	catalog domain.CatalogStore,
	bookableDays *appointment.ListBookableDays,
	availability *appointment.GetAvailability,
) *BarberHandler {
	return &BarberHandler{
		catalog:      catalog,
		bookableDays: bookableDays,
		availability: availability,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type barberServiceResponse struct {
	ServiceID   uint    `json:"service_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	DurationMin int     `json:"duration_min"`
}

////////////////////////////////////////////////////////
// BARBERS
////////////////////////////////////////////////////////

func (h *BarberHandler) List(c *gin.Context) {
	barbers, err := h.catalog.ListBarbers(c.Request.Context())
	if err != nil {
		fail(c, httperr.DataAccess("list_barbers", err))
		return
	}

	httpresp.List(c, barbers)
}

func (h *BarberHandler) Services(c *gin.Context) {
	barberID, ok := paramID(c, "id", "invalid_barber_id")
	if !ok {
		return
	}

	ctx := c.Request.Context()

	if _, err := h.catalog.GetBarber(ctx, barberID); err != nil {
		fail(c, httperr.DataAccess("get_barber", err))
		return
	}

	offers, err := h.catalog.ListServicesForBarber(ctx, barberID)
	if err != nil {
		fail(c, httperr.DataAccess("list_services", err))
		return
	}

	out := make([]barberServiceResponse, 0, len(offers))
	for _, o := range offers {
		name := "Serviço não encontrado"
		if o.Service != nil {
			name = o.Service.Name
		}
		out = append(out, barberServiceResponse{
			ServiceID:   o.ServiceID,
			Name:        name,
			Price:       o.Price,
			DurationMin: o.DurationMin,
		})
	}

	httpresp.List(c, out)
}

////////////////////////////////////////////////////////
// DATES
////////////////////////////////////////////////////////

func (h *BarberHandler) Weekdays(c *gin.Context) {
	barberID, ok := paramID(c, "id", "invalid_barber_id")
	if !ok {
		return
	}

	days, err := h.bookableDays.Weekdays(c.Request.Context(), barberID)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.List(c, days)
}

func (h *BarberHandler) Dates(c *gin.Context) {
	barberID, ok := paramID(c, "id", "invalid_barber_id")
	if !ok {
		return
	}

	days, err := h.bookableDays.Execute(c.Request.Context(), barberID)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.List(c, days)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *BarberHandler) Availability(c *gin.Context) {
	barberID, ok := paramID(c, "id", "invalid_barber_id")
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_params", "Informe a data.")
		return
	}

	ctx := c.Request.Context()

	if _, err := h.catalog.GetBarber(ctx, barberID); err != nil {
		fail(c, httperr.DataAccess("get_barber", err))
		return
	}

	res, err := h.availability.Execute(ctx, domain.AvailabilityInput{
		BarberID: barberID,
		Date:     date,
	})
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.OK(c, res)
}
