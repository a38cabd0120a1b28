package appointment

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

var errStore = errors.New("store unavailable")

// --------------------------------------------------
// Schedule
// --------------------------------------------------

type memSchedules struct {
	slots []models.BarberSchedule
	err   error
}

func (s *memSchedules) add(rows ...models.BarberSchedule) {
	for _, r := range rows {
		if r.ID == 0 {
			r.ID = uint(len(s.slots) + 1)
		}
		s.slots = append(s.slots, r)
	}
}

func (s *memSchedules) RecurringSlotsFor(_ context.Context, barberID uint, weekday int) ([]models.BarberSchedule, error) {
	if s.err != nil {
		return nil, httperr.DataAccess("recurring_slots_for", s.err)
	}

	var out []models.BarberSchedule
	for _, r := range s.slots {
		if r.BarberID == barberID && r.DayOfWeek == weekday {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].TimeSlot < out[j].TimeSlot })
	return out, nil
}

func (s *memSchedules) WeekdaysWithAvailability(_ context.Context, barberID uint) ([]int, error) {
	if s.err != nil {
		return nil, httperr.DataAccess("weekdays_with_availability", s.err)
	}

	seen := map[int]bool{}
	var out []int
	for _, r := range s.slots {
		if r.BarberID == barberID && !seen[r.DayOfWeek] {
			seen[r.DayOfWeek] = true
			out = append(out, r.DayOfWeek)
		}
	}
	sort.Ints(out)
	return out, nil
}

func (s *memSchedules) GetRecurringSlot(_ context.Context, id uint) (*models.BarberSchedule, error) {
	for _, r := range s.slots {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, httperr.NotFound("schedule", id)
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

type memAppointments struct {
	mu   sync.Mutex
	rows []models.Appointment

	// countErrAt faz a checagem falhar para um horário específico.
	countErrAt string
	// staleCount simula a corrida: a checagem rápida não vê a reserva.
	staleCount bool
	createErr  error
	history    []domain.HistoryRow
}

func (s *memAppointments) CountAppointmentsAt(_ context.Context, barberID uint, date, timeSlot string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.countErrAt != "" && s.countErrAt == timeSlot {
		return 0, httperr.DataAccess("count_appointments", errStore)
	}
	if s.staleCount {
		return 0, nil
	}

	var n int64
	for _, r := range s.rows {
		if r.BarberID == barberID && r.Date == date && r.TimeSlot == timeSlot {
			n++
		}
	}
	return n, nil
}

func (s *memAppointments) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.createErr != nil {
		return httperr.DataAccess("create_appointment", s.createErr)
	}

	for _, r := range s.rows {
		if r.BarberID == ap.BarberID && r.Date == ap.Date && r.TimeSlot == ap.TimeSlot {
			return httperr.DuplicateBookingError{BarberID: ap.BarberID, Date: ap.Date, TimeSlot: ap.TimeSlot}
		}
	}

	ap.ID = uint(len(s.rows) + 1)
	s.rows = append(s.rows, *ap)
	return nil
}

func (s *memAppointments) ListHistoryForClient(_ context.Context, _ uint) ([]domain.HistoryRow, error) {
	if s.createErr != nil {
		return nil, httperr.DataAccess("list_history", s.createErr)
	}
	return s.history, nil
}

func (s *memAppointments) book(barberID uint, date, timeSlot string) {
	s.rows = append(s.rows, models.Appointment{
		ID:       uint(len(s.rows) + 1),
		BarberID: barberID,
		Date:     date,
		TimeSlot: timeSlot,
	})
}

// --------------------------------------------------
// Catalog / clients
// --------------------------------------------------

type memCatalog struct {
	barbers map[uint]models.Barber
	offers  map[[2]uint]models.BarberService
}

func (s *memCatalog) ListBarbers(_ context.Context) ([]models.Barber, error) {
	var out []models.Barber
	for _, b := range s.barbers {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *memCatalog) GetBarber(_ context.Context, id uint) (*models.Barber, error) {
	b, ok := s.barbers[id]
	if !ok {
		return nil, httperr.NotFound("barber", id)
	}
	return &b, nil
}

func (s *memCatalog) ListServicesForBarber(_ context.Context, barberID uint) ([]models.BarberService, error) {
	var out []models.BarberService
	for k, o := range s.offers {
		if k[0] == barberID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *memCatalog) GetBarberService(_ context.Context, barberID, serviceID uint) (*models.BarberService, error) {
	o, ok := s.offers[[2]uint{barberID, serviceID}]
	if !ok {
		return nil, httperr.NotFound("service", serviceID)
	}
	return &o, nil
}

type memClients struct {
	clients map[uint]models.Client
}

func (s *memClients) GetClientByID(_ context.Context, id uint) (*models.Client, error) {
	c, ok := s.clients[id]
	if !ok {
		return nil, httperr.NotFound("client", id)
	}
	return &c, nil
}

func (s *memClients) GetClientByEmail(_ context.Context, email string) (*models.Client, error) {
	for _, c := range s.clients {
		if c.Email == email {
			return &c, nil
		}
	}
	return nil, httperr.NotFound("client", email)
}

func (s *memClients) CreateClient(_ context.Context, c *models.Client) error {
	c.ID = uint(len(s.clients) + 1)
	s.clients[c.ID] = *c
	return nil
}

// --------------------------------------------------
// Audit
// --------------------------------------------------

type memorySink struct {
	mu     sync.Mutex
	events []audit.Event
}

func (s *memorySink) Log(_ context.Context, ev audit.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return nil
}

func (s *memorySink) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, ev.Action)
	}
	return out
}
