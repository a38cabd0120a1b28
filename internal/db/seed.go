package db

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// ======================================================
// DADOS DE DEMONSTRAÇÃO
// ======================================================

var demoBarbers = []models.Barber{
	{ID: 1, Name: "João Barbeiro"},
	{ID: 2, Name: "Roberto Estilo"},
	{ID: 3, Name: "Felipe Designer"},
}

var demoServices = []models.Service{
	{ID: 1, Name: "Corte Social"},
	{ID: 2, Name: "Corte Degradê"},
	{ID: 3, Name: "Corte Militar"},
	{ID: 4, Name: "Corte Pompadour"},
	{ID: 5, Name: "Corte Undercut"},
	{ID: 6, Name: "Barba Completa com Design"},
	{ID: 7, Name: "Barba Lenhador"},
	{ID: 8, Name: "Barba Express"},
}

var demoOffers = []models.BarberService{
	{BarberID: 1, ServiceID: 1, Price: 35, DurationMin: 20},
	{BarberID: 1, ServiceID: 3, Price: 40, DurationMin: 20},
	{BarberID: 1, ServiceID: 5, Price: 50, DurationMin: 20},
	{BarberID: 1, ServiceID: 8, Price: 25, DurationMin: 20},

	{BarberID: 2, ServiceID: 2, Price: 45, DurationMin: 20},
	{BarberID: 2, ServiceID: 4, Price: 55, DurationMin: 20},
	{BarberID: 2, ServiceID: 6, Price: 60, DurationMin: 20},
	{BarberID: 2, ServiceID: 7, Price: 35, DurationMin: 20},
	{BarberID: 2, ServiceID: 8, Price: 30, DurationMin: 20},

	{BarberID: 3, ServiceID: 3, Price: 40, DurationMin: 20},
	{BarberID: 3, ServiceID: 4, Price: 60, DurationMin: 20},
	{BarberID: 3, ServiceID: 5, Price: 55, DurationMin: 20},
	{BarberID: 3, ServiceID: 7, Price: 45, DurationMin: 20},
}

var demoWorkingConfigs = []schedule.WorkingConfig{
	{BarberID: 1, WorkingDays: []int{1, 3, 4, 5}, DailyStart: "08:30", DailyEnd: "16:30", Interval: 20},
	{BarberID: 2, WorkingDays: []int{2, 4, 6}, DailyStart: "10:00", DailyEnd: "17:00", Interval: 20},
	{BarberID: 3, WorkingDays: []int{1, 2, 4, 5}, DailyStart: "09:00", DailyEnd: "18:00", Interval: 20},
}

// Seed é idempotente: registros existentes são mantidos e só o que falta
// é inserido.
func Seed(ctx context.Context, db *gorm.DB, log *zap.Logger) error {
	tx := db.WithContext(ctx)

	for _, b := range demoBarbers {
		if err := tx.Where(models.Barber{ID: b.ID}).FirstOrCreate(&b).Error; err != nil {
			return fmt.Errorf("seed barber %d: %w", b.ID, err)
		}
	}

	for _, s := range demoServices {
		if err := tx.Where(models.Service{ID: s.ID}).FirstOrCreate(&s).Error; err != nil {
			return fmt.Errorf("seed service %d: %w", s.ID, err)
		}
	}

	for _, o := range demoOffers {
		if err := tx.
			Where(models.BarberService{BarberID: o.BarberID, ServiceID: o.ServiceID}).
			FirstOrCreate(&o).Error; err != nil {
			return fmt.Errorf("seed offer %d/%d: %w", o.BarberID, o.ServiceID, err)
		}
	}

	// ids explícitos deixam a sequência para trás
	for _, table := range []string{"barbers", "services"} {
		if err := tx.Exec(fmt.Sprintf(
			"SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), (SELECT MAX(id) FROM %[1]s))",
			table,
		)).Error; err != nil {
			return fmt.Errorf("seed sequence %s: %w", table, err)
		}
	}

	repo := infraRepo.NewScheduleGormRepository(db)

	total := 0
	for _, wc := range demoWorkingConfigs {
		rows, err := wc.Expand()
		if err != nil {
			return fmt.Errorf("seed schedule barber %d: %w", wc.BarberID, err)
		}
		if err := repo.InsertRecurringSlots(ctx, rows); err != nil {
			return err
		}
		total += len(rows)
	}

	log.Info("demo data seeded",
		zap.Int("barbers", len(demoBarbers)),
		zap.Int("services", len(demoServices)),
		zap.Int("schedule_slots", total),
	)
	return nil
}
