package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/logger"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// CachedScheduleStore faz read-through no Redis sobre outro ScheduleStore.
//
// A agenda recorrente só muda no seed, então as entradas apenas expiram
// por TTL. Falhas do Redis caem para a store de origem e só são logadas.
type CachedScheduleStore struct {
	next domain.ScheduleStore
	rdb  *redis.Client
	ttl  time.Duration
	log  *zap.Logger
}

func NewCachedScheduleStore(
	next domain.ScheduleStore,
	rdb *redis.Client,
	ttl time.Duration,
	log *zap.Logger,
) *CachedScheduleStore {
	return &CachedScheduleStore{
		next: next,
		rdb:  rdb,
		ttl:  ttl,
		log:  logger.OrNop(log),
	}
}

func weekdaysKey(barberID uint) string {
	return fmt.Sprintf("schedule:weekdays:%d", barberID)
}

func slotsKey(barberID uint, weekday int) string {
	return fmt.Sprintf("schedule:slots:%d:%d", barberID, weekday)
}

func (s *CachedScheduleStore) RecurringSlotsFor(
	ctx context.Context,
	barberID uint,
	weekday int,
) ([]models.BarberSchedule, error) {

	key := slotsKey(barberID, weekday)

	var cached []models.BarberSchedule
	if s.load(ctx, key, &cached) {
		return cached, nil
	}

	slots, err := s.next.RecurringSlotsFor(ctx, barberID, weekday)
	if err != nil {
		return nil, err
	}

	s.store(ctx, key, slots)
	return slots, nil
}

func (s *CachedScheduleStore) WeekdaysWithAvailability(
	ctx context.Context,
	barberID uint,
) ([]int, error) {

	key := weekdaysKey(barberID)

	var cached []int
	if s.load(ctx, key, &cached) {
		return cached, nil
	}

	days, err := s.next.WeekdaysWithAvailability(ctx, barberID)
	if err != nil {
		return nil, err
	}

	s.store(ctx, key, days)
	return days, nil
}

func (s *CachedScheduleStore) GetRecurringSlot(
	ctx context.Context,
	id uint,
) (*models.BarberSchedule, error) {
	return s.next.GetRecurringSlot(ctx, id)
}

func (s *CachedScheduleStore) load(ctx context.Context, key string, dst any) bool {
	raw, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.log.Warn("schedule cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		s.log.Warn("schedule cache entry corrupted", zap.String("key", key), zap.Error(err))
		return false
	}

	return true
}

func (s *CachedScheduleStore) store(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}

	if err := s.rdb.Set(ctx, key, raw, s.ttl).Err(); err != nil {
		s.log.Warn("schedule cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// Compile-time check
var _ domain.ScheduleStore = (*CachedScheduleStore)(nil)
