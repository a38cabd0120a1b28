package repository

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

func newMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func mondayOrigin() *countingScheduleStore {
	return &countingScheduleStore{
		slots: []models.BarberSchedule{
			{ID: 1, BarberID: 1, DayOfWeek: 1, TimeSlot: "09:00"},
			{ID: 2, BarberID: 1, DayOfWeek: 1, TimeSlot: "09:20"},
		},
		days: []int{1, 3},
	}
}

func TestCachedScheduleStoreServesHits(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	next := mondayOrigin()
	store := NewCachedScheduleStore(next, rdb, time.Minute, nil)

	first, err := store.RecurringSlotsFor(t.Context(), 1, 1)
	require.NoError(t, err)
	second, err := store.RecurringSlotsFor(t.Context(), 1, 1)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, "09:20", second[1].TimeSlot)
	assert.Equal(t, 1, next.slotHits)

	days, err := store.WeekdaysWithAvailability(t.Context(), 1)
	require.NoError(t, err)
	days, err = store.WeekdaysWithAvailability(t.Context(), 1)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 3}, days)
	assert.Equal(t, 1, next.dayHits)

	assert.True(t, mr.Exists(slotsKey(1, 1)))
	assert.True(t, mr.Exists(weekdaysKey(1)))
}

func TestCachedScheduleStoreSetsTTL(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	next := mondayOrigin()
	store := NewCachedScheduleStore(next, rdb, 5*time.Minute, nil)

	_, err := store.RecurringSlotsFor(t.Context(), 1, 1)
	require.NoError(t, err)
	_, err = store.WeekdaysWithAvailability(t.Context(), 1)
	require.NoError(t, err)

	assert.Equal(t, 5*time.Minute, mr.TTL(slotsKey(1, 1)))
	assert.Equal(t, 5*time.Minute, mr.TTL(weekdaysKey(1)))

	mr.FastForward(5*time.Minute + time.Second)

	_, err = store.RecurringSlotsFor(t.Context(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, next.slotHits)
}

func TestCachedScheduleStoreMissGoesToOrigin(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	next := mondayOrigin()
	store := NewCachedScheduleStore(next, rdb, time.Minute, nil)

	require.False(t, mr.Exists(slotsKey(1, 1)))

	slots, err := store.RecurringSlotsFor(t.Context(), 1, 1)
	require.NoError(t, err)
	assert.Len(t, slots, 2)
	assert.Equal(t, 1, next.slotHits)

	raw, err := mr.Get(slotsKey(1, 1))
	require.NoError(t, err)

	var cached []models.BarberSchedule
	require.NoError(t, json.Unmarshal([]byte(raw), &cached))
	assert.Equal(t, slots, cached)

	// outra chave continua vazia
	assert.False(t, mr.Exists(slotsKey(1, 2)))
}

func TestCachedScheduleStoreIgnoresCorruptedEntry(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	next := mondayOrigin()
	store := NewCachedScheduleStore(next, rdb, time.Minute, nil)

	require.NoError(t, mr.Set(slotsKey(1, 1), "{not json"))
	require.NoError(t, mr.Set(weekdaysKey(1), `"segunda"`))

	slots, err := store.RecurringSlotsFor(t.Context(), 1, 1)
	require.NoError(t, err)
	assert.Len(t, slots, 2)
	assert.Equal(t, 1, next.slotHits)

	days, err := store.WeekdaysWithAvailability(t.Context(), 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, days)
	assert.Equal(t, 1, next.dayHits)

	// a entrada ruim é regravada e a próxima leitura já é hit
	_, err = store.RecurringSlotsFor(t.Context(), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, next.slotHits)
}

func TestCachedScheduleStoreDoesNotCacheErrors(t *testing.T) {
	mr, rdb := newMiniRedis(t)
	next := &countingScheduleStore{err: httperr.NotFound("barber", uint(9))}
	store := NewCachedScheduleStore(next, rdb, time.Minute, nil)

	_, err := store.RecurringSlotsFor(t.Context(), 9, 1)
	assert.True(t, httperr.IsNotFound(err))

	_, err = store.WeekdaysWithAvailability(t.Context(), 9)
	assert.True(t, httperr.IsNotFound(err))

	assert.False(t, mr.Exists(slotsKey(9, 1)))
	assert.False(t, mr.Exists(weekdaysKey(9)))
}
