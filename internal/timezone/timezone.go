package timezone

import (
	"sync"
	"time"
)

const DefaultTimezone = "America/Sao_Paulo"

var (
	mu    sync.RWMutex
	cache = map[string]*time.Location{}
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := load(tz)
	return err == nil
}

// Location resolve tz e cai para o fuso padrão da barbearia; se nem ele
// existir na máquina, usa UTC.
func Location(tz string) *time.Location {
	if loc, err := load(tz); err == nil && tz != "" {
		return loc
	}
	if loc, err := load(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

func load(tz string) (*time.Location, error) {
	mu.RLock()
	loc, ok := cache[tz]
	mu.RUnlock()
	if ok {
		return loc, nil
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, err
	}

	mu.Lock()
	cache[tz] = loc
	mu.Unlock()
	return loc, nil
}
