package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

func TestWeekdayOf(t *testing.T) {
	cases := map[string]int{
		"2024-06-10": 1,
		"2024-06-16": 0,
		"2024-06-15": 6,
		"2024-02-29": 4,
		"2000-01-01": 6,
	}

	for date, want := range cases {
		got, err := WeekdayOf(date)
		require.NoError(t, err, date)
		assert.Equal(t, want, got, date)
	}
}

func TestWeekdayOfIgnoresLocalZone(t *testing.T) {
	orig := time.Local
	t.Cleanup(func() { time.Local = orig })

	for _, offset := range []int{-12, -3, 0, 5, 14} {
		time.Local = time.FixedZone("test", offset*3600)

		mon, err := WeekdayOf("2024-06-10")
		require.NoError(t, err)
		assert.Equal(t, 1, mon, "offset %d", offset)

		sun, err := WeekdayOf("2024-06-16")
		require.NoError(t, err)
		assert.Equal(t, 0, sun, "offset %d", offset)
	}
}

func TestParseDateRejectsInvalid(t *testing.T) {
	for _, bad := range []string{"", "2024-6-10", "2024/06/10", "2024-02-30", "2023-02-29", "2024-13-01", "abcd-ef-gh", "2024-06-10T00:00", "2024-+6-10", "2024-06-+9", "+024-06-10", "2024-06- 9"} {
		_, err := ParseDate(bad)
		assert.True(t, httperr.IsBusiness(err, "invalid_date"), bad)
	}
}

func TestNextDateFor(t *testing.T) {
	// sábado à noite em São Paulo
	loc := time.FixedZone("BRT", -3*3600)
	saturday := time.Date(2024, 6, 15, 22, 30, 0, 0, loc)

	assert.Equal(t, "2024-06-15", NextDateFor(saturday, 6))
	assert.Equal(t, "2024-06-16", NextDateFor(saturday, 0))
	assert.Equal(t, "2024-06-17", NextDateFor(saturday, 1))
	assert.Equal(t, "2024-06-21", NextDateFor(saturday, 5))

	// virada de mês
	assert.Equal(t, "2024-07-01", NextDateFor(time.Date(2024, 6, 29, 9, 0, 0, 0, loc), 1))
}
