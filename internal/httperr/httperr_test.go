package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataAccessWrapsOnce(t *testing.T) {
	cause := errors.New("connection refused")

	err := DataAccess("count_appointments", cause)
	require.True(t, IsDataAccess(err))
	assert.ErrorIs(t, err, cause)

	again := DataAccess("resolve", err)
	assert.Same(t, err, again)

	nf := NotFound("barber", uint(7))
	assert.Equal(t, nf, DataAccess("get_barber", nf))

	ir := InvalidRange("interval must be positive, got 0")
	assert.Equal(t, ir, DataAccess("generate_slots", ir))
	assert.False(t, IsDataAccess(DataAccess("generate_slots", fmt.Errorf("seed: %w", ir))))

	assert.NoError(t, DataAccess("noop", nil))
}

func TestTypedErrorsSurviveWrapping(t *testing.T) {
	dup := fmt.Errorf("confirm: %w", DuplicateBookingError{BarberID: 1, Date: "2024-06-10", TimeSlot: "09:20"})
	assert.True(t, IsDuplicateBooking(dup))
	assert.False(t, IsNotFound(dup))

	nf := fmt.Errorf("lookup: %w", NotFound("client", uint(3)))
	assert.True(t, IsNotFound(nf))
	assert.EqualError(t, errors.Unwrap(nf), "client 3 not found")
}

func TestFromError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"business", ErrBusiness("invalid_date"), http.StatusBadRequest, "invalid_date"},
		{"unknown business", ErrBusiness("whatever"), http.StatusBadRequest, "whatever"},
		{"range", InvalidRange("interval must be positive"), http.StatusBadRequest, "invalid_range"},
		{"not found", NotFound("barber", uint(9)), http.StatusNotFound, "barber_not_found"},
		{"duplicate", DuplicateBookingError{BarberID: 1}, http.StatusConflict, "time_conflict"},
		{"data access", DataAccess("x", errors.New("boom")), http.StatusInternalServerError, "data_access_error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			FromError(c, tc.err)

			assert.Equal(t, tc.status, w.Code)
			var body HTTPError
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tc.code, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestBusinessErrorIs(t *testing.T) {
	err := fmt.Errorf("confirm: %w", ErrBusiness("invalid_slot"))

	assert.ErrorIs(t, err, ErrBusiness("invalid_slot"))
	assert.NotErrorIs(t, err, ErrBusiness("invalid_date"))
	assert.True(t, IsBusiness(err, "invalid_slot"))
}
