package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/studious/internal/timer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTimerRouter(t *testing.T, d time.Duration) http.Handler {
	t.Helper()

	h := NewTimerHandler(timer.NewCountdown(d, nil, nil), nil)
	r := chi.NewRouter()
	r.Get("/api/timer", h.Get)
	r.Put("/api/timer", h.SetDuration)
	r.Post("/api/timer/start", h.Start)
	r.Post("/api/timer/pause", h.Pause)
	r.Post("/api/timer/toggle", h.Toggle)
	r.Post("/api/timer/reset", h.Reset)
	return r
}

func TestTimerHandler_Lifecycle(t *testing.T) {
	t.Parallel()

	router := newTimerRouter(t, 5*time.Minute)

	w := doJSON(t, router, http.MethodGet, "/api/timer", nil)
	require.Equal(t, http.StatusOK, w.Code)
	state := decodeBody[timer.State](t, w)
	assert.Equal(t, "00:05:00", state.Display)
	assert.False(t, state.Running)

	w = doJSON(t, router, http.MethodPost, "/api/timer/start", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decodeBody[timer.State](t, w).Running)

	w = doJSON(t, router, http.MethodPost, "/api/timer/toggle", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, decodeBody[timer.State](t, w).Running)

	w = doJSON(t, router, http.MethodPost, "/api/timer/toggle", nil)
	assert.True(t, decodeBody[timer.State](t, w).Running)

	w = doJSON(t, router, http.MethodPost, "/api/timer/pause", nil)
	assert.False(t, decodeBody[timer.State](t, w).Running)

	w = doJSON(t, router, http.MethodPut, "/api/timer", TimerDurationRequest{Hours: 1, Minutes: 2, Seconds: 3})
	require.Equal(t, http.StatusOK, w.Code)
	state = decodeBody[timer.State](t, w)
	assert.Equal(t, 3723, state.RemainingSeconds)
	assert.Equal(t, "01:02:03", state.Display)

	w = doJSON(t, router, http.MethodPost, "/api/timer/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "01:02:03", decodeBody[timer.State](t, w).Display)
}

func TestTimerHandler_SetDurationRejectsOutOfRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body interface{}
	}{
		{name: "minutes too large", body: TimerDurationRequest{Minutes: 60}},
		{name: "negative seconds", body: TimerDurationRequest{Seconds: -1}},
		{name: "hours too large", body: TimerDurationRequest{Hours: 100}},
		{name: "wrong type", body: `{"hours":"one"}`},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			router := newTimerRouter(t, time.Minute)
			w := doJSON(t, router, http.MethodPut, "/api/timer", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)

			w = doJSON(t, router, http.MethodGet, "/api/timer", nil)
			assert.Equal(t, 60, decodeBody[timer.State](t, w).RemainingSeconds)
		})
	}
}
