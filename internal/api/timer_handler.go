package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/studious/internal/api/shared"
	"github.com/phrazzld/studious/internal/platform/logger"
	"github.com/phrazzld/studious/internal/timer"
)

// Countdown is the study timer the timer endpoints drive.
type Countdown interface {
	SetDuration(hours, minutes, seconds int) error
	Start()
	Pause()
	Toggle()
	Reset()
	State() timer.State
}

// TimerHandler exposes the countdown timer.
type TimerHandler struct {
	countdown Countdown
	logger    *slog.Logger
}

// NewTimerHandler creates a new TimerHandler.
func NewTimerHandler(countdown Countdown, logger *slog.Logger) *TimerHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TimerHandler{
		countdown: countdown,
		logger:    logger.With(slog.String("component", "timer_handler")),
	}
}

// Get handles GET /api/timer.
func (h *TimerHandler) Get(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.countdown.State())
}

// SetDuration handles PUT /api/timer.
func (h *TimerHandler) SetDuration(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req TimerDurationRequest
	if !decodeAndValidate(w, r, log, &req) {
		return
	}

	if err := h.countdown.SetDuration(req.Hours, req.Minutes, req.Seconds); err != nil {
		HandleAPIError(w, r, err, "failed to set timer duration")
		return
	}

	log.Debug("timer duration set",
		slog.Int("hours", req.Hours),
		slog.Int("minutes", req.Minutes),
		slog.Int("seconds", req.Seconds))
	shared.RespondWithJSON(w, r, http.StatusOK, h.countdown.State())
}

// Start handles POST /api/timer/start.
func (h *TimerHandler) Start(w http.ResponseWriter, r *http.Request) {
	h.countdown.Start()
	shared.RespondWithJSON(w, r, http.StatusOK, h.countdown.State())
}

// Pause handles POST /api/timer/pause.
func (h *TimerHandler) Pause(w http.ResponseWriter, r *http.Request) {
	h.countdown.Pause()
	shared.RespondWithJSON(w, r, http.StatusOK, h.countdown.State())
}

// Toggle handles POST /api/timer/toggle.
func (h *TimerHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	h.countdown.Toggle()
	shared.RespondWithJSON(w, r, http.StatusOK, h.countdown.State())
}

// Reset handles POST /api/timer/reset.
func (h *TimerHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.countdown.Reset()
	shared.RespondWithJSON(w, r, http.StatusOK, h.countdown.State())
}
