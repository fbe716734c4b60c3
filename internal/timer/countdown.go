package timer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/phrazzld/studious/internal/events"
)

// EventFinished is the type of the event emitted when a countdown reaches
// zero.
const EventFinished = "timer.finished"

// MaxHours bounds the configurable hours so the display stays HH:MM:SS.
const MaxHours = 99

// ErrInvalidDuration is returned by SetDuration for out-of-range fields.
var ErrInvalidDuration = errors.New("invalid timer duration")

// FinishedPayload is the payload of an EventFinished event.
type FinishedPayload struct {
	DurationSeconds int `json:"duration_seconds"`
}

// State is a snapshot of a Countdown.
type State struct {
	Hours            int    `json:"hours"`
	Minutes          int    `json:"minutes"`
	Seconds          int    `json:"seconds"`
	RemainingSeconds int    `json:"remaining_seconds"`
	Running          bool   `json:"running"`
	Display          string `json:"display"`
}

// Countdown is a pausable one-second countdown. It is safe for concurrent
// use.
type Countdown struct {
	mu sync.Mutex

	hours, minutes, seconds int
	remaining               int
	running                 bool

	emitter events.Emitter
	logger  *slog.Logger
}

// NewCountdown creates a stopped countdown configured to d, truncated to
// whole seconds. emitter may be nil, in which case completion is only
// logged.
func NewCountdown(d time.Duration, emitter events.Emitter, logger *slog.Logger) *Countdown {
	if logger == nil {
		logger = slog.Default()
	}

	total := max(0, int(d/time.Second))
	c := &Countdown{
		emitter: emitter,
		logger:  logger.With(slog.String("component", "countdown")),
	}
	c.hours = min(total/3600, MaxHours)
	c.minutes = total / 60 % 60
	c.seconds = total % 60
	c.remaining = c.configured()
	return c
}

// SetDuration configures the countdown. Minutes and seconds must be in
// [0, 59] and hours in [0, MaxHours]. A stopped countdown is reset to the
// new duration; a running one keeps counting down from where it is.
func (c *Countdown) SetDuration(hours, minutes, seconds int) error {
	if hours < 0 || hours > MaxHours {
		return fmt.Errorf("%w: hours must be between 0 and %d", ErrInvalidDuration, MaxHours)
	}
	if minutes < 0 || minutes > 59 {
		return fmt.Errorf("%w: minutes must be between 0 and 59", ErrInvalidDuration)
	}
	if seconds < 0 || seconds > 59 {
		return fmt.Errorf("%w: seconds must be between 0 and 59", ErrInvalidDuration)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.hours, c.minutes, c.seconds = hours, minutes, seconds
	if !c.running {
		c.remaining = c.configured()
	}
	c.logger.Debug("duration set",
		slog.Int("duration_seconds", c.configured()),
		slog.Bool("running", c.running))
	return nil
}

// Start resumes counting down. It does nothing when no time remains.
func (c *Countdown) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.remaining == 0 || c.running {
		return
	}
	c.running = true
	c.logger.Debug("countdown started", slog.Int("remaining_seconds", c.remaining))
}

// Pause stops counting down and keeps the remaining time.
func (c *Countdown) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return
	}
	c.running = false
	c.logger.Debug("countdown paused", slog.Int("remaining_seconds", c.remaining))
}

// Toggle starts a paused countdown or pauses a running one.
func (c *Countdown) Toggle() {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.running:
		c.running = false
	case c.remaining > 0:
		c.running = true
	default:
		return
	}
	c.logger.Debug("countdown toggled",
		slog.Bool("running", c.running),
		slog.Int("remaining_seconds", c.remaining))
}

// Reset stops the countdown and restores the configured duration.
func (c *Countdown) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.running = false
	c.remaining = c.configured()
	c.logger.Debug("countdown reset", slog.Int("remaining_seconds", c.remaining))
}

// Tick advances a running countdown by one second. Reaching zero stops the
// countdown and emits EventFinished. It reports whether this tick finished
// the countdown.
func (c *Countdown) Tick(ctx context.Context) bool {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return false
	}
	c.remaining--
	if c.remaining > 0 {
		c.mu.Unlock()
		return false
	}
	c.remaining = 0
	c.running = false
	duration := c.configured()
	c.mu.Unlock()

	c.logger.Info("countdown finished", slog.Int("duration_seconds", duration))
	c.emitFinished(ctx, duration)
	return true
}

// State returns a snapshot of the countdown.
func (c *Countdown) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return State{
		Hours:            c.hours,
		Minutes:          c.minutes,
		Seconds:          c.seconds,
		RemainingSeconds: c.remaining,
		Running:          c.running,
		Display:          FormatClock(c.remaining),
	}
}

// Run calls Tick every interval until ctx is cancelled.
func (c *Countdown) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	c.logger.Debug("countdown driver started", slog.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			c.logger.Debug("countdown driver stopped")
			return
		case <-ticker.C:
			c.Tick(ctx)
		}
	}
}

// FormatClock renders a number of seconds as HH:MM:SS.
func FormatClock(total int) string {
	total = max(0, total)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total/60%60, total%60)
}

// configured returns the configured duration in seconds. Callers must hold
// c.mu or own c exclusively.
func (c *Countdown) configured() int {
	return c.hours*3600 + c.minutes*60 + c.seconds
}

func (c *Countdown) emitFinished(ctx context.Context, duration int) {
	if c.emitter == nil {
		return
	}
	event, err := events.NewEvent(EventFinished, FinishedPayload{DurationSeconds: duration})
	if err != nil {
		c.logger.Error("failed to build finished event", slog.String("error", err.Error()))
		return
	}
	if err := c.emitter.EmitEvent(ctx, event); err != nil {
		c.logger.Error("failed to emit finished event",
			slog.String("error", err.Error()),
			slog.String("event_id", event.ID.String()))
	}
}
