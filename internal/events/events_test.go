package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	type testPayload struct {
		Seconds int    `json:"seconds"`
		Label   string `json:"label"`
	}

	payload := testPayload{Seconds: 300, Label: "pomodoro"}

	event, err := NewEvent("timer.finished", payload)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, event.ID)
	assert.Equal(t, "timer.finished", event.Type)
	assert.WithinDuration(t, time.Now(), event.CreatedAt, 2*time.Second)

	var decoded testPayload
	require.NoError(t, json.Unmarshal(event.Payload, &decoded))
	assert.Equal(t, payload, decoded)

	var viaMethod testPayload
	require.NoError(t, event.UnmarshalPayload(&viaMethod))
	assert.Equal(t, payload, viaMethod)
}

func TestNewEvent_UnserializablePayload(t *testing.T) {
	_, err := NewEvent("bad", make(chan int))
	assert.Error(t, err)
}

// MockEventHandler implements the Handler interface for testing
type MockEventHandler struct {
	// The last event received by this handler
	LastEvent *Event
	// Error to return from HandleEvent
	HandlerError error
	// Count of events handled
	HandledCount int
}

// HandleEvent implements the Handler interface
func (h *MockEventHandler) HandleEvent(ctx context.Context, event *Event) error {
	h.LastEvent = event
	h.HandledCount++
	return h.HandlerError
}

func TestHandlerFunc(t *testing.T) {
	var got *Event
	h := HandlerFunc(func(_ context.Context, e *Event) error {
		got = e
		return errors.New("from func")
	})

	event, err := NewEvent("x", nil)
	require.NoError(t, err)

	assert.EqualError(t, h.HandleEvent(context.Background(), event), "from func")
	assert.Same(t, event, got)
}

func TestTypeFilter(t *testing.T) {
	inner := &MockEventHandler{}
	h := TypeFilter("timer.finished", inner)

	other, err := NewEvent("note.created", nil)
	require.NoError(t, err)
	match, err := NewEvent("timer.finished", nil)
	require.NoError(t, err)

	require.NoError(t, h.HandleEvent(context.Background(), other))
	assert.Equal(t, 0, inner.HandledCount)

	require.NoError(t, h.HandleEvent(context.Background(), match))
	assert.Equal(t, 1, inner.HandledCount)
	assert.Equal(t, match, inner.LastEvent)
}
