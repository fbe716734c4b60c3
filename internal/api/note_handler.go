package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/phrazzld/studious/internal/api/shared"
	"github.com/phrazzld/studious/internal/domain"
	"github.com/phrazzld/studious/internal/moderation"
	"github.com/phrazzld/studious/internal/platform/logger"
)

// NoteStore is the note collection the note endpoints drive.
type NoteStore interface {
	Create(ctx context.Context) domain.Note
	List() []domain.Note
	Get(id uuid.UUID) (domain.Note, error)
	Update(ctx context.Context, id uuid.UUID, title, content *string) (domain.Note, error)
	ApplyTemplate(ctx context.Context, id uuid.UUID, kind domain.TemplateKind) (domain.Note, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// NoteHandler exposes notes.
type NoteHandler struct {
	notes  NoteStore
	logger *slog.Logger
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(notes NoteStore, logger *slog.Logger) *NoteHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &NoteHandler{
		notes:  notes,
		logger: logger.With(slog.String("component", "note_handler")),
	}
}

// List handles GET /api/notes.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	notes := h.notes.List()
	resp := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		resp = append(resp, noteToResponse(n))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Create handles POST /api/notes.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	note := h.notes.Create(r.Context())
	shared.RespondWithJSON(w, r, http.StatusCreated, noteToResponse(note))
}

// Get handles GET /api/notes/{id}.
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "invalid note ID")
		return
	}

	note, err := h.notes.Get(id)
	if err != nil {
		HandleAPIError(w, r, err, "failed to get note")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, noteToResponse(note))
}

// Update handles PATCH /api/notes/{id}. Both fields are checked before
// either is applied; an empty title is ignored.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "invalid note ID")
		return
	}

	var req UpdateNoteRequest
	if !decodeAndValidate(w, r, log, &req) {
		return
	}
	if req.Title == nil && req.Content == nil {
		HandleAPIError(w, r, domain.NewValidationError("body", "title or content required", domain.ErrValidation), "")
		return
	}

	note, err := h.notes.Update(r.Context(), id, req.Title, req.Content)
	if errors.Is(err, moderation.ErrEmpty) {
		note, err = h.notes.Get(id)
	}
	if err != nil {
		HandleAPIError(w, r, err, "failed to update note")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, noteToResponse(note))
}

// ApplyTemplate handles POST /api/notes/{id}/template.
func (h *NoteHandler) ApplyTemplate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "invalid note ID")
		return
	}

	var req TemplateRequest
	if !decodeAndValidate(w, r, log, &req) {
		return
	}

	note, err := h.notes.ApplyTemplate(r.Context(), id, domain.TemplateKind(req.Kind))
	if err != nil {
		HandleAPIError(w, r, err, "failed to apply template")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, noteToResponse(note))
}

// Delete handles DELETE /api/notes/{id}.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "invalid note ID")
		return
	}

	if err := h.notes.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "failed to delete note")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
