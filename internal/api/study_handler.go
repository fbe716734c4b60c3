package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/studious/internal/api/shared"
	"github.com/phrazzld/studious/internal/domain"
	"github.com/phrazzld/studious/internal/moderation"
	"github.com/phrazzld/studious/internal/platform/logger"
	"github.com/phrazzld/studious/internal/store"
)

// StudyStore is the flashcard collection the study endpoints drive.
type StudyStore interface {
	AddStudySet(ctx context.Context, name string) error
	DeleteCurrentSet(ctx context.Context) error
	NextSet(ctx context.Context)
	PrevSet(ctx context.Context)
	AddFlashcard(ctx context.Context, question, answer string) error
	NextCard(ctx context.Context)
	ToggleAnswer(ctx context.Context)
	DeleteCurrentFlashcard(ctx context.Context)
	StartEditing(ctx context.Context)
	SaveEdit(ctx context.Context, question, answer string) error
	CancelEdit(ctx context.Context)
	Snapshot() store.View
	Sets() []domain.StudySet
}

// StudyHandler exposes study sets and flashcards. Every response carries the
// current snapshot so a client can render without a second request.
type StudyHandler struct {
	store  StudyStore
	logger *slog.Logger
}

// NewStudyHandler creates a new StudyHandler.
func NewStudyHandler(s StudyStore, logger *slog.Logger) *StudyHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StudyHandler{
		store:  s,
		logger: logger.With(slog.String("component", "study_handler")),
	}
}

// Get handles GET /api/study.
func (h *StudyHandler) Get(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.store.Snapshot())
}

// ListSets handles GET /api/study/sets. It returns every set with its
// flashcards, in navigation order.
func (h *StudyHandler) ListSets(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.store.Sets())
}

// AddSet handles POST /api/study/sets.
func (h *StudyHandler) AddSet(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req StudySetRequest
	if !decodeAndValidate(w, r, log, &req) {
		return
	}

	err := h.store.AddStudySet(r.Context(), req.Name)
	h.respond(w, r, http.StatusCreated, err, "failed to add study set")
}

// DeleteSet handles DELETE /api/study/sets/current.
func (h *StudyHandler) DeleteSet(w http.ResponseWriter, r *http.Request) {
	err := h.store.DeleteCurrentSet(r.Context())
	h.respond(w, r, http.StatusOK, err, "failed to delete study set")
}

// NextSet handles POST /api/study/sets/next.
func (h *StudyHandler) NextSet(w http.ResponseWriter, r *http.Request) {
	h.store.NextSet(r.Context())
	h.respond(w, r, http.StatusOK, nil, "")
}

// PrevSet handles POST /api/study/sets/prev.
func (h *StudyHandler) PrevSet(w http.ResponseWriter, r *http.Request) {
	h.store.PrevSet(r.Context())
	h.respond(w, r, http.StatusOK, nil, "")
}

// AddCard handles POST /api/study/cards.
func (h *StudyHandler) AddCard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req FlashcardRequest
	if !decodeAndValidate(w, r, log, &req) {
		return
	}

	err := h.store.AddFlashcard(r.Context(), req.Question, req.Answer)
	h.respond(w, r, http.StatusCreated, err, "failed to add flashcard")
}

// NextCard handles POST /api/study/cards/next.
func (h *StudyHandler) NextCard(w http.ResponseWriter, r *http.Request) {
	h.store.NextCard(r.Context())
	h.respond(w, r, http.StatusOK, nil, "")
}

// Flip handles POST /api/study/cards/flip.
func (h *StudyHandler) Flip(w http.ResponseWriter, r *http.Request) {
	h.store.ToggleAnswer(r.Context())
	h.respond(w, r, http.StatusOK, nil, "")
}

// DeleteCard handles DELETE /api/study/cards/current.
func (h *StudyHandler) DeleteCard(w http.ResponseWriter, r *http.Request) {
	h.store.DeleteCurrentFlashcard(r.Context())
	h.respond(w, r, http.StatusOK, nil, "")
}

// StartEdit handles POST /api/study/cards/current/edit.
func (h *StudyHandler) StartEdit(w http.ResponseWriter, r *http.Request) {
	h.store.StartEditing(r.Context())
	h.respond(w, r, http.StatusOK, nil, "")
}

// SaveEdit handles PUT /api/study/cards/current/edit.
func (h *StudyHandler) SaveEdit(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req FlashcardRequest
	if !decodeAndValidate(w, r, log, &req) {
		return
	}

	err := h.store.SaveEdit(r.Context(), req.Question, req.Answer)
	h.respond(w, r, http.StatusOK, err, "failed to save flashcard edit")
}

// CancelEdit handles DELETE /api/study/cards/current/edit.
func (h *StudyHandler) CancelEdit(w http.ResponseWriter, r *http.Request) {
	h.store.CancelEdit(r.Context())
	h.respond(w, r, http.StatusOK, nil, "")
}

// respond writes the snapshot on success. Empty input is a quiet no-op and
// answers 200 with the unchanged snapshot.
func (h *StudyHandler) respond(w http.ResponseWriter, r *http.Request, status int, err error, logMessage string) {
	switch {
	case err == nil:
		shared.RespondWithJSON(w, r, status, h.store.Snapshot())
	case errors.Is(err, moderation.ErrEmpty):
		shared.RespondWithJSON(w, r, http.StatusOK, h.store.Snapshot())
	default:
		HandleAPIError(w, r, err, logMessage)
	}
}
