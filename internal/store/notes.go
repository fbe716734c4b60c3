package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/studious/internal/domain"
	"github.com/phrazzld/studious/internal/moderation"
	"github.com/phrazzld/studious/internal/platform/logger"
)

// NoteStore keeps notes in creation order.
type NoteStore struct {
	mu sync.Mutex

	validator TextValidator
	logger    *slog.Logger
	timeFunc  func() time.Time

	notes []*domain.Note
}

// NewNoteStore creates an empty NoteStore. It returns an error if validator
// is nil.
func NewNoteStore(validator TextValidator, logger *slog.Logger) (*NoteStore, error) {
	if validator == nil {
		return nil, domain.NewValidationError("validator", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &NoteStore{
		validator: validator,
		logger:    logger.With(slog.String("component", "note_store")),
		timeFunc:  time.Now,
	}, nil
}

// Create adds an untitled, empty note and returns a copy of it.
func (s *NoteStore) Create(ctx context.Context) domain.Note {
	note := domain.NewNote()

	s.mu.Lock()
	s.notes = append(s.notes, note)
	count := len(s.notes)
	s.mu.Unlock()

	logger.FromContextOrDefault(ctx, s.logger).Debug("note created",
		slog.String("note_id", note.ID.String()),
		slog.Int("note_count", count))
	return *note
}

// List returns copies of all notes in creation order.
func (s *NoteStore) List() []domain.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Note, len(s.notes))
	for i, n := range s.notes {
		out[i] = *n
	}
	return out
}

// Get returns a copy of the note with the given id, or ErrNoteNotFound.
func (s *NoteStore) Get(id uuid.UUID) (domain.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Note{}, ErrNoteNotFound
	}
	return *s.notes[i], nil
}

// UpdateTitle replaces the title of a note after running the full input
// validation on it.
func (s *NoteStore) UpdateTitle(ctx context.Context, id uuid.UUID, title string) (domain.Note, error) {
	return s.Update(ctx, id, &title, nil)
}

// UpdateContent replaces the content of a note. Content may be empty and
// may contain code; only the profanity screen applies.
func (s *NoteStore) UpdateContent(ctx context.Context, id uuid.UUID, content string) (domain.Note, error) {
	return s.Update(ctx, id, nil, &content)
}

// Update changes the title, the content, or both. Nil fields are left
// alone. Both fields are validated before either is applied, so a rejected
// field leaves the note untouched. An empty title is skipped when content
// is also given; on its own it is reported as moderation.ErrEmpty.
func (s *NoteStore) Update(ctx context.Context, id uuid.UUID, title, content *string) (domain.Note, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if title != nil {
		err := s.validator.Validate(*title)
		switch {
		case err == nil:
		case errors.Is(err, moderation.ErrEmpty) && content != nil:
			title = nil
		default:
			return domain.Note{}, s.reject(log, "title", err)
		}
	}
	if content != nil {
		if err := s.validator.ValidateContent(*content); err != nil {
			return domain.Note{}, s.reject(log, "content", err)
		}
	}

	return s.update(log, id, "note updated", func(n *domain.Note) {
		if title != nil {
			n.Title = strings.TrimSpace(*title)
		}
		if content != nil {
			n.Content = *content
		}
	})
}

func (s *NoteStore) reject(log *slog.Logger, field string, err error) error {
	log.Info("input rejected",
		slog.String("field", field),
		slog.String("reason", string(moderation.ReasonOf(err))))
	return domain.NewValidationError(field, "rejected", err)
}

// ApplyTemplate replaces the content of a note with the starter text for
// kind.
func (s *NoteStore) ApplyTemplate(ctx context.Context, id uuid.UUID, kind domain.TemplateKind) (domain.Note, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	text, err := domain.Template(kind)
	if err != nil {
		return domain.Note{}, fmt.Errorf("apply template %q: %w", kind, err)
	}

	return s.update(log, id, "template applied", func(n *domain.Note) {
		n.Content = text
	})
}

// Delete removes a note. It returns ErrNoteNotFound for unknown ids.
func (s *NoteStore) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrNoteNotFound
	}
	s.notes = append(s.notes[:i], s.notes[i+1:]...)

	logger.FromContextOrDefault(ctx, s.logger).Debug("note deleted",
		slog.String("note_id", id.String()),
		slog.Int("note_count", len(s.notes)))
	return nil
}

func (s *NoteStore) update(log *slog.Logger, id uuid.UUID, msg string, apply func(*domain.Note)) (domain.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Note{}, ErrNoteNotFound
	}

	n := s.notes[i]
	apply(n)
	n.UpdatedAt = s.timeFunc().UTC()

	log.Debug(msg, slog.String("note_id", id.String()))
	return *n, nil
}

// indexOf returns the position of id, or -1. Callers must hold s.mu.
func (s *NoteStore) indexOf(id uuid.UUID) int {
	for i, n := range s.notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}
