package store

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/phrazzld/studious/internal/domain"
	"github.com/phrazzld/studious/internal/moderation"
	"github.com/phrazzld/studious/internal/platform/logger"
)

// DefaultSetName is the name of the set a new collection starts with.
const DefaultSetName = "Default Set"

// TextValidator screens free text before it reaches a store.
// *moderation.Validator satisfies it.
type TextValidator interface {
	// Validate returns nil, moderation.ErrEmpty, moderation.ErrProfanity or
	// moderation.ErrInjection.
	Validate(text string) error

	// ValidateContent screens long-form content where empty text and code
	// are allowed.
	ValidateContent(text string) error
}

// View is a read-only snapshot of the collection for the UI layer.
type View struct {
	SetName    string            `json:"set_name"`
	SetIndex   int               `json:"set_index"`
	SetCount   int               `json:"set_count"`
	SetNames   []string          `json:"set_names"`
	Card       *domain.Flashcard `json:"card"`
	CardIndex  int               `json:"card_index"`
	CardCount  int               `json:"card_count"`
	ShowAnswer bool              `json:"show_answer"`
	Editing    bool              `json:"editing"`
	EditBuffer *domain.Flashcard `json:"edit_buffer,omitempty"`
}

// CollectionStore holds the ordered study sets, the current set and card
// pointers, the answer-visibility flag and the edit buffer.
//
// After every call the following hold: there is at least one set; the set
// index addresses an existing set; the card index addresses an existing card
// of the current set, or is 0 when that set is empty; editing is only true
// while a current card exists.
type CollectionStore struct {
	mu sync.Mutex

	validator TextValidator
	logger    *slog.Logger

	sets       []domain.StudySet
	setIndex   int
	cardIndex  int
	showAnswer bool
	editing    bool
	editBuffer domain.Flashcard
}

// NewCollectionStore creates a collection holding one empty set named
// DefaultSetName. It returns an error if validator is nil.
func NewCollectionStore(validator TextValidator, logger *slog.Logger) (*CollectionStore, error) {
	if validator == nil {
		return nil, domain.NewValidationError("validator", "cannot be nil", domain.ErrValidation)
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CollectionStore{
		validator: validator,
		logger:    logger.With(slog.String("component", "collection_store")),
		sets:      []domain.StudySet{{Name: DefaultSetName, Flashcards: []domain.Flashcard{}}},
	}, nil
}

// AddStudySet appends a set named name and makes it current.
func (s *CollectionStore) AddStudySet(ctx context.Context, name string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.check(log, "name", name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sets = append(s.sets, domain.StudySet{
		Name:       strings.TrimSpace(name),
		Flashcards: []domain.Flashcard{},
	})
	s.setIndex = len(s.sets) - 1
	s.resetCardState()

	log.Debug("study set added",
		slog.Int("set_index", s.setIndex),
		slog.Int("set_count", len(s.sets)))
	return nil
}

// DeleteCurrentSet removes the current set and selects the one before it.
// It returns ErrCannotDeleteLast when only one set remains.
func (s *CollectionStore) DeleteCurrentSet(ctx context.Context) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.sets) <= 1 {
		log.Debug("refusing to delete the last study set")
		return ErrCannotDeleteLast
	}

	removed := s.setIndex
	s.sets = append(s.sets[:removed], s.sets[removed+1:]...)
	s.setIndex = max(0, removed-1)
	s.resetCardState()

	log.Debug("study set deleted",
		slog.Int("removed_index", removed),
		slog.Int("set_index", s.setIndex),
		slog.Int("set_count", len(s.sets)))
	return nil
}

// NextSet selects the following set, wrapping to the first.
func (s *CollectionStore) NextSet(ctx context.Context) {
	s.moveSet(ctx, 1)
}

// PrevSet selects the preceding set, wrapping to the last.
func (s *CollectionStore) PrevSet(ctx context.Context) {
	s.moveSet(ctx, -1)
}

func (s *CollectionStore) moveSet(ctx context.Context, step int) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.sets)
	if n <= 1 {
		return
	}
	s.setIndex = (s.setIndex + step + n) % n
	s.resetCardState()

	log.Debug("study set selected", slog.Int("set_index", s.setIndex))
}

// AddFlashcard appends a card to the current set and makes it current.
// The question is validated before the answer; the first rejection wins.
// Moving to the new card hides the answer and leaves edit mode.
func (s *CollectionStore) AddFlashcard(ctx context.Context, question, answer string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	card, err := s.checkCard(log, question, answer)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	set := &s.sets[s.setIndex]
	set.Flashcards = append(set.Flashcards, card)
	s.cardIndex = len(set.Flashcards) - 1
	s.showAnswer = false
	s.editing = false
	s.editBuffer = domain.Flashcard{}

	log.Debug("flashcard added",
		slog.Int("set_index", s.setIndex),
		slog.Int("card_index", s.cardIndex))
	return nil
}

// NextCard selects the following card in the current set, wrapping to the
// first. It hides the answer and leaves edit mode.
func (s *CollectionStore) NextCard(ctx context.Context) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.sets[s.setIndex].Flashcards)
	if n == 0 {
		return
	}
	s.cardIndex = (s.cardIndex + 1) % n
	s.showAnswer = false
	s.editing = false

	log.Debug("flashcard selected", slog.Int("card_index", s.cardIndex))
}

// ToggleAnswer flips the answer visibility of the current card.
func (s *CollectionStore) ToggleAnswer(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasCard() {
		return
	}
	s.showAnswer = !s.showAnswer

	logger.FromContextOrDefault(ctx, s.logger).Debug("answer toggled",
		slog.Bool("show_answer", s.showAnswer))
}

// DeleteCurrentFlashcard removes the current card and selects the first
// remaining one.
func (s *CollectionStore) DeleteCurrentFlashcard(ctx context.Context) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasCard() {
		return
	}

	set := &s.sets[s.setIndex]
	removed := s.cardIndex
	set.Flashcards = append(set.Flashcards[:removed], set.Flashcards[removed+1:]...)
	s.resetCardState()

	log.Debug("flashcard deleted",
		slog.Int("removed_index", removed),
		slog.Int("card_count", len(set.Flashcards)))
}

// StartEditing copies the current card into the edit buffer and enters edit
// mode.
func (s *CollectionStore) StartEditing(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.hasCard() {
		return
	}
	s.editBuffer = s.sets[s.setIndex].Flashcards[s.cardIndex]
	s.editing = true

	logger.FromContextOrDefault(ctx, s.logger).Debug("editing started",
		slog.Int("card_index", s.cardIndex))
}

// SaveEdit replaces the current card with a new question/answer pair. On a
// rejection the store stays in edit mode and nothing changes.
func (s *CollectionStore) SaveEdit(ctx context.Context, question, answer string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	card, err := s.checkCard(log, question, answer)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.editing || !s.hasCard() {
		log.Debug("save requested outside edit mode")
		return nil
	}

	s.sets[s.setIndex].Flashcards[s.cardIndex] = card
	s.editing = false
	s.showAnswer = false
	s.editBuffer = domain.Flashcard{}

	log.Debug("flashcard updated", slog.Int("card_index", s.cardIndex))
	return nil
}

// CancelEdit leaves edit mode and discards the buffer.
func (s *CollectionStore) CancelEdit(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.editing = false
	s.editBuffer = domain.Flashcard{}

	logger.FromContextOrDefault(ctx, s.logger).Debug("editing cancelled")
}

// Snapshot returns a copy of the state needed to render the study screen.
func (s *CollectionStore) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	set := s.sets[s.setIndex]
	v := View{
		SetName:    set.Name,
		SetIndex:   s.setIndex,
		SetCount:   len(s.sets),
		SetNames:   make([]string, len(s.sets)),
		CardIndex:  s.cardIndex,
		CardCount:  len(set.Flashcards),
		ShowAnswer: s.showAnswer,
		Editing:    s.editing,
	}
	for i, st := range s.sets {
		v.SetNames[i] = st.Name
	}
	if s.hasCard() {
		card := set.Flashcards[s.cardIndex]
		v.Card = &card
	}
	if s.editing {
		buf := s.editBuffer
		v.EditBuffer = &buf
	}
	return v
}

// Sets returns a deep copy of every study set in order.
func (s *CollectionStore) Sets() []domain.StudySet {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.StudySet, len(s.sets))
	for i, set := range s.sets {
		out[i] = set.Clone()
	}
	return out
}

// check validates one field, wrapping a rejection with the field name.
func (s *CollectionStore) check(log *slog.Logger, field, text string) error {
	if err := s.validator.Validate(text); err != nil {
		log.Info("input rejected",
			slog.String("field", field),
			slog.String("reason", string(moderation.ReasonOf(err))))
		return domain.NewValidationError(field, "rejected", err)
	}
	return nil
}

func (s *CollectionStore) checkCard(log *slog.Logger, question, answer string) (domain.Flashcard, error) {
	if err := s.check(log, "question", question); err != nil {
		return domain.Flashcard{}, err
	}
	if err := s.check(log, "answer", answer); err != nil {
		return domain.Flashcard{}, err
	}
	return domain.Flashcard{
		Question: strings.TrimSpace(question),
		Answer:   strings.TrimSpace(answer),
	}, nil
}

// hasCard reports whether the current set has a current card.
// Callers must hold s.mu.
func (s *CollectionStore) hasCard() bool {
	return len(s.sets[s.setIndex].Flashcards) > 0
}

// resetCardState returns the card pointer, answer flag and edit mode to
// their defaults. Callers must hold s.mu.
func (s *CollectionStore) resetCardState() {
	s.cardIndex = 0
	s.showAnswer = false
	s.editing = false
	s.editBuffer = domain.Flashcard{}
}
