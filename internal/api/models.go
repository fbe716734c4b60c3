package api

import (
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/studious/internal/domain"
)

// SignInRequest defines the payload for the sign-in endpoint.
type SignInRequest struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
}

// SignInResponse defines the successful response for the sign-in endpoint.
type SignInResponse struct {
	// Token is the session token used for API authorization
	Token string `json:"token"`

	// ExpiresAt is the RFC 3339 timestamp when the token expires
	ExpiresAt string `json:"expires_at"`
}

// StudySetRequest is the payload for creating a study set. Length caps guard
// the server; content rules are enforced by the store.
type StudySetRequest struct {
	Name string `json:"name" validate:"max=100"`
}

// FlashcardRequest is the payload for adding a flashcard or saving an edit.
type FlashcardRequest struct {
	Question string `json:"question" validate:"max=500"`
	Answer   string `json:"answer"   validate:"max=2000"`
}

// UpdateNoteRequest changes the title, the content, or both.
type UpdateNoteRequest struct {
	Title   *string `json:"title,omitempty"   validate:"omitempty,max=200"`
	Content *string `json:"content,omitempty" validate:"omitempty,max=100000"`
}

// TemplateRequest selects a starter template for note content.
type TemplateRequest struct {
	Kind string `json:"kind" validate:"required,oneof=html java cpp"`
}

// TimerDurationRequest configures the countdown.
type TimerDurationRequest struct {
	Hours   int `json:"hours"   validate:"gte=0,lte=99"`
	Minutes int `json:"minutes" validate:"gte=0,lte=59"`
	Seconds int `json:"seconds" validate:"gte=0,lte=59"`
}

// NoteResponse is the wire form of a note.
type NoteResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt string    `json:"created_at"`
	UpdatedAt string    `json:"updated_at"`
}

func noteToResponse(n domain.Note) NoteResponse {
	return NoteResponse{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
		UpdatedAt: n.UpdatedAt.Format(time.RFC3339),
	}
}
