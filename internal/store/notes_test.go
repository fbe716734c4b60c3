package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/studious/internal/domain"
	"github.com/phrazzld/studious/internal/moderation"
	"github.com/phrazzld/studious/internal/platform/logger"
	"github.com/phrazzld/studious/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotes(t *testing.T) *store.NoteStore {
	t.Helper()
	l, _ := logger.NewTestLogger(t)
	s, err := store.NewNoteStore(moderation.NewDefaultValidator(), l)
	require.NoError(t, err)
	return s
}

func TestNoteStore_CreateAndList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newNotes(t)

	first := s.Create(ctx)
	second := s.Create(ctx)

	assert.Equal(t, domain.DefaultNoteTitle, first.Title)
	assert.Empty(t, first.Content)
	assert.NotEqual(t, first.ID, second.ID)

	notes := s.List()
	require.Len(t, notes, 2)
	assert.Equal(t, first.ID, notes[0].ID)
	assert.Equal(t, second.ID, notes[1].ID)
}

func TestNoteStore_Get(t *testing.T) {
	t.Parallel()
	s := newNotes(t)
	created := s.Create(context.Background())

	got, err := s.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	_, err = s.Get(uuid.New())
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestNoteStore_UpdateTitle(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tests := []struct {
		name    string
		title   string
		wantErr error
		want    string
	}{
		{name: "clean", title: "  Lecture 3 ", want: "Lecture 3"},
		{name: "empty", title: "", wantErr: moderation.ErrEmpty},
		{name: "profanity", title: "crap notes", wantErr: moderation.ErrProfanity},
		{name: "markup", title: "<h1>Notes</h1>", wantErr: moderation.ErrInjection},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s := newNotes(t)
			note := s.Create(ctx)

			updated, err := s.UpdateTitle(ctx, note.ID, tc.title)
			got, getErr := s.Get(note.ID)
			require.NoError(t, getErr)

			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				var verr *domain.ValidationError
				require.True(t, errors.As(err, &verr))
				assert.Equal(t, "title", verr.Field)
				assert.Equal(t, note, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, updated.Title)
			assert.Equal(t, tc.want, got.Title)
			assert.False(t, got.UpdatedAt.Before(note.UpdatedAt))
		})
	}
}

func TestNoteStore_UpdateContent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newNotes(t)
	note := s.Create(ctx)

	code := "<div>{{ value }}</div>\nfunction f() {}"
	updated, err := s.UpdateContent(ctx, note.ID, code)
	require.NoError(t, err)
	assert.Equal(t, code, updated.Content)

	updated, err = s.UpdateContent(ctx, note.ID, "")
	require.NoError(t, err)
	assert.Empty(t, updated.Content)

	_, err = s.UpdateContent(ctx, note.ID, "this is bullshit")
	assert.ErrorIs(t, err, moderation.ErrProfanity)

	_, err = s.UpdateContent(ctx, uuid.New(), "fine")
	assert.ErrorIs(t, err, store.ErrNoteNotFound)
}

func TestNoteStore_ApplyTemplate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	for _, kind := range []domain.TemplateKind{domain.TemplateHTML, domain.TemplateJava, domain.TemplateCPP} {
		kind := kind
		t.Run(string(kind), func(t *testing.T) {
			t.Parallel()
			s := newNotes(t)
			note := s.Create(ctx)

			updated, err := s.ApplyTemplate(ctx, note.ID, kind)
			require.NoError(t, err)

			want, err := domain.Template(kind)
			require.NoError(t, err)
			assert.Equal(t, want, updated.Content)
		})
	}

	t.Run("unknown kind", func(t *testing.T) {
		t.Parallel()
		s := newNotes(t)
		note := s.Create(ctx)

		_, err := s.ApplyTemplate(ctx, note.ID, "cobol")
		assert.ErrorIs(t, err, domain.ErrUnknownTemplate)
	})

	t.Run("unknown note", func(t *testing.T) {
		t.Parallel()
		s := newNotes(t)
		_, err := s.ApplyTemplate(ctx, uuid.New(), domain.TemplateHTML)
		assert.ErrorIs(t, err, store.ErrNoteNotFound)
	})
}

func TestNoteStore_Delete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := newNotes(t)
	a := s.Create(ctx)
	b := s.Create(ctx)

	require.NoError(t, s.Delete(ctx, a.ID))
	notes := s.List()
	require.Len(t, notes, 1)
	assert.Equal(t, b.ID, notes[0].ID)

	assert.ErrorIs(t, s.Delete(ctx, a.ID), store.ErrNoteNotFound)
}

func TestNewNoteStore_NilValidator(t *testing.T) {
	t.Parallel()
	_, err := store.NewNoteStore(nil, nil)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestNoteStore_Update(t *testing.T) {
	t.Parallel()

	str := func(s string) *string { return &s }

	tests := []struct {
		name        string
		title       *string
		content     *string
		wantErr     error
		wantTitle   string
		wantContent string
	}{
		{name: "both fields", title: str("Biology"), content: str("cells"), wantTitle: "Biology", wantContent: "cells"},
		{name: "empty title skipped with content", title: str("  "), content: str("cells"), wantTitle: domain.DefaultNoteTitle, wantContent: "cells"},
		{name: "empty title alone", title: str(""), wantErr: moderation.ErrEmpty, wantTitle: domain.DefaultNoteTitle},
		{name: "rejected content keeps title", title: str("Biology"), content: str("this shit"), wantErr: moderation.ErrProfanity, wantTitle: domain.DefaultNoteTitle},
		{name: "rejected title keeps content", title: str("<b>x</b>"), content: str("cells"), wantErr: moderation.ErrInjection, wantTitle: domain.DefaultNoteTitle},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()
			s := newNotes(t)
			note := s.Create(ctx)

			_, err := s.Update(ctx, note.ID, tc.title, tc.content)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}

			got, err := s.Get(note.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.wantTitle, got.Title)
			assert.Equal(t, tc.wantContent, got.Content)
		})
	}
}
