// Package store holds the session-scoped state of the study aid.
//
// CollectionStore owns the study sets, the navigation pointers and the edit
// buffer; NoteStore owns free-text notes. Both keep everything in memory for
// the lifetime of the process and run every operation to completion under a
// mutex, so concurrent callers observe a single ordered sequence of
// mutations. Free-text input is screened by a moderation.Validator before
// any state changes; a rejected mutation leaves the store untouched.
package store
