// Package domain contains the core entities of the study aid: flashcards,
// the study sets that own them, and free-text notes. It is independent of
// any storage or delivery mechanism.
package domain
