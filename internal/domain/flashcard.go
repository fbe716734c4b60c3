package domain

// Flashcard is a question/answer pair. It is a value: an edit replaces the
// whole card rather than mutating one side of it.
type Flashcard struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// StudySet is a named, ordered group of flashcards. Insertion order is the
// navigation order.
type StudySet struct {
	Name       string      `json:"name"`
	Flashcards []Flashcard `json:"flashcards"`
}

// Clone returns a deep copy of the set so callers cannot alias the owner's
// flashcard slice.
func (s StudySet) Clone() StudySet {
	cards := make([]Flashcard, len(s.Flashcards))
	copy(cards, s.Flashcards)
	return StudySet{Name: s.Name, Flashcards: cards}
}
