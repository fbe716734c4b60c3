package moderation

import (
	"regexp"
	"strings"
)

// Important notice: this file and its tests necessarily contain offensive
// terms. They exist only to exercise the filter.

// defaultBannedTerms is the process-wide banned-term list. It is never
// mutated at runtime.
var defaultBannedTerms = []string{
	"fuck",
	"fucker",
	"fucking",
	"motherfucker",
	"shit",
	"bullshit",
	"bitch",
	"bastard",
	"ass",
	"asshole",
	"dick",
	"cunt",
	"piss",
	"slut",
	"whore",
	"damn",
	"crap",
}

type bannedTerm struct {
	text    string
	pattern *regexp.Regexp
}

// ProfanityDetector performs whole-word matching against a fixed term list.
// It is safe for concurrent use; all state is read-only after construction.
type ProfanityDetector struct {
	terms []bannedTerm
}

// NewProfanityDetector returns a detector loaded with the default term list.
func NewProfanityDetector() *ProfanityDetector {
	return NewProfanityDetectorWithTerms(defaultBannedTerms)
}

// NewProfanityDetectorWithTerms builds a detector from terms. Terms are
// normalized the same way input is, so matching is case-insensitive.
// Terms that normalize to nothing are skipped.
func NewProfanityDetectorWithTerms(terms []string) *ProfanityDetector {
	d := &ProfanityDetector{
		terms: make([]bannedTerm, 0, len(terms)),
	}

	for _, term := range terms {
		normalized := Normalize(term)
		if normalized == "" {
			continue
		}
		d.terms = append(d.terms, bannedTerm{
			text:    normalized,
			pattern: termPattern(normalized),
		})
	}

	return d
}

// ContainsProfanity reports whether text contains a banned term as a whole
// word.
func (d *ProfanityDetector) ContainsProfanity(text string) bool {
	_, found := d.Match(text)
	return found
}

// Match returns the first banned term found in text.
//
// Each term is matched on word boundaries against the normalized text, so
// case tricks and punctuation around a word do not hide it, while a term
// inside a longer word ("classic") does not match. Normalization turns
// punctuation between letters into single spaces ("f.u.c.k" becomes
// "f u c k"), so the pattern allows one optional space between letters.
func (d *ProfanityDetector) Match(text string) (string, bool) {
	normalized := Normalize(text)
	if normalized == "" {
		return "", false
	}

	for _, term := range d.terms {
		if term.pattern.MatchString(normalized) {
			return term.text, true
		}
	}

	return "", false
}

// termPattern builds `\bf ?u ?c ?k\b` for "fuck". Spaces inside a
// multi-word term are treated like any other gap between letters.
func termPattern(normalized string) *regexp.Regexp {
	letters := strings.Split(strings.ReplaceAll(normalized, " ", ""), "")
	for i, l := range letters {
		letters[i] = regexp.QuoteMeta(l)
	}
	return regexp.MustCompile(`\b` + strings.Join(letters, " ?") + `\b`)
}
