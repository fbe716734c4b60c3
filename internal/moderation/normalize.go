package moderation

import "strings"

// Normalize canonicalizes text for profanity matching. It lowercases the
// input, turns every character outside [a-z0-9] into a separator, collapses
// separator runs to a single space and trims both ends.
//
// Normalize is idempotent. It must not be applied before injection
// detection, which depends on the markup characters it removes.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	pendingSpace := false
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
			continue
		}
		pendingSpace = true
	}

	return b.String()
}
