// Package moderation screens user-submitted text before it enters the study
// store. It combines a whole-word profanity check over normalized text with a
// pattern check for markup and code over the raw text, and reduces both to a
// single pass/fail decision.
//
// The filter is a best-effort heuristic for plain-text fields, not a security
// boundary. False positives on legitimate text containing braces or angle
// brackets are expected.
package moderation
