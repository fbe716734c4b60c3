package moderation

import (
	"errors"
	"strings"
)

// Rejection causes returned by Validator. Callers match them with errors.Is.
var (
	// ErrEmpty is returned for text that is empty after trimming whitespace.
	ErrEmpty = errors.New("text is empty")

	// ErrProfanity is returned for text containing a banned term.
	ErrProfanity = errors.New("text contains inappropriate content")

	// ErrInjection is returned for text that looks like markup or code.
	ErrInjection = errors.New("text contains markup or code")
)

// Reason is the reason code attached to a rejected text.
type Reason string

// Reason codes. ReasonNone means the text was accepted.
const (
	ReasonNone      Reason = ""
	ReasonEmpty     Reason = "empty"
	ReasonProfanity Reason = "profanity"
	ReasonInjection Reason = "injection"
)

// ReasonOf maps an error returned by Validator, possibly wrapped, to its
// reason code. Unrelated and nil errors map to ReasonNone.
func ReasonOf(err error) Reason {
	switch {
	case err == nil:
		return ReasonNone
	case errors.Is(err, ErrEmpty):
		return ReasonEmpty
	case errors.Is(err, ErrProfanity):
		return ReasonProfanity
	case errors.Is(err, ErrInjection):
		return ReasonInjection
	default:
		return ReasonNone
	}
}

// Validator composes the detectors behind one decision. Every mutation that
// accepts free text calls it first.
type Validator struct {
	profanity *ProfanityDetector
	injection *InjectionDetector
}

// NewValidator creates a Validator from the given detectors.
func NewValidator(profanity *ProfanityDetector, injection *InjectionDetector) *Validator {
	return &Validator{
		profanity: profanity,
		injection: injection,
	}
}

// NewDefaultValidator creates a Validator with the default term list and
// pattern set.
func NewDefaultValidator() *Validator {
	return NewValidator(NewProfanityDetector(), NewInjectionDetector())
}

// Validate returns nil when text is acceptable, or the first failing check
// in the fixed order ErrEmpty, ErrProfanity, ErrInjection. Text that is both
// profane and markup-like is reported as ErrProfanity.
func (v *Validator) Validate(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmpty
	}
	if v.profanity.ContainsProfanity(text) {
		return ErrProfanity
	}
	if v.injection.ContainsInjection(text) {
		return ErrInjection
	}
	return nil
}

// ValidateContent screens long-form content such as note bodies, where empty
// text and code are legitimate. Only the profanity check applies.
func (v *Validator) ValidateContent(text string) error {
	if v.profanity.ContainsProfanity(text) {
		return ErrProfanity
	}
	return nil
}
