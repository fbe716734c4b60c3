package moderation

import "regexp"

type injectionPattern struct {
	name    string
	pattern *regexp.Regexp
}

// Precompiled structural patterns, checked in order against raw input.
var (
	scriptBlockRegex  = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	eventHandlerRegex = regexp.MustCompile(`(?i)\bon[a-z]+\s*=`)
	functionRegex     = regexp.MustCompile(`(?i)\bfunction\b\s*[\w$]*\s*\(|\([^()]*\)\s*=>`)
	importRegex       = regexp.MustCompile(
		`(?im)^\s*import\s+(?:[\w$*{}\s,]+\s+from\s+)?["'][^"']+["']|^\s*import\s+(?:static\s+)?[\w.]+(?:\.\*)?\s*;`,
	)
	tagRegex   = regexp.MustCompile(`<[!/]?[a-zA-Z][^<>]*>`)
	braceRegex = regexp.MustCompile(`\{[^{}]*\}`)

	defaultInjectionPatterns = []injectionPattern{
		{name: "script_block", pattern: scriptBlockRegex},
		{name: "event_handler", pattern: eventHandlerRegex},
		{name: "function_literal", pattern: functionRegex},
		{name: "import_statement", pattern: importRegex},
		{name: "markup_tag", pattern: tagRegex},
		{name: "brace_span", pattern: braceRegex},
	}
)

// InjectionDetector rejects markup- and code-like input in plain-text
// fields. It always inspects the raw text; normalization would erase the
// characters the patterns rely on.
type InjectionDetector struct {
	patterns []injectionPattern
}

// NewInjectionDetector returns a detector using the default pattern set.
func NewInjectionDetector() *InjectionDetector {
	return &InjectionDetector{patterns: defaultInjectionPatterns}
}

// ContainsInjection reports whether any structural pattern matches text.
func (d *InjectionDetector) ContainsInjection(text string) bool {
	_, found := d.Match(text)
	return found
}

// Match returns the name of the first pattern that matches text.
func (d *InjectionDetector) Match(text string) (string, bool) {
	for _, p := range d.patterns {
		if p.pattern.MatchString(text) {
			return p.name, true
		}
	}
	return "", false
}
