package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInjectionDetector(t *testing.T) {
	t.Parallel()
	d := NewInjectionDetector()

	tests := []struct {
		name    string
		input   string
		want    bool
		pattern string
	}{
		{name: "script block", input: "<script>alert(1)</script>", want: true, pattern: "script_block"},
		{name: "script block multiline", input: "<SCRIPT type=\"x\">\nalert(1)\n</script >", want: true, pattern: "script_block"},
		{name: "event handler", input: "img onerror=alert(1)", want: true, pattern: "event_handler"},
		{name: "event handler spaced", input: "x OnClick = go()", want: true, pattern: "event_handler"},
		{name: "function literal", input: "function () { return 1 }", want: true, pattern: "function_literal"},
		{name: "named function", input: "function steal(x)", want: true, pattern: "function_literal"},
		{name: "arrow function", input: "(x) => x * 2", want: true, pattern: "function_literal"},
		{name: "js import", input: "import React from 'react'", want: true, pattern: "import_statement"},
		{name: "bare js import", input: "import \"./side-effect.js\"", want: true, pattern: "import_statement"},
		{name: "java import", input: "import java.util.*;", want: true, pattern: "import_statement"},
		{name: "tag", input: "<b>bold</b>", want: true, pattern: "markup_tag"},
		{name: "self closing tag", input: "line<br/>break", want: true, pattern: "markup_tag"},
		{name: "doctype", input: "<!DOCTYPE html>", want: true, pattern: "markup_tag"},
		{name: "brace span", input: "hello {name}", want: true, pattern: "brace_span"},
		{name: "empty braces", input: "{}", want: true, pattern: "brace_span"},
		{name: "plain sentence", input: "What is the capital of France?", want: false},
		{name: "comparison", input: "3 < 4 and 5 > 2", want: false},
		{name: "parenthetical", input: "Mitochondria (the powerhouse)", want: false},
		{name: "word import", input: "Import duties rose in 1930", want: false},
		{name: "word function", input: "The function of the heart", want: false},
		{name: "lone brace", input: "a { b", want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			name, found := d.Match(tc.input)
			assert.Equal(t, tc.want, found)
			assert.Equal(t, tc.want, d.ContainsInjection(tc.input))
			assert.Equal(t, tc.pattern, name)
		})
	}
}

func TestInjectionDetector_UsesRawText(t *testing.T) {
	t.Parallel()
	d := NewInjectionDetector()
	raw := "<i>x</i>"

	assert.True(t, d.ContainsInjection(raw))
	assert.False(t, d.ContainsInjection(Normalize(raw)))
}
