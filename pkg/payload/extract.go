package payload

import (
	"regexp"
	"strings"
)

//nolint:gochecknoglobals // Pre-compiled extraction patterns
var (
	// thinkBlockPattern matches reasoning sections some models emit before the
	// actual answer. Matched case-insensitively across newlines.
	thinkBlockPattern = regexp.MustCompile(`(?is)<think>.*?</think>`)

	// escapedThinkBlockPattern matches the same sections when the model
	// HTML-escaped the delimiters, optionally with a leading backslash.
	escapedThinkBlockPattern = regexp.MustCompile(`(?is)\\?&lt;think&gt;.*?\\?&lt;/think&gt;`)

	// fencedBlockPattern captures the body of triple-backtick code fences,
	// optionally tagged json.
	fencedBlockPattern = regexp.MustCompile("(?i)```\\s*(?:json)?\\s*([\\s\\S]+?)\\s*```")
)

// StripThinkBlocks removes reasoning sections from a raw completion. These
// sections must never appear in the final payload or in persisted artifacts.
func StripThinkBlocks(raw string) (stripped string) {
	stripped = escapedThinkBlockPattern.ReplaceAllString(raw, "")
	stripped = thinkBlockPattern.ReplaceAllString(stripped, "")
	return stripped
}

// Candidates returns the ordered list of substrings of a raw completion that
// are plausible JSON documents. Fenced code blocks come first in source
// order, followed by the full trimmed text as a final resort. Each candidate
// is narrowed to its outermost brace span when one exists.
func Candidates(raw string) (candidates []string) {
	raw = StripThinkBlocks(raw)

	// Collect fenced code blocks in source order.
	for _, match := range fencedBlockPattern.FindAllStringSubmatch(raw, -1) {
		candidates = append(candidates, strings.TrimSpace(match[1]))
	}

	// The full remaining text is always the last candidate.
	candidates = append(candidates, strings.TrimSpace(raw))

	// Models often prepend or append commentary even inside fences, so narrow
	// each candidate to the outermost object span.
	for i, candidate := range candidates {
		candidates[i] = narrowToObject(candidate)
	}

	return candidates
}

// narrowToObject narrows text to the span from the first '{' to the last
// '}'. Text without any '{' is returned unmodified so it fails parsing
// downstream and triggers the repair path.
func narrowToObject(text string) (narrowed string) {
	narrowed = text

	start := strings.Index(text, "{")
	if start == -1 {
		return narrowed
	}

	end := strings.LastIndex(text, "}")
	if end < start {
		// Truncated output with an open brace but no close. Keep everything
		// from the brace on; the brace-balancing repair closes it later.
		narrowed = text[start:]
		return narrowed
	}

	narrowed = text[start : end+1]
	return narrowed
}
