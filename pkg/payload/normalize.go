package payload

import "strings"

// jsonishReplacer maps typographic punctuation variants that models emit in
// non-English output onto the ASCII equivalents strict JSON requires.
// Every replacement target is plain ASCII, so normalization is idempotent.
//
//nolint:gochecknoglobals // Static replacement table
var jsonishReplacer = strings.NewReplacer(
	"“", `"`, // left double quotation mark
	"”", `"`, // right double quotation mark
	"„", `"`, // double low-9 quotation mark
	"‟", `"`, // double high-reversed-9 quotation mark
	"«", `"`, // left guillemet
	"»", `"`, // right guillemet
	"「", `"`, // CJK left corner bracket
	"」", `"`, // CJK right corner bracket
	"『", `"`, // CJK left white corner bracket
	"』", `"`, // CJK right white corner bracket
	"ˮ", `"`, // modifier letter double apostrophe
	"‚", `'`, // single low-9 quotation mark
	"‘", `'`, // left single quotation mark
	"’", `'`, // right single quotation mark
	"‛", `'`, // single high-reversed-9 quotation mark
	"´", `'`, // acute accent
	"：", `:`, // full-width colon
	"，", `,`, // full-width comma
)

// Normalize maps typographic quote variants and full-width punctuation to
// their ASCII JSON-legal equivalents. Strings containing only ASCII JSON
// syntax pass through unchanged.
func Normalize(text string) (normalized string) {
	if text == "" {
		normalized = text
		return normalized
	}

	normalized = jsonishReplacer.Replace(text)
	return normalized
}
