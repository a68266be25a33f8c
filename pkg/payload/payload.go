// Package payload turns unreliable language-model completions into
// validated, schema-conformant JSON documents. The pipeline is
// normalize -> extract -> repair -> parse -> sanitize; every stage either
// succeeds or falls through explicitly to the next strategy, and exhaustion
// always surfaces a typed error rather than an empty placeholder.
package payload

// Process runs the full reliability pipeline on a raw completion. On success
// the returned document is valid, printable, JSON-serializable data: every
// string value at every depth contains only printable characters or the
// whitespace allow-list. On failure it returns a *MalformedPayloadError plus
// the best-effort cleaned text; the caller should persist both sides via
// WriteFailureArtifacts before surfacing the error.
func Process(raw string, shape Shape) (doc map[string]interface{}, cleaned string, err error) {
	normalized := Normalize(raw)

	doc, cleaned, err = Parse(normalized, shape)
	if err != nil {
		doc = nil
		return doc, cleaned, err
	}

	doc = Sanitize(doc).(map[string]interface{})
	return doc, cleaned, err
}
