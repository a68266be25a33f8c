package payload

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/kaptinlin/jsonrepair"
	"github.com/tidwall/gjson"
)

//nolint:gochecknoglobals // Pre-compiled repair patterns
var trailingCommaPattern = regexp.MustCompile(`,(\s*[}\]])`)

// stripTrailingCommas removes commas immediately before a closing brace or
// bracket, the most common syntactic error in model-emitted JSON.
func stripTrailingCommas(text string) (stripped string) {
	stripped = trailingCommaPattern.ReplaceAllString(text, "$1")
	return stripped
}

// balanceBraces appends closing braces equal to the deficit between open and
// close brace counts. It only ever appends; existing braces are never removed
// or reordered.
func balanceBraces(text string) (balanced string) {
	balanced = text

	deficit := strings.Count(text, "{") - strings.Count(text, "}")
	if deficit > 0 {
		balanced += strings.Repeat("}", deficit)
	}

	return balanced
}

// tryParse attempts a strict parse of text into a JSON object.
func tryParse(text string) (doc map[string]interface{}, err error) {
	err = json.Unmarshal([]byte(text), &doc)
	if err != nil {
		doc = nil
		return doc, err
	}
	return doc, err
}

// Parse turns a raw completion into a parsed document, applying bounded
// repairs in order of increasing aggressiveness:
//
//  1. For each candidate payload: trailing-comma removal, then strict parse.
//  2. For the last candidate (closest to the raw text): trailing-comma
//     removal plus close-brace balancing for truncated output.
//  3. Library-level JSON repair (still additive from the caller's view).
//  4. Narrow recovery of the shape's primary array field, wrapped in a
//     minimal object.
//
// On success it returns the document and the cleaned text that parsed. On
// exhaustion it returns a *MalformedPayloadError along with the best-effort
// cleaned text for diagnostic persistence.
func Parse(raw string, shape Shape) (doc map[string]interface{}, cleaned string, err error) {
	candidates := Candidates(raw)

	var lastErr error
	for _, candidate := range candidates {
		attempt := stripTrailingCommas(candidate)
		doc, lastErr = tryParse(attempt)
		if lastErr == nil {
			cleaned = attempt
			return doc, cleaned, err
		}
	}

	// Every candidate failed a strict parse. Fall back to the last candidate,
	// which is closest to the full raw text, and close truncated braces.
	cleaned = balanceBraces(stripTrailingCommas(candidates[len(candidates)-1]))
	doc, lastErr = tryParse(cleaned)
	if lastErr == nil {
		return doc, cleaned, err
	}

	// Library-level repair handles unquoted keys, single quotes, and similar
	// near-JSON output that the cheap fixes above do not cover.
	repaired, repairErr := jsonrepair.JSONRepair(cleaned)
	if repairErr == nil {
		doc, lastErr = tryParse(repaired)
		if lastErr == nil {
			cleaned = repaired
			return doc, cleaned, err
		}
	}

	// Narrow recovery: salvage just the primary array field and wrap it in a
	// minimal object so downstream rendering still has something to work with.
	if shape.ArrayKey != "" {
		doc, err = recoverArrayField(cleaned, shape.ArrayKey)
		if err == nil && doc != nil {
			return doc, cleaned, err
		}
	}

	doc = nil
	err = &MalformedPayloadError{
		Attempts: len(candidates),
		Cause:    lastErr,
	}
	return doc, cleaned, err
}

// recoverArrayField extracts the named array field from near-JSON text and
// constructs a minimal wrapper object containing only that array. Returns a
// nil document without error when the field cannot be located.
func recoverArrayField(text, key string) (doc map[string]interface{}, err error) {
	// gjson tolerates a fair amount of surrounding damage as long as the
	// array itself is well formed.
	result := gjson.Get(text, key)
	if result.Exists() && result.IsArray() {
		doc, err = tryParse(`{"` + key + `": ` + result.Raw + `}`)
		if err == nil {
			return doc, err
		}
	}

	// Targeted pattern match for documents too damaged for path lookup.
	fieldPattern, patternErr := regexp.Compile(`"` + regexp.QuoteMeta(key) + `"\s*:\s*\[([\s\S]*)\]`)
	if patternErr != nil {
		err = patternErr
		return nil, err
	}

	match := fieldPattern.FindStringSubmatch(text)
	if match == nil {
		return nil, nil
	}

	doc, err = tryParse(`{"` + key + `": [` + match[1] + `]}`)
	if err != nil {
		return nil, err
	}

	return doc, err
}
