// Package coerce turns model output into JSON on a best-effort basis. The
// model is asked for JSON but not trusted to produce it; a reply that does
// not parse becomes an explicit fallback payload instead of a request
// failure, so callers can always inspect what the model actually said.
package coerce

import (
	"encoding/json"
	"strings"
)

// Result is the outcome of coercing raw model text: either the parsed JSON
// document (Value) or the original text plus the reason it failed to parse.
type Result struct {
	Value  json.RawMessage
	Raw    string
	Reason string
}

// Structured reports whether the raw text parsed as JSON.
func (r Result) Structured() bool {
	return r.Reason == ""
}

// Fallback shapes the unstructured variant the way endpoints expose it.
func (r Result) Fallback(message string) map[string]string {
	return map[string]string{
		"error":        message,
		"raw_response": r.Raw,
	}
}

// Coerce attempts a strict JSON parse of raw. It never fails: malformed input
// yields an unstructured Result carrying the input verbatim. Valid JSON is
// passed through untouched; no schema validation is applied.
func Coerce(raw string) Result {
	trimmed := strings.TrimSpace(raw)

	var probe any
	if err := json.Unmarshal([]byte(trimmed), &probe); err != nil {
		return Result{Raw: raw, Reason: err.Error()}
	}

	return Result{Value: json.RawMessage(trimmed), Raw: raw}
}
