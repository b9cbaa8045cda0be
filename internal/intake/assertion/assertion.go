package assertion

import "time"

// Payload values arrive either raw or wrapped in a provenance envelope. The
// orchestrator treats both forms as equivalent: every read goes through
// Unwrap, never through ad-hoc "is this wrapped" checks.

const valueKey = "assertion_value"

type SourceType string

const (
	SourceForm SourceType = "form"
	SourceChat SourceType = "chat"
	SourceSeed SourceType = "seed"
)

type Assertion struct {
	Value             any        `json:"assertion_value"`
	AssertedBy        string     `json:"asserted_by,omitempty"`
	RecordedAt        string     `json:"recorded_at,omitempty"`
	SourceType        SourceType `json:"source_type,omitempty"`
	ContradictionFlag bool       `json:"contradiction_flag,omitempty"`
}

// Wrap builds the envelope in its stored (JSON-object) form.
func Wrap(value any, assertedBy string, source SourceType, at time.Time) map[string]any {
	return map[string]any{
		valueKey:             value,
		"asserted_by":        assertedBy,
		"recorded_at":        at.UTC().Format(time.RFC3339),
		"source_type":        string(source),
		"contradiction_flag": false,
	}
}

// Unwrap returns the raw value behind an assertion envelope, or the value
// unchanged when it is not wrapped. Idempotent.
func Unwrap(value any) any {
	switch v := value.(type) {
	case Assertion:
		return v.Value
	case *Assertion:
		if v == nil {
			return nil
		}
		return v.Value
	case map[string]any:
		if inner, ok := v[valueKey]; ok {
			return inner
		}
		return v
	default:
		return value
	}
}

// Get reads one key from a payload, unwrapped. All payload reads in the
// evaluation pipeline go through here.
func Get(payload map[string]any, key string) any {
	return Unwrap(payload[key])
}
