package completeness

import (
	"github.com/lumenlaw/intake-backend/internal/intake/assertion"
	"github.com/lumenlaw/intake-backend/internal/intake/schema"
	"github.com/lumenlaw/intake-backend/internal/intake/validate"
)

// The completeness evaluator answers one question: which required fields of
// a section are still missing from the payload. It honors the reveal table
// (progressive disclosure) and repeatable-section parallel-array semantics,
// and never errors on malformed input.

// IsFieldRequired resolves a field's requiredness. System fields are never
// user-required regardless of their declared requiredness.
func IsFieldRequired(required schema.Requiredness, isSystem bool) bool {
	if isSystem {
		return false
	}
	return required == schema.Always || required == schema.Depends
}

// ShouldShowField reports whether a field is currently visible given the
// payload. Fields with no reveal rule are always visible; a governed field
// is visible only while its controlling field holds the trigger value. A
// hidden field is never missing, whatever its requiredness.
func ShouldShowField(fieldKey string, payload map[string]any, reveals schema.RevealTable) bool {
	control, trigger, ok := reveals.RuleFor(fieldKey)
	if !ok {
		return true
	}
	return valuesEqual(assertion.Get(payload, control), trigger)
}

func valuesEqual(got, want any) bool {
	if got == nil {
		return want == nil
	}
	switch w := want.(type) {
	case bool:
		g, ok := got.(bool)
		return ok && g == w
	case string:
		g, ok := got.(string)
		return ok && g == w
	case int:
		return numbersEqual(got, float64(w))
	case float64:
		return numbersEqual(got, w)
	default:
		return got == want
	}
}

func numbersEqual(got any, want float64) bool {
	switch g := got.(type) {
	case float64:
		return g == want
	case int:
		return float64(g) == want
	default:
		return false
	}
}

// MissingFieldsForSection computes the required-but-absent field keys for
// one section. A section id the schema does not contain yields an empty
// result: callers probe sections that only exist in some modes.
func MissingFieldsForSection(payload map[string]any, sc *schema.SchemaDef, reveals schema.RevealTable, sectionID string) []string {
	section, ok := sc.Section(sectionID)
	if !ok {
		return nil
	}
	if section.Repeatable {
		return missingRepeatable(payload, section)
	}
	var missing []string
	for _, f := range section.Fields {
		if !IsFieldRequired(f.Required, f.IsSystem) {
			continue
		}
		if !ShouldShowField(f.Key, payload, reveals) {
			continue
		}
		if !validate.HasValue(assertion.Get(payload, f.Key), f.Type) {
			missing = append(missing, f.Key)
		}
	}
	return missing
}

// missingRepeatable applies parallel-array semantics: every field of the
// section is an array aligned by index, one element per repeated entity. The
// entry count is the longest sibling array; a required field is missing when
// its array is shorter than that, empty, or holds any element without a
// value. One bad entry blocks the whole step.
func missingRepeatable(payload map[string]any, section *schema.SectionDef) []string {
	entryCount := 0
	for _, f := range section.Fields {
		if n := len(validate.AsArray(assertion.Get(payload, f.Key))); n > entryCount {
			entryCount = n
		}
	}
	var missing []string
	for _, f := range section.Fields {
		if !IsFieldRequired(f.Required, f.IsSystem) {
			continue
		}
		arr := validate.AsArray(assertion.Get(payload, f.Key))
		if entryCount == 0 || len(arr) < entryCount {
			missing = append(missing, f.Key)
			continue
		}
		for _, elem := range arr {
			if !validate.HasValue(assertion.Unwrap(elem), f.Type) {
				missing = append(missing, f.Key)
				break
			}
		}
	}
	return missing
}
