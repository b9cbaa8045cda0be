package validate

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/lumenlaw/intake-backend/internal/intake/schema"
)

// Field validators are pure predicates over already-unwrapped values. They
// only run against present values; absence is the completeness evaluator's
// concern, so a field is never reported both missing and invalid.

type Result struct {
	Valid   bool
	Message string
}

func valid() Result             { return Result{Valid: true} }
func invalid(msg string) Result { return Result{Valid: false, Message: msg} }

var (
	zipPattern   = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// ZIP accepts 5-digit or ZIP+4 codes.
func ZIP(value any) Result {
	s, ok := value.(string)
	if !ok || !zipPattern.MatchString(strings.TrimSpace(s)) {
		return invalid("enter a 5-digit ZIP code, like 30305 or 30305-1234")
	}
	return valid()
}

// Email is deliberately permissive: local@domain.tld, nothing stricter.
func Email(value any) Result {
	s, ok := value.(string)
	if !ok || !emailPattern.MatchString(strings.TrimSpace(s)) {
		return invalid("enter a valid email address, like name@example.com")
	}
	return valid()
}

// Phone accepts digits with any common separators and requires at least 10
// significant digits.
func Phone(value any) Result {
	s, ok := value.(string)
	if !ok {
		return invalid("enter a phone number with area code")
	}
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')' || r == '+':
		default:
			return invalid("enter a phone number with area code")
		}
	}
	if digits < 10 {
		return invalid("enter a phone number with area code")
	}
	return valid()
}

var addressSubFields = []string{"street", "city", "state", "zip"}

// Address requires street, city, state and zip sub-fields. Any failure,
// including a bad zip, is reported as one message so the UI can point at the
// parent field rather than an invisible sub-key.
func Address(value any) Result {
	m, ok := value.(map[string]any)
	if !ok {
		return invalid("enter a full address with street, city, state, and ZIP")
	}
	for _, sub := range addressSubFields {
		s, ok := m[sub].(string)
		if !ok || strings.TrimSpace(s) == "" {
			return invalid(fmt.Sprintf("the address is missing its %s", sub))
		}
	}
	if res := ZIP(m["zip"]); !res.Valid {
		return res
	}
	return valid()
}

// ForField returns the format validator that applies to a field definition,
// or nil when the field has no format beyond presence.
func ForField(f schema.FieldDef) func(any) Result {
	if f.Type == schema.FieldStructured {
		return Address
	}
	switch f.Format {
	case schema.FormatZIP:
		return ZIP
	case schema.FormatEmail:
		return Email
	case schema.FormatPhone:
		return Phone
	default:
		return nil
	}
}

var dateLayouts = []string{"2006-01-02", "01/02/2006", "January 2, 2006"}

func parseableDate(s string) bool {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

// HasValue is the generic, type-dispatched presence check. Malformed values
// (wrong JSON type for the declared field type) count as absent, never as
// errors: payload is end-user input and must not crash evaluation.
func HasValue(value any, fieldType schema.FieldType) bool {
	if value == nil {
		return false
	}
	switch fieldType {
	case schema.FieldBoolean:
		_, ok := value.(bool)
		return ok
	case schema.FieldNumber:
		f, ok := asFloat(value)
		return ok && !math.IsNaN(f)
	case schema.FieldDate:
		s, ok := value.(string)
		return ok && parseableDate(s)
	case schema.FieldText, schema.FieldEnum:
		s, ok := value.(string)
		return ok && strings.TrimSpace(s) != ""
	case schema.FieldMultiselect, schema.FieldList:
		return len(AsArray(value)) > 0
	case schema.FieldStructured:
		m, ok := value.(map[string]any)
		return ok && m != nil
	default:
		return false
	}
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// AsArray coerces a payload value to an element slice. Anything that is not
// an array (scalars, nil, empty strings) coerces to empty, which downstream
// treats as "nothing entered".
func AsArray(value any) []any {
	switch v := value.(type) {
	case []any:
		return v
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	default:
		return nil
	}
}
