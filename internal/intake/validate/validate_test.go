package validate

import (
	"testing"

	"github.com/lumenlaw/intake-backend/internal/intake/schema"
)

func TestZIP(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "five_digits", value: "30305", want: true},
		{name: "zip_plus_four", value: "30305-1234", want: true},
		{name: "too_short", value: "3030", want: false},
		{name: "too_long", value: "303051", want: false},
		{name: "plus_four_no_hyphen", value: "303051234", want: false},
		{name: "letters", value: "3O305", want: false},
		{name: "not_a_string", value: 30305, want: false},
		{name: "empty", value: "", want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ZIP(tc.value)
			if got.Valid != tc.want {
				t.Fatalf("ZIP(%v).Valid=%v, want %v", tc.value, got.Valid, tc.want)
			}
			if !got.Valid && got.Message == "" {
				t.Fatalf("ZIP(%v) invalid but no message", tc.value)
			}
		})
	}
}

func TestEmail(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "plain", value: "jordan@example.com", want: true},
		{name: "subdomain", value: "j.smith@mail.example.co", want: true},
		{name: "missing_at", value: "jordanexample.com", want: false},
		{name: "missing_domain", value: "jordan@", want: false},
		{name: "missing_tld", value: "jordan@example", want: false},
		{name: "spaces", value: "jordan smith@example.com", want: false},
		{name: "not_a_string", value: 42, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Email(tc.value); got.Valid != tc.want {
				t.Fatalf("Email(%v).Valid=%v, want %v", tc.value, got.Valid, tc.want)
			}
		})
	}
}

func TestPhone(t *testing.T) {
	cases := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "bare_ten_digits", value: "4045550133", want: true},
		{name: "formatted", value: "(404) 555-0133", want: true},
		{name: "dots", value: "404.555.0133", want: true},
		{name: "country_code", value: "+1 404 555 0133", want: true},
		{name: "too_short", value: "123", want: false},
		{name: "nine_digits", value: "404555013", want: false},
		{name: "letters", value: "404-555-CALL", want: false},
		{name: "not_a_string", value: 4045550133, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Phone(tc.value); got.Valid != tc.want {
				t.Fatalf("Phone(%q)=%v, want %v", tc.value, got.Valid, tc.want)
			}
		})
	}
}

func TestAddress(t *testing.T) {
	full := map[string]any{"street": "123 Peachtree St NE", "city": "Atlanta", "state": "GA", "zip": "30305"}

	cases := []struct {
		name  string
		value any
		want  bool
	}{
		{name: "complete", value: full, want: true},
		{name: "missing_city", value: map[string]any{"street": "123 Main St", "state": "GA", "zip": "30305"}, want: false},
		{name: "blank_street", value: map[string]any{"street": "  ", "city": "Atlanta", "state": "GA", "zip": "30305"}, want: false},
		{name: "bad_zip", value: map[string]any{"street": "123 Main St", "city": "Atlanta", "state": "GA", "zip": "303"}, want: false},
		{name: "not_an_object", value: "123 Main St, Atlanta GA", want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Address(tc.value); got.Valid != tc.want {
				t.Fatalf("Address(%v)=%v, want %v", tc.value, got.Valid, tc.want)
			}
		})
	}
}

func TestHasValue(t *testing.T) {
	cases := []struct {
		name      string
		value     any
		fieldType schema.FieldType
		want      bool
	}{
		{name: "bool_true", value: true, fieldType: schema.FieldBoolean, want: true},
		{name: "bool_false", value: false, fieldType: schema.FieldBoolean, want: true},
		{name: "bool_missing", value: nil, fieldType: schema.FieldBoolean, want: false},
		{name: "bool_as_string", value: "true", fieldType: schema.FieldBoolean, want: false},
		{name: "number", value: 42.0, fieldType: schema.FieldNumber, want: true},
		{name: "number_zero", value: 0.0, fieldType: schema.FieldNumber, want: true},
		{name: "number_as_string", value: "42", fieldType: schema.FieldNumber, want: false},
		{name: "text", value: "hello", fieldType: schema.FieldText, want: true},
		{name: "text_blank", value: "   ", fieldType: schema.FieldText, want: false},
		{name: "text_wrong_type", value: 7, fieldType: schema.FieldText, want: false},
		{name: "enum", value: "employed", fieldType: schema.FieldEnum, want: true},
		{name: "date_iso", value: "2020-01-15", fieldType: schema.FieldDate, want: true},
		{name: "date_us", value: "01/15/2020", fieldType: schema.FieldDate, want: true},
		{name: "date_garbage", value: "soon", fieldType: schema.FieldDate, want: false},
		{name: "multiselect", value: []any{"a"}, fieldType: schema.FieldMultiselect, want: true},
		{name: "multiselect_empty", value: []any{}, fieldType: schema.FieldMultiselect, want: false},
		{name: "list_scalar", value: "a", fieldType: schema.FieldList, want: false},
		{name: "structured", value: map[string]any{"street": "x"}, fieldType: schema.FieldStructured, want: true},
		{name: "structured_array", value: []any{"x"}, fieldType: schema.FieldStructured, want: false},
		{name: "nil", value: nil, fieldType: schema.FieldText, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := HasValue(tc.value, tc.fieldType); got != tc.want {
				t.Fatalf("HasValue(%v, %s)=%v, want %v", tc.value, tc.fieldType, got, tc.want)
			}
		})
	}
}

func TestForField(t *testing.T) {
	if ForField(schema.FieldDef{Key: "x", Type: schema.FieldText}) != nil {
		t.Fatal("plain text field should have no format validator")
	}
	if ForField(schema.FieldDef{Key: "x", Type: schema.FieldText, Format: schema.FormatEmail}) == nil {
		t.Fatal("email field should have a format validator")
	}
	if ForField(schema.FieldDef{Key: "x", Type: schema.FieldStructured}) == nil {
		t.Fatal("structured field should validate as address")
	}
}
