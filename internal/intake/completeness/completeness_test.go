package completeness

import (
	"testing"
	"time"

	"github.com/lumenlaw/intake-backend/internal/intake/assertion"
	"github.com/lumenlaw/intake-backend/internal/intake/schema"
)

func mustSchema(t *testing.T, mode schema.IntakeType) (*schema.SchemaDef, schema.RevealTable) {
	t.Helper()
	sc, err := schema.GetSchema(mode)
	if err != nil {
		t.Fatalf("GetSchema(%s): %v", mode, err)
	}
	reveals, err := schema.GetReveals(mode)
	if err != nil {
		t.Fatalf("GetReveals(%s): %v", mode, err)
	}
	return sc, reveals
}

func contains(list []string, key string) bool {
	for _, k := range list {
		if k == key {
			return true
		}
	}
	return false
}

func TestSeparationDateOnlyRequiredWhenSeparated(t *testing.T) {
	sc, reveals := mustSchema(t, schema.DivorceWithChildren)
	base := map[string]any{
		"date_of_marriage":  "2015-06-20",
		"state_of_marriage": "Georgia",
		"marriage_county":   "Fulton",
	}

	t.Run("cohabitating_no_separation_date", func(t *testing.T) {
		payload := map[string]any{"currently_cohabitating": true}
		for k, v := range base {
			payload[k] = v
		}
		missing := MissingFieldsForSection(payload, sc, reveals, "marriage_details")
		if len(missing) != 0 {
			t.Fatalf("marriage_details should be complete while cohabitating, missing=%v", missing)
		}
	})

	t.Run("separated_requires_separation_date", func(t *testing.T) {
		payload := map[string]any{"currently_cohabitating": false}
		for k, v := range base {
			payload[k] = v
		}
		missing := MissingFieldsForSection(payload, sc, reveals, "marriage_details")
		if !contains(missing, "date_of_separation") {
			t.Fatalf("date_of_separation should be missing once separated, missing=%v", missing)
		}
	})

	t.Run("unanswered_control_hides_dependent", func(t *testing.T) {
		missing := MissingFieldsForSection(base, sc, reveals, "marriage_details")
		if contains(missing, "date_of_separation") {
			t.Fatalf("date_of_separation should stay hidden until cohabitation is answered, missing=%v", missing)
		}
		if !contains(missing, "currently_cohabitating") {
			t.Fatalf("currently_cohabitating should be missing, missing=%v", missing)
		}
	})
}

func TestOpposingAddressOnlyRequiredWhenKnown(t *testing.T) {
	sc, reveals := mustSchema(t, schema.CustodyUnmarried)
	payload := map[string]any{
		"opposing_full_name":     "Casey Smith",
		"opposing_address_known": false,
		"opposing_has_attorney":  false,
	}
	if missing := MissingFieldsForSection(payload, sc, reveals, "opposing_party"); len(missing) != 0 {
		t.Fatalf("opposing_party should be complete when address is unknown, missing=%v", missing)
	}

	payload["opposing_address_known"] = true
	missing := MissingFieldsForSection(payload, sc, reveals, "opposing_party")
	if !contains(missing, "opposing_last_known_address") {
		t.Fatalf("opposing_last_known_address should be required once known, missing=%v", missing)
	}
}

func TestRepeatableParallelArrays(t *testing.T) {
	sc, reveals := mustSchema(t, schema.DivorceWithChildren)

	t.Run("length_mismatch_blocks_step", func(t *testing.T) {
		payload := map[string]any{
			"child_full_name":         []any{"A", "B"},
			"child_dob":               []any{"2020-01-01"},
			"child_current_residence": []any{"with_me", "shared"},
		}
		missing := MissingFieldsForSection(payload, sc, reveals, "child_object")
		if !contains(missing, "child_dob") {
			t.Fatalf("short child_dob array should be missing, missing=%v", missing)
		}
	})

	t.Run("one_bad_entry_blocks_field", func(t *testing.T) {
		payload := map[string]any{
			"child_full_name":         []any{"Teddy Smith", "   "},
			"child_dob":               []any{"2020-01-01", "2022-03-05"},
			"child_current_residence": []any{"with_me", "with_me"},
		}
		missing := MissingFieldsForSection(payload, sc, reveals, "child_object")
		if !contains(missing, "child_full_name") {
			t.Fatalf("blank second entry should mark child_full_name missing, missing=%v", missing)
		}
	})

	t.Run("nothing_entered", func(t *testing.T) {
		missing := MissingFieldsForSection(map[string]any{}, sc, reveals, "child_object")
		for _, key := range []string{"child_full_name", "child_dob", "child_current_residence"} {
			if !contains(missing, key) {
				t.Fatalf("%s should be missing on empty payload, missing=%v", key, missing)
			}
		}
		if contains(missing, "child_school_name") {
			t.Fatalf("optional child_school_name should never be missing, missing=%v", missing)
		}
	})

	t.Run("scalar_coerces_to_empty", func(t *testing.T) {
		payload := map[string]any{
			"child_full_name": "Teddy Smith",
		}
		missing := MissingFieldsForSection(payload, sc, reveals, "child_object")
		if !contains(missing, "child_full_name") {
			t.Fatalf("scalar value in repeatable section should coerce to empty, missing=%v", missing)
		}
	})

	t.Run("complete_entries", func(t *testing.T) {
		payload := map[string]any{
			"child_full_name":         []any{"Teddy Smith"},
			"child_dob":               []any{"2020-01-01"},
			"child_current_residence": []any{"with_me"},
		}
		if missing := MissingFieldsForSection(payload, sc, reveals, "child_object"); len(missing) != 0 {
			t.Fatalf("one full entry should complete the step, missing=%v", missing)
		}
	})
}

func TestUnknownSectionIsNoOp(t *testing.T) {
	sc, reveals := mustSchema(t, schema.DivorceNoChildren)
	if missing := MissingFieldsForSection(map[string]any{}, sc, reveals, "child_object"); missing != nil {
		t.Fatalf("probing a section absent from this mode should return empty, got %v", missing)
	}
}

func TestWrappedValuesCountLikeRaw(t *testing.T) {
	sc, reveals := mustSchema(t, schema.DivorceWithChildren)
	payload := map[string]any{
		"date_of_marriage":       assertion.Wrap("2015-06-20", "u1", assertion.SourceChat, time.Now()),
		"state_of_marriage":      assertion.Wrap("Georgia", "u1", assertion.SourceChat, time.Now()),
		"marriage_county":        "Fulton",
		"currently_cohabitating": assertion.Wrap(true, "u1", assertion.SourceChat, time.Now()),
	}
	if missing := MissingFieldsForSection(payload, sc, reveals, "marriage_details"); len(missing) != 0 {
		t.Fatalf("assertion-wrapped values should satisfy the section, missing=%v", missing)
	}
}

func TestMalformedValuesDegradeToMissing(t *testing.T) {
	sc, reveals := mustSchema(t, schema.DivorceWithChildren)
	payload := map[string]any{
		"date_of_marriage":       12345,
		"state_of_marriage":      []any{"Georgia"},
		"marriage_county":        "Fulton",
		"currently_cohabitating": "yes",
	}
	missing := MissingFieldsForSection(payload, sc, reveals, "marriage_details")
	for _, key := range []string{"date_of_marriage", "state_of_marriage", "currently_cohabitating"} {
		if !contains(missing, key) {
			t.Fatalf("malformed %s should degrade to missing, missing=%v", key, missing)
		}
	}
}

func TestIsFieldRequired(t *testing.T) {
	if IsFieldRequired(schema.Always, true) {
		t.Fatal("system fields are never user-required")
	}
	if !IsFieldRequired(schema.Always, false) {
		t.Fatal("required field should be required")
	}
	if !IsFieldRequired(schema.Depends, false) {
		t.Fatal("depends field counts as required; visibility gates it")
	}
	if IsFieldRequired(schema.Optional, false) {
		t.Fatal("optional field should not be required")
	}
}
