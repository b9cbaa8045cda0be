package prompts

import (
	"strings"
	"testing"

	"github.com/lumenlaw/intake-backend/internal/intake/completeness"
	"github.com/lumenlaw/intake-backend/internal/intake/schema"
)

func libFor(t *testing.T, mode schema.IntakeType) (*schema.SchemaDef, schema.RevealTable, Library) {
	t.Helper()
	sc, err := schema.GetSchema(mode)
	if err != nil {
		t.Fatalf("GetSchema(%s): %v", mode, err)
	}
	reveals, err := schema.GetReveals(mode)
	if err != nil {
		t.Fatalf("GetReveals(%s): %v", mode, err)
	}
	return sc, reveals, GenerateFromSchema(sc, reveals)
}

func TestCoverageHoldsForEveryMode(t *testing.T) {
	for _, mode := range schema.ValidIntakeTypes() {
		sc, _, lib := libFor(t, mode)
		if err := AssertCoverage(sc, lib); err != nil {
			t.Fatalf("coverage for %s: %v", mode, err)
		}
	}
}

func TestCoverageDetectsGaps(t *testing.T) {
	sc, _, _ := libFor(t, schema.CustodyUnmarried)
	if err := AssertCoverage(sc, Library{byField: map[string]Prompt{}}); err == nil {
		t.Fatal("an empty library must fail coverage")
	}
}

func TestSystemFieldsGetNoPrompt(t *testing.T) {
	_, _, lib := libFor(t, schema.CustodyUnmarried)
	if _, ok := lib.ForField("date_of_intake"); ok {
		t.Fatal("system fields must not be prompted")
	}
}

func TestPhrasingByFieldType(t *testing.T) {
	_, _, lib := libFor(t, schema.DivorceWithChildren)

	boolean, ok := lib.ForField("currently_cohabitating")
	if !ok {
		t.Fatal("no prompt for currently_cohabitating")
	}
	if !strings.Contains(boolean.Question, "yes or no") {
		t.Fatalf("boolean phrasing should offer yes/no, got %q", boolean.Question)
	}

	enum, ok := lib.ForField("grounds")
	if !ok {
		t.Fatal("no prompt for grounds")
	}
	if !strings.Contains(enum.Question, "irretrievably_broken") {
		t.Fatalf("enum phrasing should list the options, got %q", enum.Question)
	}

	date, ok := lib.ForField("date_of_marriage")
	if !ok {
		t.Fatal("no prompt for date_of_marriage")
	}
	if !strings.Contains(date.Question, "date") {
		t.Fatalf("date phrasing should ask for a date, got %q", date.Question)
	}

	structured, ok := lib.ForField("client_address")
	if !ok {
		t.Fatal("no prompt for client_address")
	}
	if !strings.Contains(structured.Question, "ZIP") {
		t.Fatalf("structured phrasing should spell out the sub-fields, got %q", structured.Question)
	}
}

// Reveal symmetry: a field is annotated askable-when-X in the prompt library
// iff the completeness evaluator requires it exactly when its controlling
// field holds X. Both surfaces read the same table; this pins that they
// cannot drift.
func TestRevealSymmetry(t *testing.T) {
	for _, mode := range schema.ValidIntakeTypes() {
		_, reveals, lib := libFor(t, mode)
		for _, p := range lib.Ordered() {
			control, trigger, ok := reveals.RuleFor(p.FieldKey)
			if ok != (p.Reveal != nil) {
				t.Fatalf("mode %s field %s: evaluator conditional=%v but prompt annotation=%v", mode, p.FieldKey, ok, p.Reveal)
			}
			if !ok {
				continue
			}
			if p.Reveal.ControlledBy != control || p.Reveal.TriggerValue != trigger {
				t.Fatalf("mode %s field %s: annotation %+v diverges from table (%s=%v)", mode, p.FieldKey, p.Reveal, control, trigger)
			}
			withTrigger := map[string]any{control: trigger}
			if !completeness.ShouldShowField(p.FieldKey, withTrigger, reveals) {
				t.Fatalf("mode %s field %s: should be visible when %s=%v", mode, p.FieldKey, control, trigger)
			}
			if completeness.ShouldShowField(p.FieldKey, map[string]any{}, reveals) {
				t.Fatalf("mode %s field %s: should be hidden while %s unanswered", mode, p.FieldKey, control)
			}
		}
	}
}

func TestOrderedFollowsSchemaOrder(t *testing.T) {
	sc, _, lib := libFor(t, schema.DivorceNoChildren)
	var want []string
	for _, section := range sc.Sections {
		for _, f := range section.Fields {
			if !f.IsSystem {
				want = append(want, f.Key)
			}
		}
	}
	got := lib.Ordered()
	if len(got) != len(want) {
		t.Fatalf("library has %d prompts, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].FieldKey != want[i] {
			t.Fatalf("prompt %d is %s, want %s", i, got[i].FieldKey, want[i])
		}
	}
}
