package schema

import "testing"

func TestIsValidIntakeType(t *testing.T) {
	cases := []struct {
		value string
		want  bool
	}{
		{value: "custody_unmarried", want: true},
		{value: "divorce_no_children", want: true},
		{value: "divorce_with_children", want: true},
		{value: "divorce", want: false},
		{value: "", want: false},
		{value: "CUSTODY_UNMARRIED", want: false},
	}
	for _, tc := range cases {
		if got := IsValidIntakeType(tc.value); got != tc.want {
			t.Fatalf("IsValidIntakeType(%q)=%v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestGetSchemaUnknownMode(t *testing.T) {
	if _, err := GetSchema(IntakeType("nope")); err == nil {
		t.Fatal("unknown mode must error")
	}
}

func TestFieldKeysUniquePerSchema(t *testing.T) {
	for _, mode := range ValidIntakeTypes() {
		sc, err := GetSchema(mode)
		if err != nil {
			t.Fatalf("GetSchema(%s): %v", mode, err)
		}
		seen := map[string]string{}
		for _, section := range sc.Sections {
			for _, f := range section.Fields {
				if prev, dup := seen[f.Key]; dup {
					t.Fatalf("mode %s: field %q declared in both %s and %s", mode, f.Key, prev, section.ID)
				}
				seen[f.Key] = section.ID
			}
		}
	}
}

func TestRevealTablesReferenceRealFields(t *testing.T) {
	for _, mode := range ValidIntakeTypes() {
		sc, err := GetSchema(mode)
		if err != nil {
			t.Fatalf("GetSchema(%s): %v", mode, err)
		}
		reveals, err := GetReveals(mode)
		if err != nil {
			t.Fatalf("GetReveals(%s): %v", mode, err)
		}
		for control, rules := range reveals {
			if _, ok := sc.FieldByKey(control); !ok {
				t.Fatalf("mode %s: reveal control %q not in schema", mode, control)
			}
			for _, rule := range rules {
				for _, key := range rule.AffectedFields {
					f, ok := sc.FieldByKey(key)
					if !ok {
						t.Fatalf("mode %s: revealed field %q not in schema", mode, key)
					}
					if f.Required != Depends {
						t.Fatalf("mode %s: revealed field %q should be declared depends", mode, key)
					}
				}
			}
		}
	}
}

func TestDependsFieldsHaveRevealRules(t *testing.T) {
	for _, mode := range ValidIntakeTypes() {
		sc, err := GetSchema(mode)
		if err != nil {
			t.Fatalf("GetSchema(%s): %v", mode, err)
		}
		reveals, err := GetReveals(mode)
		if err != nil {
			t.Fatalf("GetReveals(%s): %v", mode, err)
		}
		for _, section := range sc.Sections {
			for _, f := range section.Fields {
				if f.Required != Depends {
					continue
				}
				if _, _, ok := reveals.RuleFor(f.Key); !ok {
					t.Fatalf("mode %s: depends field %q has no reveal rule", mode, f.Key)
				}
			}
		}
	}
}

func TestGatesAndUIStepsDefined(t *testing.T) {
	for _, mode := range ValidIntakeTypes() {
		gate, err := GetGate(mode)
		if err != nil {
			t.Fatalf("GetGate(%s): %v", mode, err)
		}
		if gate.Reason == "" {
			t.Fatalf("mode %s: gate needs a client-facing reason", mode)
		}
		steps, err := GetUISteps(mode)
		if err != nil {
			t.Fatalf("GetUISteps(%s): %v", mode, err)
		}
		sc, _ := GetSchema(mode)
		covered := map[string]bool{}
		for _, ui := range steps {
			for _, key := range ui.SchemaSteps {
				covered[key] = true
			}
		}
		for _, section := range sc.Sections {
			if !covered[section.ID] {
				t.Fatalf("mode %s: section %q missing from UI-step mapping", mode, section.ID)
			}
		}
	}
}

func TestSchemaValuesAreDistinctPerMode(t *testing.T) {
	a, _ := GetSchema(DivorceNoChildren)
	b, _ := GetSchema(DivorceWithChildren)
	if a == b {
		t.Fatal("modes must be distinct SchemaDef values")
	}
	if _, ok := a.Section("child_object"); ok {
		t.Fatal("divorce_no_children must not carry the child_object section")
	}
	if _, ok := b.Section("child_object"); !ok {
		t.Fatal("divorce_with_children must carry the child_object section")
	}
}
