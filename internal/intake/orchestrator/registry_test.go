package orchestrator

import (
	"errors"
	"testing"

	"github.com/lumenlaw/intake-backend/internal/intake/prompts"
	"github.com/lumenlaw/intake-backend/internal/intake/schema"
)

func TestOrchestrateUnknownModeFailsLoudly(t *testing.T) {
	_, err := Orchestrate(schema.IntakeType("divorce_with_pets"), map[string]any{})
	if err == nil {
		t.Fatal("unknown mode must error, never silently no-op")
	}
	if !errors.Is(err, schema.ErrUnknownIntakeType) {
		t.Fatalf("error should wrap ErrUnknownIntakeType, got %v", err)
	}
}

func TestConfigsExistForEveryMode(t *testing.T) {
	for _, mode := range schema.ValidIntakeTypes() {
		cfg, err := ConfigFor(mode)
		if err != nil {
			t.Fatalf("ConfigFor(%s): %v", mode, err)
		}
		if cfg.Schema == nil || cfg.Reveals == nil || cfg.Gate == nil || len(cfg.UISteps) == 0 {
			t.Fatalf("mode %s config incomplete: %+v", mode, cfg)
		}
		if _, ok := cfg.Schema.Section(cfg.Gate.SectionID); !ok {
			t.Fatalf("mode %s gate section %q not in schema", mode, cfg.Gate.SectionID)
		}
		if _, ok := cfg.Schema.FieldByKey(cfg.Gate.FieldKey); !ok {
			t.Fatalf("mode %s gate field %q not in schema", mode, cfg.Gate.FieldKey)
		}
		for _, ui := range cfg.UISteps {
			for _, key := range ui.SchemaSteps {
				if _, ok := cfg.Schema.Section(key); !ok {
					t.Fatalf("mode %s UI step %s references unknown section %q", mode, ui.ID, key)
				}
			}
		}
	}
}

func TestValidateIntakeTypePosture(t *testing.T) {
	cases := []struct {
		name    string
		mode    schema.IntakeType
		payload map[string]any
		blocked bool
	}{
		{
			name:    "with_children_contradicted",
			mode:    schema.DivorceWithChildren,
			payload: map[string]any{"has_minor_children": false},
			blocked: true,
		},
		{
			name:    "with_children_confirmed",
			mode:    schema.DivorceWithChildren,
			payload: map[string]any{"has_minor_children": true},
			blocked: false,
		},
		{
			name:    "no_children_contradicted",
			mode:    schema.DivorceNoChildren,
			payload: map[string]any{"has_minor_children": true},
			blocked: true,
		},
		{
			name:    "unanswered",
			mode:    schema.CustodyUnmarried,
			payload: map[string]any{},
			blocked: false,
		},
		{
			name:    "malformed_gate_value",
			mode:    schema.CustodyUnmarried,
			payload: map[string]any{"has_minor_children": "no"},
			blocked: false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			blocked, reason, err := ValidateIntakeTypePosture(tc.mode, tc.payload)
			if err != nil {
				t.Fatalf("ValidateIntakeTypePosture: %v", err)
			}
			if blocked != tc.blocked {
				t.Fatalf("blocked=%v, want %v", blocked, tc.blocked)
			}
			if blocked && reason == "" {
				t.Fatal("blocked posture must carry a reason")
			}
		})
	}
}

func TestBuildSidebarSteps(t *testing.T) {
	status := map[string]Status{
		"client_identity": StatusComplete,
		"opposing_party":  StatusIncomplete,
	}
	steps, err := BuildSidebarSteps(schema.DivorceNoChildren, "opposing_party", status)
	if err != nil {
		t.Fatalf("BuildSidebarSteps: %v", err)
	}
	if len(steps) != 5 {
		t.Fatalf("got %d sidebar steps, want 5", len(steps))
	}
	if steps[0].ID != "about_you" || !steps[0].IsCompleted || steps[0].IsActive {
		t.Fatalf("about_you=%+v, want completed and inactive", steps[0])
	}
	if steps[1].ID != "spouse" || steps[1].IsCompleted || !steps[1].IsActive {
		t.Fatalf("spouse=%+v, want active and not completed", steps[1])
	}
	for _, step := range steps {
		if step.Label == "" {
			t.Fatalf("step %s has no label", step.ID)
		}
	}
}

func TestSidebarLabelFallback(t *testing.T) {
	if got := schema.StepLabel("not_a_real_step"); got != "Details" {
		t.Fatalf("unmapped label=%q, want Details", got)
	}
}

func TestGetChatPromptFields(t *testing.T) {
	sc, err := schema.GetSchema(schema.DivorceNoChildren)
	if err != nil {
		t.Fatalf("GetSchema: %v", err)
	}
	reveals, err := schema.GetReveals(schema.DivorceNoChildren)
	if err != nil {
		t.Fatalf("GetReveals: %v", err)
	}
	lib := prompts.GenerateFromSchema(sc, reveals)

	res, err := Orchestrate(schema.DivorceNoChildren, map[string]any{})
	if err != nil {
		t.Fatalf("Orchestrate: %v", err)
	}
	next, err := GetChatPromptFields(schema.DivorceNoChildren, res, lib)
	if err != nil {
		t.Fatalf("GetChatPromptFields: %v", err)
	}
	if len(next) == 0 {
		t.Fatal("empty intake should yield prompts for the current step")
	}
	missing := map[string]bool{}
	for _, key := range res.CurrentStepMissingFields {
		missing[key] = true
	}
	for _, p := range next {
		if !missing[p.FieldKey] {
			t.Fatalf("prompt %s is not among the current step's missing fields", p.FieldKey)
		}
		if p.SectionID != res.CurrentSchemaStep {
			t.Fatalf("prompt %s belongs to section %s, current is %s", p.FieldKey, p.SectionID, res.CurrentSchemaStep)
		}
	}
}
