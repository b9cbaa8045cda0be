package orchestrator

import (
	"fmt"

	"github.com/lumenlaw/intake-backend/internal/intake/prompts"
	"github.com/lumenlaw/intake-backend/internal/intake/schema"
)

// Mode registry: a constructed-once immutable map from mode to config. No
// hidden mutable globals; callers are expected to have checked
// schema.IsValidIntakeType before trusting an external mode string, and an
// invalid mode here fails loudly as a programming error.

var modeConfigs = buildModeConfigs()

func buildModeConfigs() map[schema.IntakeType]ModeConfig {
	out := make(map[schema.IntakeType]ModeConfig, len(schema.ValidIntakeTypes()))
	for _, mode := range schema.ValidIntakeTypes() {
		sc, err := schema.GetSchema(mode)
		if err != nil {
			panic(fmt.Sprintf("mode config: %v", err))
		}
		reveals, err := schema.GetReveals(mode)
		if err != nil {
			panic(fmt.Sprintf("mode config: %v", err))
		}
		gate, err := schema.GetGate(mode)
		if err != nil {
			panic(fmt.Sprintf("mode config: %v", err))
		}
		uiSteps, err := schema.GetUISteps(mode)
		if err != nil {
			panic(fmt.Sprintf("mode config: %v", err))
		}
		out[mode] = ModeConfig{Type: mode, Schema: sc, Reveals: reveals, Gate: gate, UISteps: uiSteps}
	}
	return out
}

// ConfigFor exposes a mode's config, mainly for tests and startup checks.
func ConfigFor(mode schema.IntakeType) (ModeConfig, error) {
	cfg, ok := modeConfigs[mode]
	if !ok {
		return ModeConfig{}, fmt.Errorf("%w: %q", schema.ErrUnknownIntakeType, string(mode))
	}
	return cfg, nil
}

// Orchestrate recomputes the full intake status for a mode and payload.
func Orchestrate(mode schema.IntakeType, payload map[string]any) (*Result, error) {
	cfg, err := ConfigFor(mode)
	if err != nil {
		return nil, err
	}
	return Run(cfg, payload), nil
}

// ValidateIntakeTypePosture re-runs just the gating decision, for
// pre-submission sanity checks.
func ValidateIntakeTypePosture(mode schema.IntakeType, payload map[string]any) (blocked bool, reason string, err error) {
	cfg, err := ConfigFor(mode)
	if err != nil {
		return false, "", err
	}
	if cfg.Gate == nil {
		return false, "", nil
	}
	if answered, value := gateAnswer(payload, cfg.Gate.FieldKey); answered && value != cfg.Gate.Expected {
		return true, cfg.Gate.Reason, nil
	}
	return false, "", nil
}

type SidebarStep struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	IsCompleted bool   `json:"is_completed"`
	IsActive    bool   `json:"is_active"`
}

// BuildSidebarSteps maps the UI-step grouping to sidebar entries. Labels come
// from the friendly-name table and fall back to a generic label for ids it
// does not know; an unmapped id never fails.
func BuildSidebarSteps(mode schema.IntakeType, currentStepKey string, stepStatus map[string]Status) ([]SidebarStep, error) {
	cfg, err := ConfigFor(mode)
	if err != nil {
		return nil, err
	}
	out := make([]SidebarStep, 0, len(cfg.UISteps))
	for _, def := range cfg.UISteps {
		step := SidebarStep{ID: def.ID, Label: schema.StepLabel(def.ID), IsCompleted: true}
		for _, key := range def.SchemaSteps {
			if stepStatus[key] != StatusComplete {
				step.IsCompleted = false
			}
			if key == currentStepKey {
				step.IsActive = true
			}
		}
		out = append(out, step)
	}
	return out, nil
}

// GetChatPromptFields intersects the current step's missing fields with the
// prompt library, preserving schema order, to produce the next questions the
// chat collaborator should ask.
func GetChatPromptFields(mode schema.IntakeType, res *Result, lib prompts.Library) ([]prompts.Prompt, error) {
	if _, err := ConfigFor(mode); err != nil {
		return nil, err
	}
	if res == nil {
		return nil, nil
	}
	missing := make(map[string]bool, len(res.CurrentStepMissingFields))
	for _, key := range res.CurrentStepMissingFields {
		missing[key] = true
	}
	var out []prompts.Prompt
	for _, p := range lib.Ordered() {
		if missing[p.FieldKey] {
			out = append(out, p)
		}
	}
	return out, nil
}
