package orchestrator

import (
	"math"

	"github.com/lumenlaw/intake-backend/internal/intake/assertion"
	"github.com/lumenlaw/intake-backend/internal/intake/completeness"
	"github.com/lumenlaw/intake-backend/internal/intake/schema"
	"github.com/lumenlaw/intake-backend/internal/intake/validate"
)

// The orchestrator is a pure function of (mode config, payload). It holds no
// state, performs no I/O, and is safe to call concurrently. Results are
// recomputed fresh on every call; any persisted copy is a display cache and
// loses on conflict.

type Status string

const (
	StatusIncomplete Status = "incomplete"
	StatusComplete   Status = "complete"
)

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type StepStatus struct {
	Key              string       `json:"key"`
	Status           Status       `json:"status"`
	MissingFields    []string     `json:"missing_fields"`
	ValidationErrors []FieldError `json:"validation_errors"`
}

type UIStepStatus struct {
	ID        string `json:"id"`
	Status    Status `json:"status"`
	IsCurrent bool   `json:"is_current"`
}

type Result struct {
	SchemaSteps              []StepStatus   `json:"schema_steps"`
	CurrentSchemaStep        string         `json:"current_schema_step"`
	CurrentStepMissingFields []string       `json:"current_step_missing_fields"`
	UISteps                  []UIStepStatus `json:"ui_steps"`
	CompletedSchemaSteps     []string       `json:"completed_schema_steps"`
	ReadyForReview           bool           `json:"ready_for_review"`
	CompletionPercent        int            `json:"completion_percent"`
	FlowBlocked              bool           `json:"flow_blocked,omitempty"`
	FlowBlockedReason        string         `json:"flow_blocked_reason,omitempty"`
}

// ModeConfig parameterizes the one generic orchestrator per mode: schema,
// reveal table, gate spec and UI-step grouping. Configs are built once at
// init and never mutated.
type ModeConfig struct {
	Type    schema.IntakeType
	Schema  *schema.SchemaDef
	Reveals schema.RevealTable
	Gate    *schema.GateSpec
	UISteps []schema.UIStepDef
}

// Run evaluates the full schema in declared order and derives the complete
// step status. It never panics on malformed payload: wrong-typed values
// degrade to missing, unknown keys are ignored.
func Run(cfg ModeConfig, payload map[string]any) *Result {
	res := &Result{}
	blocked := false

	for i := range cfg.Schema.Sections {
		section := &cfg.Schema.Sections[i]
		if blocked {
			// Fail closed: nothing past a contradicted gate is evaluated.
			res.SchemaSteps = append(res.SchemaSteps, StepStatus{
				Key:    section.ID,
				Status: StatusIncomplete,
			})
			continue
		}

		missing := completeness.MissingFieldsForSection(payload, cfg.Schema, cfg.Reveals, section.ID)
		verrs := validateSection(section, payload)

		status := StatusIncomplete
		if len(missing) == 0 && len(verrs) == 0 {
			status = StatusComplete
		}
		res.SchemaSteps = append(res.SchemaSteps, StepStatus{
			Key:              section.ID,
			Status:           status,
			MissingFields:    missing,
			ValidationErrors: verrs,
		})

		if cfg.Gate != nil && section.ID == cfg.Gate.SectionID {
			if answered, value := gateAnswer(payload, cfg.Gate.FieldKey); answered && value != cfg.Gate.Expected {
				blocked = true
				res.FlowBlocked = true
				res.FlowBlockedReason = cfg.Gate.Reason
			}
		}
	}

	completed := make([]string, 0, len(res.SchemaSteps))
	for _, step := range res.SchemaSteps {
		if step.Status == StatusComplete {
			completed = append(completed, step.Key)
		}
	}
	res.CompletedSchemaSteps = completed
	if len(res.SchemaSteps) > 0 {
		res.CompletionPercent = int(math.Round(100 * float64(len(completed)) / float64(len(res.SchemaSteps))))
	}

	res.CurrentSchemaStep = currentStep(res, cfg)
	for _, step := range res.SchemaSteps {
		if step.Key == res.CurrentSchemaStep {
			res.CurrentStepMissingFields = step.MissingFields
			break
		}
	}

	res.ReadyForReview = !res.FlowBlocked && len(completed) == len(res.SchemaSteps)
	res.UISteps = buildUISteps(cfg.UISteps, res)
	return res
}

// currentStep is the first schema step, in declaration order, that is not
// complete — except that a contradicted gate pins the current step at the
// gate section. All steps complete yields the empty string.
func currentStep(res *Result, cfg ModeConfig) string {
	if res.FlowBlocked && cfg.Gate != nil {
		return cfg.Gate.SectionID
	}
	for _, step := range res.SchemaSteps {
		if step.Status != StatusComplete {
			return step.Key
		}
	}
	return ""
}

// gateAnswer reads the gate field as a boolean. A missing or malformed value
// means the gate is simply unanswered, not contradicted.
func gateAnswer(payload map[string]any, fieldKey string) (answered bool, value bool) {
	b, ok := assertion.Get(payload, fieldKey).(bool)
	return ok, b
}

// validateSection runs format validators against present values only, so a
// missing field is reported as missing by the evaluator, never additionally
// as invalid. Errors never short-circuit: the whole section is checked so
// the UI can show every problem at once.
func validateSection(section *schema.SectionDef, payload map[string]any) []FieldError {
	var errs []FieldError
	for _, f := range section.Fields {
		check := validate.ForField(f)
		if check == nil {
			continue
		}
		if section.Repeatable {
			for _, elem := range validate.AsArray(assertion.Get(payload, f.Key)) {
				elem = assertion.Unwrap(elem)
				if !validate.HasValue(elem, f.Type) {
					continue
				}
				if res := check(elem); !res.Valid {
					errs = append(errs, FieldError{Field: f.Key, Message: res.Message})
					break
				}
			}
			continue
		}
		value := assertion.Get(payload, f.Key)
		if !validate.HasValue(value, f.Type) {
			continue
		}
		if res := check(value); !res.Valid {
			errs = append(errs, FieldError{Field: f.Key, Message: res.Message})
		}
	}
	return errs
}

func buildUISteps(defs []schema.UIStepDef, res *Result) []UIStepStatus {
	statusByKey := make(map[string]Status, len(res.SchemaSteps))
	for _, step := range res.SchemaSteps {
		statusByKey[step.Key] = step.Status
	}
	out := make([]UIStepStatus, 0, len(defs))
	for _, def := range defs {
		ui := UIStepStatus{ID: def.ID, Status: StatusComplete}
		for _, key := range def.SchemaSteps {
			if statusByKey[key] != StatusComplete {
				ui.Status = StatusIncomplete
			}
			if key == res.CurrentSchemaStep {
				ui.IsCurrent = true
			}
		}
		out = append(out, ui)
	}
	return out
}
