package prompts

import (
	"fmt"
	"strings"

	"github.com/lumenlaw/intake-backend/internal/intake/schema"
)

// The prompt library is derived from a schema once at startup, not per
// request. Each non-system field gets one chat prompt whose phrasing is
// keyed by field type, plus a reveal annotation copied from the same reveal
// table the completeness evaluator reads. The annotation says "what becomes
// askable when"; it never re-implements reveal logic.

type Reveal struct {
	ControlledBy string `json:"controlled_by"`
	TriggerValue any    `json:"trigger_value"`
}

type Prompt struct {
	FieldKey  string           `json:"field_key"`
	SectionID string           `json:"section_id"`
	FieldType schema.FieldType `json:"field_type"`
	Question  string           `json:"question"`
	Reveal    *Reveal          `json:"reveal,omitempty"`
}

type Library struct {
	byField map[string]Prompt
	ordered []Prompt
}

// ForField looks up the prompt for a field key.
func (l Library) ForField(key string) (Prompt, bool) {
	p, ok := l.byField[key]
	return p, ok
}

// Ordered returns all prompts in schema declaration order.
func (l Library) Ordered() []Prompt {
	out := make([]Prompt, len(l.ordered))
	copy(out, l.ordered)
	return out
}

func (l Library) Len() int { return len(l.ordered) }

// GenerateFromSchema derives the prompt library for one schema.
func GenerateFromSchema(sc *schema.SchemaDef, reveals schema.RevealTable) Library {
	lib := Library{byField: make(map[string]Prompt)}
	for _, section := range sc.Sections {
		for _, f := range section.Fields {
			if f.IsSystem {
				continue
			}
			p := Prompt{
				FieldKey:  f.Key,
				SectionID: section.ID,
				FieldType: f.Type,
				Question:  questionFor(f, section),
			}
			if control, trigger, ok := reveals.RuleFor(f.Key); ok {
				p.Reveal = &Reveal{ControlledBy: control, TriggerValue: trigger}
			}
			lib.byField[f.Key] = p
			lib.ordered = append(lib.ordered, p)
		}
	}
	return lib
}

func questionFor(f schema.FieldDef, section schema.SectionDef) string {
	label := f.Label
	if label == "" {
		label = strings.ReplaceAll(f.Key, "_", " ")
	}
	switch f.Type {
	case schema.FieldDate:
		return fmt.Sprintf("What is %s? Any clear date works, like 2020-01-15.", label)
	case schema.FieldNumber:
		return fmt.Sprintf("What is %s? A plain number is fine.", label)
	case schema.FieldBoolean:
		return fmt.Sprintf("Tell me %s — a simple yes or no works.", label)
	case schema.FieldEnum:
		return fmt.Sprintf("Tell me %s. Your options are: %s.", label, strings.Join(f.EnumValues, ", "))
	case schema.FieldMultiselect:
		return fmt.Sprintf("Tell me %s. You can pick more than one of: %s.", label, strings.Join(f.EnumValues, ", "))
	case schema.FieldStructured:
		return fmt.Sprintf("What is %s? Please include street, city, state, and ZIP.", label)
	case schema.FieldList:
		if section.Repeatable {
			return fmt.Sprintf("For each one, tell me %s.", label)
		}
		return fmt.Sprintf("Tell me %s, listing each one.", label)
	default:
		if section.Repeatable {
			return fmt.Sprintf("For each one, what is %s?", label)
		}
		return fmt.Sprintf("What is %s?", label)
	}
}

// AssertCoverage walks the schema and fails when any non-system field or any
// section with non-system fields lacks a generated prompt. Run once at
// process start; a gap is a deployment defect, not a runtime condition.
func AssertCoverage(sc *schema.SchemaDef, lib Library) error {
	for _, section := range sc.Sections {
		covered := 0
		askable := 0
		for _, f := range section.Fields {
			if f.IsSystem {
				continue
			}
			askable++
			if _, ok := lib.ForField(f.Key); !ok {
				return fmt.Errorf("prompt coverage: schema %q section %q field %q has no prompt", sc.Type, section.ID, f.Key)
			}
			covered++
		}
		if askable > 0 && covered == 0 {
			return fmt.Errorf("prompt coverage: schema %q section %q has no prompts", sc.Type, section.ID)
		}
	}
	return nil
}
