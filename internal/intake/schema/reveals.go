package schema

// Progressive disclosure lives here and only here. Each mode has one
// RevealTable; the completeness evaluator uses it to decide what is required
// and the prompt generator uses it to decide what is askable. Both must read
// the same table or the two surfaces drift.

// RevealRule reveals AffectedFields when the controlling field's value
// equals TriggerValue.
type RevealRule struct {
	TriggerValue   any
	AffectedFields []string
}

// RevealTable maps a controlling field key to its reveal rules.
type RevealTable map[string][]RevealRule

// RuleFor returns the controlling field and trigger value governing the
// given field, or ok=false when the field is unconditional.
func (t RevealTable) RuleFor(fieldKey string) (controlledBy string, trigger any, ok bool) {
	for control, rules := range t {
		for _, r := range rules {
			for _, f := range r.AffectedFields {
				if f == fieldKey {
					return control, r.TriggerValue, true
				}
			}
		}
	}
	return "", nil, false
}

func custodyUnmarriedReveals() RevealTable {
	return RevealTable{
		"opposing_address_known": {{TriggerValue: true, AffectedFields: []string{"opposing_last_known_address"}}},
		"opposing_has_attorney":  {{TriggerValue: true, AffectedFields: []string{"opposing_attorney_name"}}},
		"has_minor_children":     {{TriggerValue: true, AffectedFields: []string{"number_of_children"}}},
		"paternity_established":  {{TriggerValue: true, AffectedFields: []string{"paternity_method"}}},
		"safety_concerns":        {{TriggerValue: true, AffectedFields: []string{"safety_concerns_description"}}},
	}
}

func divorceNoChildrenReveals() RevealTable {
	return RevealTable{
		"opposing_address_known":  {{TriggerValue: true, AffectedFields: []string{"opposing_last_known_address"}}},
		"opposing_has_attorney":   {{TriggerValue: true, AffectedFields: []string{"opposing_attorney_name"}}},
		"currently_cohabitating":  {{TriggerValue: false, AffectedFields: []string{"date_of_separation"}}},
		"seeking_spousal_support": {{TriggerValue: true, AffectedFields: []string{"support_amount_requested"}}},
	}
}

func divorceWithChildrenReveals() RevealTable {
	return RevealTable{
		"opposing_address_known":  {{TriggerValue: true, AffectedFields: []string{"opposing_last_known_address"}}},
		"opposing_has_attorney":   {{TriggerValue: true, AffectedFields: []string{"opposing_attorney_name"}}},
		"currently_cohabitating":  {{TriggerValue: false, AffectedFields: []string{"date_of_separation"}}},
		"seeking_spousal_support": {{TriggerValue: true, AffectedFields: []string{"support_amount_requested"}}},
		"has_minor_children":      {{TriggerValue: true, AffectedFields: []string{"number_of_children"}}},
		"existing_custody_order":  {{TriggerValue: true, AffectedFields: []string{"existing_order_details"}}},
	}
}

var revealsByType = map[IntakeType]RevealTable{
	CustodyUnmarried:    custodyUnmarriedReveals(),
	DivorceNoChildren:   divorceNoChildrenReveals(),
	DivorceWithChildren: divorceWithChildrenReveals(),
}

// GetReveals returns the reveal table for a mode. Same failure contract as
// GetSchema.
func GetReveals(mode IntakeType) (RevealTable, error) {
	t, ok := revealsByType[mode]
	if !ok {
		return nil, ErrUnknownIntakeType
	}
	return t, nil
}
