package schema

// Two-layer step model: schema steps are one per backend section and drive
// validation; UI steps are the coarser user-facing grouping. The mapping is
// static per mode.

type UIStepDef struct {
	ID          string
	SchemaSteps []string
}

var uiStepsByType = map[IntakeType][]UIStepDef{
	CustodyUnmarried: {
		{ID: "basics", SchemaSteps: []string{"intake_metadata"}},
		{ID: "about_you", SchemaSteps: []string{"client_identity"}},
		{ID: "other_parent", SchemaSteps: []string{"opposing_party"}},
		{ID: "children", SchemaSteps: []string{"children_info", "child_object"}},
		{ID: "custody", SchemaSteps: []string{"custody_details"}},
	},
	DivorceNoChildren: {
		{ID: "about_you", SchemaSteps: []string{"client_identity"}},
		{ID: "spouse", SchemaSteps: []string{"opposing_party"}},
		{ID: "marriage", SchemaSteps: []string{"marriage_details", "children_gate"}},
		{ID: "finances", SchemaSteps: []string{"asset_object", "debt_object"}},
		{ID: "divorce", SchemaSteps: []string{"divorce_details"}},
	},
	DivorceWithChildren: {
		{ID: "about_you", SchemaSteps: []string{"client_identity"}},
		{ID: "spouse", SchemaSteps: []string{"opposing_party"}},
		{ID: "marriage", SchemaSteps: []string{"marriage_details"}},
		{ID: "children", SchemaSteps: []string{"children_gate", "child_object", "custody_preferences"}},
		{ID: "finances", SchemaSteps: []string{"asset_object", "debt_object"}},
		{ID: "divorce", SchemaSteps: []string{"divorce_details"}},
	},
}

// GetUISteps returns the UI-step grouping for a mode. Same failure contract
// as GetSchema.
func GetUISteps(mode IntakeType) ([]UIStepDef, error) {
	steps, ok := uiStepsByType[mode]
	if !ok {
		return nil, ErrUnknownIntakeType
	}
	return steps, nil
}

var stepLabels = map[string]string{
	"basics":       "Case Basics",
	"about_you":    "About You",
	"other_parent": "The Other Parent",
	"spouse":       "Your Spouse",
	"marriage":     "Your Marriage",
	"children":     "Children",
	"custody":      "Custody",
	"finances":     "Assets & Debts",
	"divorce":      "Divorce Details",
}

const fallbackStepLabel = "Details"

// StepLabel returns the friendly label for a UI step id. Unmapped ids fall
// back to a generic label rather than failing.
func StepLabel(id string) string {
	if label, ok := stepLabels[id]; ok {
		return label
	}
	return fallbackStepLabel
}
