package schema

// The three mode schemas. Section order here is evaluation order: the
// orchestrator walks sections exactly as declared and never reorders based
// on payload contents.

func custodyUnmarriedSchema() *SchemaDef {
	return &SchemaDef{
		Type:    CustodyUnmarried,
		Version: 1,
		Sections: []SectionDef{
			{ID: "intake_metadata", Title: "Case Basics", Fields: []FieldDef{
				{Key: "case_county", Label: "the county where the case would be filed", Type: FieldText, Required: Always},
				{Key: "case_state", Label: "the state where the case would be filed", Type: FieldText, Required: Always},
				{Key: "relationship_to_children", Label: "your relationship to the children", Type: FieldEnum, Required: Always,
					EnumValues: []string{"parent", "grandparent", "legal_guardian", "other"}},
				{Key: "primary_goal", Label: "what you are hoping the court will do", Type: FieldEnum, Required: Always,
					EnumValues: []string{"establish_custody", "modify_custody", "visitation", "legitimation"}},
				{Key: "date_of_intake", Label: "date of intake", Type: FieldDate, Required: Always, IsSystem: true},
			}},
			clientIdentitySection(false),
			opposingPartySection("The Other Parent"),
			{ID: "children_info", Title: "Your Children", Fields: []FieldDef{
				{Key: "has_minor_children", Label: "whether you have children under 18 with the other parent", Type: FieldBoolean, Required: Always},
				{Key: "number_of_children", Label: "how many children under 18 you share", Type: FieldNumber, Required: Depends},
				{Key: "paternity_established", Label: "whether paternity has been legally established", Type: FieldBoolean, Required: Always},
				{Key: "paternity_method", Label: "how paternity was established", Type: FieldEnum, Required: Depends,
					EnumValues: []string{"birth_certificate", "court_order", "acknowledgment_form"}},
			}},
			childObjectSection(),
			{ID: "custody_details", Title: "Custody", Fields: []FieldDef{
				{Key: "current_arrangement", Label: "how parenting time currently works day to day", Type: FieldText, Required: Always},
				{Key: "desired_arrangement", Label: "the arrangement you are asking for", Type: FieldEnum, Required: Always,
					EnumValues: []string{"sole_custody", "joint_custody", "visitation_only"}},
				{Key: "safety_concerns", Label: "whether you have safety concerns about the other parent", Type: FieldBoolean, Required: Always},
				{Key: "safety_concerns_description", Label: "a description of your safety concerns", Type: FieldText, Required: Depends},
				{Key: "police_or_dfcs_involved", Label: "whether police or child services have ever been involved", Type: FieldBoolean, Required: Always},
			}},
		},
	}
}

func divorceNoChildrenSchema() *SchemaDef {
	return &SchemaDef{
		Type:    DivorceNoChildren,
		Version: 1,
		Sections: []SectionDef{
			clientIdentitySection(true),
			opposingPartySection("Your Spouse"),
			marriageDetailsSection(),
			{ID: "children_gate", Title: "Children", Fields: []FieldDef{
				{Key: "has_minor_children", Label: "whether you and your spouse have children under 18 together", Type: FieldBoolean, Required: Always},
			}},
			assetObjectSection(),
			debtObjectSection(),
			divorceDetailsSection(),
		},
	}
}

func divorceWithChildrenSchema() *SchemaDef {
	return &SchemaDef{
		Type:    DivorceWithChildren,
		Version: 1,
		Sections: []SectionDef{
			clientIdentitySection(true),
			opposingPartySection("Your Spouse"),
			marriageDetailsSection(),
			{ID: "children_gate", Title: "Children", Fields: []FieldDef{
				{Key: "has_minor_children", Label: "whether you and your spouse have children under 18 together", Type: FieldBoolean, Required: Always},
				{Key: "number_of_children", Label: "how many children under 18 you share", Type: FieldNumber, Required: Depends},
			}},
			childObjectSection(),
			{ID: "custody_preferences", Title: "Custody Preferences", Fields: []FieldDef{
				{Key: "desired_custody", Label: "the custody arrangement you are asking for", Type: FieldEnum, Required: Always,
					EnumValues: []string{"sole_custody", "joint_custody", "undecided"}},
				{Key: "child_support_interest", Label: "whether child support is part of what you need resolved", Type: FieldBoolean, Required: Always},
				{Key: "existing_custody_order", Label: "whether any custody order already exists for these children", Type: FieldBoolean, Required: Always},
				{Key: "existing_order_details", Label: "what the existing order says and which court issued it", Type: FieldText, Required: Depends},
			}},
			assetObjectSection(),
			debtObjectSection(),
			divorceDetailsSection(),
		},
	}
}

// GateSpec designates the boolean field whose polarity decides whether this
// mode matches the client's actual situation. A contradicting answer blocks
// the flow fail-closed rather than letting the client continue under the
// wrong questionnaire.
type GateSpec struct {
	SectionID string
	FieldKey  string
	Expected  bool
	Reason    string
}

var gatesByType = map[IntakeType]*GateSpec{
	CustodyUnmarried: {
		SectionID: "children_info",
		FieldKey:  "has_minor_children",
		Expected:  true,
		Reason:    "This intake is for parents with children under 18. Based on your answer, a different intake type fits your situation — we'll get you to the right place.",
	},
	DivorceNoChildren: {
		SectionID: "children_gate",
		FieldKey:  "has_minor_children",
		Expected:  false,
		Reason:    "You told us you have children under 18 together. Your divorce needs the version of this intake that covers custody and child support — we'll get you to the right place.",
	},
	DivorceWithChildren: {
		SectionID: "children_gate",
		FieldKey:  "has_minor_children",
		Expected:  true,
		Reason:    "You told us you don't have children under 18 together. Your divorce doesn't need the custody questions in this intake — we'll get you to the right place.",
	},
}

// GetGate returns the gate spec for a mode. Same failure contract as
// GetSchema.
func GetGate(mode IntakeType) (*GateSpec, error) {
	g, ok := gatesByType[mode]
	if !ok {
		return nil, ErrUnknownIntakeType
	}
	return g, nil
}
