package schema

// Section constructors shared across modes. Each call builds a fresh value
// so no two SchemaDefs alias the same slices.

func clientIdentitySection(withIntakeDate bool) SectionDef {
	fields := []FieldDef{
		{Key: "client_full_name", Label: "your full legal name", Type: FieldText, Required: Always},
		{Key: "client_dob", Label: "your date of birth", Type: FieldDate, Required: Always},
		{Key: "client_email", Label: "the best email address to reach you", Type: FieldText, Required: Always, Format: FormatEmail},
		{Key: "client_phone", Label: "the best phone number to reach you", Type: FieldText, Required: Always, Format: FormatPhone},
		{Key: "client_address", Label: "your current home address", Type: FieldStructured, Required: Always},
		{Key: "client_county", Label: "the county where you live", Type: FieldText, Required: Always},
		{Key: "client_employment_status", Label: "your current employment situation", Type: FieldEnum, Required: Always,
			EnumValues: []string{"employed", "self_employed", "unemployed", "retired", "student"}},
		{Key: "client_preferred_contact", Label: "how you would like us to contact you", Type: FieldEnum, Required: Always,
			EnumValues: []string{"email", "phone", "text_message"}},
	}
	if withIntakeDate {
		fields = append(fields, FieldDef{Key: "date_of_intake", Label: "date of intake", Type: FieldDate, Required: Always, IsSystem: true})
	}
	return SectionDef{ID: "client_identity", Title: "About You", Fields: fields}
}

func opposingPartySection(title string) SectionDef {
	return SectionDef{ID: "opposing_party", Title: title, Fields: []FieldDef{
		{Key: "opposing_full_name", Label: "the other party's full legal name", Type: FieldText, Required: Always},
		{Key: "opposing_dob", Label: "the other party's date of birth", Type: FieldDate, Required: Optional},
		{Key: "opposing_phone", Label: "a phone number for the other party", Type: FieldText, Required: Optional, Format: FormatPhone},
		{Key: "opposing_address_known", Label: "whether you know where the other party currently lives", Type: FieldBoolean, Required: Always},
		{Key: "opposing_last_known_address", Label: "the other party's last known address", Type: FieldStructured, Required: Depends},
		{Key: "opposing_has_attorney", Label: "whether the other party has hired an attorney", Type: FieldBoolean, Required: Always},
		{Key: "opposing_attorney_name", Label: "the name of the other party's attorney", Type: FieldText, Required: Depends},
	}}
}

func marriageDetailsSection() SectionDef {
	return SectionDef{ID: "marriage_details", Title: "Your Marriage", Fields: []FieldDef{
		{Key: "date_of_marriage", Label: "the date you were married", Type: FieldDate, Required: Always},
		{Key: "state_of_marriage", Label: "the state where you were married", Type: FieldText, Required: Always},
		{Key: "marriage_county", Label: "the county where you were married", Type: FieldText, Required: Always},
		{Key: "currently_cohabitating", Label: "whether you and your spouse currently live together", Type: FieldBoolean, Required: Always},
		{Key: "date_of_separation", Label: "the date you and your spouse separated", Type: FieldDate, Required: Depends},
	}}
}

func childObjectSection() SectionDef {
	return SectionDef{ID: "child_object", Title: "Each Child", Repeatable: true, Fields: []FieldDef{
		{Key: "child_full_name", Label: "the child's full legal name", Type: FieldText, Required: Always},
		{Key: "child_dob", Label: "the child's date of birth", Type: FieldDate, Required: Always},
		{Key: "child_current_residence", Label: "where the child currently lives", Type: FieldEnum, Required: Always,
			EnumValues: []string{"with_me", "with_other_party", "shared", "other"}},
		{Key: "child_school_name", Label: "the child's school", Type: FieldText, Required: Optional},
	}}
}

func assetObjectSection() SectionDef {
	return SectionDef{ID: "asset_object", Title: "Each Asset", Repeatable: true, Fields: []FieldDef{
		{Key: "asset_description", Label: "a short description of the asset", Type: FieldText, Required: Always},
		{Key: "asset_type", Label: "what kind of asset it is", Type: FieldEnum, Required: Always,
			EnumValues: []string{"real_estate", "vehicle", "financial_account", "retirement", "business", "other"}},
		{Key: "asset_estimated_value", Label: "the asset's estimated value in dollars", Type: FieldNumber, Required: Always},
		{Key: "asset_titled_to", Label: "whose name the asset is in", Type: FieldEnum, Required: Always,
			EnumValues: []string{"me", "spouse", "joint"}},
	}}
}

func debtObjectSection() SectionDef {
	return SectionDef{ID: "debt_object", Title: "Each Debt", Repeatable: true, Fields: []FieldDef{
		{Key: "debt_description", Label: "a short description of the debt", Type: FieldText, Required: Always},
		{Key: "debt_type", Label: "what kind of debt it is", Type: FieldEnum, Required: Always,
			EnumValues: []string{"mortgage", "auto_loan", "credit_card", "student_loan", "medical", "other"}},
		{Key: "debt_amount", Label: "roughly how much is owed in dollars", Type: FieldNumber, Required: Always},
		{Key: "debt_responsible", Label: "whose name the debt is in", Type: FieldEnum, Required: Always,
			EnumValues: []string{"me", "spouse", "joint"}},
	}}
}

func divorceDetailsSection() SectionDef {
	return SectionDef{ID: "divorce_details", Title: "Divorce Details", Fields: []FieldDef{
		{Key: "grounds", Label: "the grounds for the divorce", Type: FieldEnum, Required: Always,
			EnumValues: []string{"irretrievably_broken", "adultery", "desertion", "cruelty", "other"}},
		{Key: "seeking_spousal_support", Label: "whether you are seeking spousal support", Type: FieldBoolean, Required: Always},
		{Key: "support_amount_requested", Label: "the monthly support amount you have in mind, in dollars", Type: FieldNumber, Required: Depends},
		{Key: "prior_filings", Label: "whether either of you has filed for divorce before", Type: FieldBoolean, Required: Always},
	}}
}
