package schema

// Schema definitions are build-time constants. A SchemaDef is never mutated
// after construction; every mode gets its own SchemaDef value.

type FieldType string

const (
	FieldText        FieldType = "text"
	FieldNumber      FieldType = "number"
	FieldDate        FieldType = "date"
	FieldBoolean     FieldType = "boolean"
	FieldEnum        FieldType = "enum"
	FieldMultiselect FieldType = "multiselect"
	FieldStructured  FieldType = "structured"
	FieldList        FieldType = "list"
)

// Format marks fields whose string value has a well-known shape checked by
// the field validators. Empty means no format validation beyond presence.
type Format string

const (
	FormatNone  Format = ""
	FormatZIP   Format = "zip"
	FormatEmail Format = "email"
	FormatPhone Format = "phone"
)

// Requiredness is either unconditional, conditional ("depends", resolved
// through the reveal table), or off.
type Requiredness string

const (
	Optional Requiredness = "optional"
	Always   Requiredness = "required"
	Depends  Requiredness = "depends"
)

type FieldDef struct {
	Key        string       `json:"key"`
	Label      string       `json:"label"`
	Type       FieldType    `json:"type"`
	Required   Requiredness `json:"required"`
	IsSystem   bool         `json:"is_system,omitempty"`
	Format     Format       `json:"format,omitempty"`
	EnumValues []string     `json:"enum_values,omitempty"`
}

type SectionDef struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	Repeatable bool       `json:"repeatable,omitempty"`
	Fields     []FieldDef `json:"fields"`
}

type SchemaDef struct {
	Type     IntakeType   `json:"type"`
	Version  int          `json:"version"`
	Sections []SectionDef `json:"sections"`
}

// Section returns the section with the given id, or false when the schema
// does not contain it. Callers probe sections that only exist in some modes,
// so a miss is not an error.
func (s *SchemaDef) Section(id string) (*SectionDef, bool) {
	for i := range s.Sections {
		if s.Sections[i].ID == id {
			return &s.Sections[i], true
		}
	}
	return nil, false
}

// FieldByKey scans all sections for the field with the given key.
func (s *SchemaDef) FieldByKey(key string) (*FieldDef, bool) {
	for i := range s.Sections {
		for j := range s.Sections[i].Fields {
			if s.Sections[i].Fields[j].Key == key {
				return &s.Sections[i].Fields[j], true
			}
		}
	}
	return nil, false
}

// SectionIDs returns section ids in declaration order.
func (s *SchemaDef) SectionIDs() []string {
	ids := make([]string, 0, len(s.Sections))
	for i := range s.Sections {
		ids = append(ids, s.Sections[i].ID)
	}
	return ids
}
