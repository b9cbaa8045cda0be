package schema

import (
	"errors"
	"fmt"
)

// IntakeType is the legal-matter mode of an intake. The constants below are
// the only legal values; IsValidIntakeType is the single source of truth and
// no other code may hardcode the mode list.
type IntakeType string

const (
	CustodyUnmarried    IntakeType = "custody_unmarried"
	DivorceNoChildren   IntakeType = "divorce_no_children"
	DivorceWithChildren IntakeType = "divorce_with_children"
)

var ErrUnknownIntakeType = errors.New("unknown intake type")

var schemasByType = map[IntakeType]*SchemaDef{
	CustodyUnmarried:    custodyUnmarriedSchema(),
	DivorceNoChildren:   divorceNoChildrenSchema(),
	DivorceWithChildren: divorceWithChildrenSchema(),
}

// ValidIntakeTypes returns the legal modes in a stable order.
func ValidIntakeTypes() []IntakeType {
	return []IntakeType{CustodyUnmarried, DivorceNoChildren, DivorceWithChildren}
}

func IsValidIntakeType(value string) bool {
	_, ok := schemasByType[IntakeType(value)]
	return ok
}

// GetSchema returns the immutable schema for a mode. An unrecognized mode is
// a configuration error, never user input, so it fails loudly.
func GetSchema(mode IntakeType) (*SchemaDef, error) {
	s, ok := schemasByType[mode]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownIntakeType, string(mode))
	}
	return s, nil
}
