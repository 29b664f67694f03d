package kernel

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"spacefleet/internal/pkg/errs"
)

// NameMaxLength bounds names so they fit the varchar(255) key columns.
const NameMaxLength = 255

// ErrNameIsNotConstructed is returned when validating a zero-value Name.
var ErrNameIsNotConstructed = errs.NewValueIsRequiredError("Name must be created via NewName")

// Name is the identity of rockets and missions. Two entities of the same kind
// are the same entity exactly when their names are equal.
//
// Names are case sensitive and kept verbatim: "MARS" and "Mars" are distinct
// missions. A name must contain at least one non-space character and no
// control characters.
//
// Example:
//
//	name, err := kernel.NewName("Red Dragon")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(name) // Red Dragon
type Name struct {
	value string
}

// NewName validates raw and wraps it as a Name.
func NewName(raw string) (Name, error) {
	if strings.TrimSpace(raw) == "" {
		return Name{}, errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(raw); n > NameMaxLength {
		return Name{}, errs.NewValueIsOutOfRangeError("name length", n, 1, NameMaxLength)
	}
	for _, r := range raw {
		if unicode.IsControl(r) {
			return Name{}, errs.NewValueIsInvalidErrorWithCause(
				"name",
				fmt.Errorf("%q contains control characters", raw),
			)
		}
	}
	return Name{value: raw}, nil
}

// MustNewName is NewName for literals known to be valid. It panics otherwise.
func MustNewName(raw string) Name {
	name, err := NewName(raw)
	if err != nil {
		panic(err)
	}
	return name
}

// String returns the name verbatim.
func (n Name) String() string {
	return n.value
}

// IsEqual reports whether both names identify the same entity.
func (n Name) IsEqual(other Name) bool {
	return n.value == other.value
}

// IsZero reports whether n is the zero value.
func (n Name) IsZero() bool {
	return n.value == ""
}

// Validate fails for a zero-value Name.
func (n Name) Validate() error {
	if n.IsZero() {
		return ErrNameIsNotConstructed
	}
	return nil
}
