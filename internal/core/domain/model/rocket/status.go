package rocket

import (
	"fmt"

	"spacefleet/internal/pkg/errs"
)

// Status represents the operational state of a rocket.
//
//	OnGround ──(assign)──> InSpace <──> InRepair
//	    ^                     │            │
//	    └─────────────────────┴────────────┘
//	OnGround ──(repair)──> InRepair
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// OnGround is the initial status. Rockets on the ground never have a mission.
	OnGround

	// InSpace is reached only through mission assignment or by leaving repair
	// while assigned.
	InSpace

	// InRepair may be entered from the ground or from space.
	InRepair
)

func getStatusCodes() map[Status]string {
	return map[Status]string{
		Unknown:  "UNKNOWN",
		OnGround: "ON_GROUND",
		InSpace:  "IN_SPACE",
		InRepair: "IN_REPAIR",
	}
}

func getStatusLabels() map[Status]string {
	//nolint:exhaustive // Unknown has no label
	return map[Status]string{
		OnGround: "On Ground",
		InSpace:  "In Space",
		InRepair: "In Repair",
	}
}

// Statuses lists every valid status.
func Statuses() []Status {
	return []Status{OnGround, InSpace, InRepair}
}

// ParseStatus converts a status code such as "IN_REPAIR" into a Status.
func ParseStatus(code string) (Status, error) {
	for _, s := range Statuses() {
		if s.String() == code {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"rocket status",
		fmt.Errorf("%q is not one of ON_GROUND, IN_SPACE, IN_REPAIR", code),
	)
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if _, ok := getStatusLabels()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("rocket status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status code, e.g. "IN_SPACE".
func (s Status) String() string {
	if code, ok := getStatusCodes()[s]; ok {
		return code
	}
	return "UNKNOWN"
}

// Label returns the human readable form used in reports, e.g. "In Space".
func (s Status) Label() string {
	if label, ok := getStatusLabels()[s]; ok {
		return label
	}
	return "Unknown"
}
