package mission

import (
	"fmt"

	"spacefleet/internal/pkg/errs"
)

// Status represents the aggregate state of a mission.
//
//	Scheduled <──> InProgress <──> Pending
//	     │              │             │
//	     └──────────────┴─────────────┴──(finish)──> Ended
type Status int

const (
	// Unknown catches uninitialized Status values.
	Unknown Status = iota

	// Scheduled missions have no rockets.
	Scheduled

	// InProgress missions have rockets and none of them is in repair.
	InProgress

	// Pending missions have at least one rocket in repair.
	Pending

	// Ended missions are closed and accept no further assignments.
	Ended
)

func getStatusCodes() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Scheduled:  "SCHEDULED",
		InProgress: "IN_PROGRESS",
		Pending:    "PENDING",
		Ended:      "ENDED",
	}
}

// Statuses lists every valid status.
func Statuses() []Status {
	return []Status{Scheduled, InProgress, Pending, Ended}
}

// ParseStatus converts a status code such as "PENDING" into a Status.
func ParseStatus(code string) (Status, error) {
	for _, s := range Statuses() {
		if s.String() == code {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"mission status",
		fmt.Errorf("%q is not one of SCHEDULED, IN_PROGRESS, PENDING, ENDED", code),
	)
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s < Scheduled || s > Ended {
		return errs.NewValueIsInvalidErrorWithCause("mission status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the status code, e.g. "IN_PROGRESS".
func (s Status) String() string {
	if code, ok := getStatusCodes()[s]; ok {
		return code
	}
	return "UNKNOWN"
}

// StatusFor derives the status of an open mission from its counters.
// It never yields Ended.
func StatusFor(c Counters) Status {
	switch {
	case c.AllRockets == 0:
		return Scheduled
	case c.InRepair > 0:
		return Pending
	default:
		return InProgress
	}
}
