package queries

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"spacefleet/internal/pkg/guard"
)

var ErrGetMissionsReportQueryIsNotConstructed = errors.New(
	"GetMissionsReportQuery must be created via NewGetMissionsReportQuery constructor",
)

// GetMissionsReportQuery lists every mission with its rockets, ordered by
// rocket count descending and then by name descending.
//
// Example:
//
//	report, err := handler.Handle(ctx, NewGetMissionsReportQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Print(report)
//	// Transit - IN_PROGRESS - 2 dragons
//	//   Dragon 1 - In Space
//	//   Dragon 2 - In Repair
//	// Mars - SCHEDULED - 0 dragons
type GetMissionsReportQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMissionsReportQuery creates the report query.
func NewGetMissionsReportQuery() GetMissionsReportQuery {
	return GetMissionsReportQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMissionsReportQuery) Validate() error {
	return q.guard.Validate(ErrGetMissionsReportQueryIsNotConstructed)
}

// MissionsReport is the sorted fleet snapshot.
type MissionsReport struct {
	Missions []MissionView
}

// WriteTo renders the report as text, one line per mission followed by one
// indented line per rocket.
func (r MissionsReport) WriteTo(w io.Writer) (int64, error) {
	var written int64
	for _, m := range r.Missions {
		n, err := fmt.Fprintf(w, "%s - %s - %d dragons\n", m.Name, m.Status, m.AllRocketsCount)
		written += int64(n)
		if err != nil {
			return written, err
		}
		for _, rocketView := range m.Rockets {
			n, err = fmt.Fprintf(w, "  %s - %s\n", rocketView.Name, rocketView.Status.Label())
			written += int64(n)
			if err != nil {
				return written, err
			}
		}
	}
	return written, nil
}

// String returns the text rendering of the report.
func (r MissionsReport) String() string {
	var b strings.Builder
	_, _ = r.WriteTo(&b)
	return b.String()
}
