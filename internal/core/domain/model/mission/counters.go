package mission

import "spacefleet/internal/pkg/errs"

// Counters tallies the rockets attached to a mission.
type Counters struct {
	AllRockets int
	InSpace    int
	InRepair   int
}

// Delta is a signed change to Counters.
type Delta struct {
	AllRockets int
	InSpace    int
	InRepair   int
}

// IsZero reports whether applying d changes nothing.
func (d Delta) IsZero() bool {
	return d == Delta{}
}

// Apply returns c shifted by d.
func (c Counters) Apply(d Delta) Counters {
	return Counters{
		AllRockets: c.AllRockets + d.AllRockets,
		InSpace:    c.InSpace + d.InSpace,
		InRepair:   c.InRepair + d.InRepair,
	}
}

// IsZero reports whether no rocket is counted.
func (c Counters) IsZero() bool {
	return c == Counters{}
}

// Validate checks that every counter is non-negative and that rockets in
// space or in repair are part of AllRockets.
func (c Counters) Validate() error {
	switch {
	case c.AllRockets < 0:
		return errs.NewValueIsOutOfRangeError("allRocketsCount", c.AllRockets, 0, "unbounded")
	case c.InSpace < 0 || c.InSpace > c.AllRockets:
		return errs.NewValueIsOutOfRangeError("inSpaceCount", c.InSpace, 0, c.AllRockets)
	case c.InRepair < 0 || c.InRepair > c.AllRockets-c.InSpace:
		return errs.NewValueIsOutOfRangeError("inRepairCount", c.InRepair, 0, c.AllRockets-c.InSpace)
	}
	return nil
}
