package mission

import (
	"errors"
	"fmt"

	"spacefleet/internal/core/domain/model/kernel"
	"spacefleet/internal/pkg/errs"
	"spacefleet/internal/pkg/guard"
)

var (
	// ErrMissionIsNotConstructed is returned when using a zero-value Mission.
	ErrMissionIsNotConstructed = errors.New("Mission must be created via NewMission or RestoreMission")

	// ErrCannotAssignToEndedMission is returned when assigning a rocket to an
	// ended mission.
	ErrCannotAssignToEndedMission = errors.New("cannot assign to ended mission")

	// ErrStatusDoesNotMatchCounters is returned when restoring a mission whose
	// stored status disagrees with its counters.
	ErrStatusDoesNotMatchCounters = errors.New("mission status does not match its counters")
)

// Mission is an immutable record. Apply and End return updated copies.
type Mission struct {
	name     kernel.Name
	status   Status
	counters Counters

	guard guard.ConstructorGuard
}

// NewMission creates a scheduled mission with zero counters.
func NewMission(name kernel.Name) (*Mission, error) {
	if err := name.Validate(); err != nil {
		return nil, err
	}
	return &Mission{
		name:   name,
		status: Scheduled,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// RestoreMission rebuilds a mission from persisted state. The status must be
// the one the counters imply, or Ended with zero counters.
func RestoreMission(name kernel.Name, status Status, counters Counters) (*Mission, error) {
	if err := errors.Join(name.Validate(), status.Validate(), counters.Validate()); err != nil {
		return nil, err
	}
	consistent := status == StatusFor(counters)
	if status == Ended {
		consistent = counters.IsZero()
	}
	if !consistent {
		return nil, fmt.Errorf("%w: %s is %s with counters %+v", ErrStatusDoesNotMatchCounters, name, status, counters)
	}
	return &Mission{
		name:     name,
		status:   status,
		counters: counters,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the mission was built through a constructor.
func (m *Mission) Validate() error {
	if m == nil {
		return ErrMissionIsNotConstructed
	}
	return m.guard.Validate(ErrMissionIsNotConstructed)
}

// Name returns the mission's identity.
func (m *Mission) Name() kernel.Name {
	return m.name
}

// Status returns the mission status.
func (m *Mission) Status() Status {
	return m.status
}

// Counters returns the rocket tallies.
func (m *Mission) Counters() Counters {
	return m.counters
}

// AllRocketsCount returns the number of rockets attached to the mission.
func (m *Mission) AllRocketsCount() int {
	return m.counters.AllRockets
}

// InSpaceCount returns the number of attached rockets in space.
func (m *Mission) InSpaceCount() int {
	return m.counters.InSpace
}

// InRepairCount returns the number of attached rockets in repair.
func (m *Mission) InRepairCount() int {
	return m.counters.InRepair
}

// IsEnded reports whether the mission was finished.
func (m *Mission) IsEnded() bool {
	return m.status == Ended
}

// ValidateAssign fails with ErrCannotAssignToEndedMission once the mission has ended.
func (m *Mission) ValidateAssign() error {
	if m.IsEnded() {
		return fmt.Errorf("%w: mission with name '%s' already ended", ErrCannotAssignToEndedMission, m.name)
	}
	return nil
}

// Apply returns a copy of m with d added to its counters and the status
// recomputed. Ended missions have no rockets left to count.
func (m *Mission) Apply(d Delta) (*Mission, error) {
	if m.IsEnded() && !d.IsZero() {
		return nil, errs.NewOperationNotAllowedError(
			fmt.Sprintf("mission with name '%s' already ended, its counters are frozen", m.name),
		)
	}
	counters := m.counters.Apply(d)
	if err := counters.Validate(); err != nil {
		return nil, fmt.Errorf("mission with name '%s': %w", m.name, err)
	}
	c := *m
	c.counters = counters
	if !c.IsEnded() {
		c.status = StatusFor(counters)
	}
	return &c, nil
}

// End returns a copy of m with zero counters and status Ended.
func (m *Mission) End() *Mission {
	c := *m
	c.counters = Counters{}
	c.status = Ended
	return &c
}
