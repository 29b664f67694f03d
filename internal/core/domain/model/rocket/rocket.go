package rocket

import (
	"errors"
	"fmt"

	"spacefleet/internal/core/domain/model/kernel"
	"spacefleet/internal/pkg/guard"
)

var (
	// ErrRocketIsNotConstructed is returned when using a zero-value Rocket.
	ErrRocketIsNotConstructed = errors.New("Rocket must be created via NewRocket or RestoreRocket")

	// ErrRocketAlreadyAssigned is returned when assigning a rocket that already
	// belongs to a mission, including the mission it is being assigned to.
	ErrRocketAlreadyAssigned = errors.New("rocket already assigned to mission")

	// ErrGroundedRocketWithMission is returned when restoring a rocket that is
	// on the ground but still points at a mission.
	ErrGroundedRocketWithMission = errors.New("rocket on ground cannot belong to a mission")
)

// Rocket is an immutable record. Every change returns an updated copy so the
// caller decides when, and whether, the new state is persisted.
type Rocket struct {
	name    kernel.Name
	status  Status
	mission *kernel.Name

	guard guard.ConstructorGuard
}

// NewRocket creates a rocket on the ground with no mission.
func NewRocket(name kernel.Name) (*Rocket, error) {
	if err := name.Validate(); err != nil {
		return nil, err
	}
	return &Rocket{
		name:   name,
		status: OnGround,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// RestoreRocket rebuilds a rocket from persisted state.
func RestoreRocket(name kernel.Name, status Status, mission *kernel.Name) (*Rocket, error) {
	if err := errors.Join(name.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if mission != nil {
		if err := mission.Validate(); err != nil {
			return nil, err
		}
		if status == OnGround {
			return nil, fmt.Errorf("%w: %s", ErrGroundedRocketWithMission, name)
		}
		m := *mission
		mission = &m
	}
	return &Rocket{
		name:    name,
		status:  status,
		mission: mission,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the rocket was built through a constructor.
func (r *Rocket) Validate() error {
	if r == nil {
		return ErrRocketIsNotConstructed
	}
	return r.guard.Validate(ErrRocketIsNotConstructed)
}

// Name returns the rocket's identity.
func (r *Rocket) Name() kernel.Name {
	return r.name
}

// Status returns the operational status.
func (r *Rocket) Status() Status {
	return r.status
}

// Mission returns the name of the mission the rocket belongs to, or nil.
func (r *Rocket) Mission() *kernel.Name {
	if r.mission == nil {
		return nil
	}
	m := *r.mission
	return &m
}

// IsAssigned reports whether the rocket belongs to a mission.
func (r *Rocket) IsAssigned() bool {
	return r.mission != nil
}

// BelongsTo reports whether the rocket is assigned to mission.
func (r *Rocket) BelongsTo(mission kernel.Name) bool {
	return r.mission != nil && r.mission.IsEqual(mission)
}

// ValidateAssign fails with ErrRocketAlreadyAssigned if the rocket has a mission.
func (r *Rocket) ValidateAssign() error {
	if r.IsAssigned() {
		return fmt.Errorf("%w: rocket with name '%s'", ErrRocketAlreadyAssigned, r.name)
	}
	return nil
}

// WithStatus returns a copy of r with its status replaced.
func (r *Rocket) WithStatus(status Status) *Rocket {
	c := *r
	c.status = status
	return &c
}

// WithMission returns a copy of r attached to mission.
func (r *Rocket) WithMission(mission kernel.Name) *Rocket {
	c := *r
	c.mission = &mission
	return &c
}

// WithoutMission returns a copy of r with no mission.
func (r *Rocket) WithoutMission() *Rocket {
	c := *r
	c.mission = nil
	return &c
}

// Grounded returns a copy of r on the ground and detached from its mission.
func (r *Rocket) Grounded() *Rocket {
	return r.WithStatus(OnGround).WithoutMission()
}
