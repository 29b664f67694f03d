package services

import (
	"errors"
	"fmt"

	"spacefleet/internal/core/domain/model/kernel"
	"spacefleet/internal/core/domain/model/mission"
	"spacefleet/internal/core/domain/model/rocket"
	"spacefleet/internal/pkg/errs"
)

// ErrMissionMismatch is returned when a status change is applied to a mission
// the rocket does not belong to.
var ErrMissionMismatch = errors.New("status change belongs to another mission")

const launchOnlyByAssignment = "rocket can be sent in space only by assigning it to mission"

// StatusChange is the outcome of a requested rocket status change.
type StatusChange struct {
	// Rocket is the updated copy of the rocket.
	Rocket *rocket.Rocket

	// Mission names the mission whose counters must move by Delta. It is nil
	// when the rocket had no mission.
	Mission *kernel.Name

	// Delta is the counter change for Mission.
	Delta mission.Delta

	// Changed is false for requests that leave the rocket as it was.
	Changed bool
}

type statusTransition struct {
	from rocket.Status
	to   rocket.Status
}

type statusRule func(r *rocket.Rocket) (StatusChange, error)

// statusRules covers every (current, requested) pair of valid statuses.
var statusRules = map[statusTransition]statusRule{
	{rocket.OnGround, rocket.OnGround}: unchanged,
	{rocket.OnGround, rocket.InSpace}:  notAllowed(launchOnlyByAssignment),
	{rocket.OnGround, rocket.InRepair}: func(r *rocket.Rocket) (StatusChange, error) {
		return StatusChange{Rocket: r.WithStatus(rocket.InRepair), Changed: true}, nil
	},

	{rocket.InSpace, rocket.InSpace}: unchanged,
	{rocket.InSpace, rocket.InRepair}: func(r *rocket.Rocket) (StatusChange, error) {
		return withMission(r, r.WithStatus(rocket.InRepair), mission.Delta{InSpace: -1, InRepair: 1}), nil
	},
	{rocket.InSpace, rocket.OnGround}: func(r *rocket.Rocket) (StatusChange, error) {
		return withMission(r, r.Grounded(), mission.Delta{AllRockets: -1, InSpace: -1}), nil
	},

	{rocket.InRepair, rocket.InRepair}: unchanged,
	{rocket.InRepair, rocket.InSpace}: func(r *rocket.Rocket) (StatusChange, error) {
		if !r.IsAssigned() {
			return StatusChange{}, errs.NewOperationNotAllowedError(launchOnlyByAssignment)
		}
		return withMission(r, r.WithStatus(rocket.InSpace), mission.Delta{InSpace: 1, InRepair: -1}), nil
	},
	{rocket.InRepair, rocket.OnGround}: func(r *rocket.Rocket) (StatusChange, error) {
		return withMission(r, r.Grounded(), mission.Delta{AllRockets: -1, InRepair: -1}), nil
	},
}

func unchanged(r *rocket.Rocket) (StatusChange, error) {
	return StatusChange{Rocket: r}, nil
}

func notAllowed(reason string) statusRule {
	return func(*rocket.Rocket) (StatusChange, error) {
		return StatusChange{}, errs.NewOperationNotAllowedError(reason)
	}
}

// withMission attaches the counter delta to the mission the rocket belonged
// to before the change. Unassigned rockets move no counters.
func withMission(before, after *rocket.Rocket, delta mission.Delta) StatusChange {
	change := StatusChange{Rocket: after, Changed: true}
	if m := before.Mission(); m != nil {
		change.Mission = m
		change.Delta = delta
	}
	return change
}

// TransitionEngine applies the fleet rules:
//   - a rocket is assigned only when it has no mission and the mission has not ended
//   - assignment launches grounded rockets; rockets in repair stay in repair
//   - status changes move the owning mission's counters
//   - finishing a mission grounds its rockets and ends it with zero counters
//
// Mission status is recomputed from the counters after every change.
type TransitionEngine struct{}

// NewTransitionEngine creates a TransitionEngine.
func NewTransitionEngine() TransitionEngine {
	return TransitionEngine{}
}

// Assign attaches r to m and returns both updated records.
//
// Errors:
//   - mission.ErrCannotAssignToEndedMission if m has ended
//   - rocket.ErrRocketAlreadyAssigned if r already has a mission
func (e TransitionEngine) Assign(r *rocket.Rocket, m *mission.Mission) (*rocket.Rocket, *mission.Mission, error) {
	if err := errors.Join(r.Validate(), m.Validate()); err != nil {
		return nil, nil, err
	}
	if err := m.ValidateAssign(); err != nil {
		return nil, nil, err
	}
	if err := r.ValidateAssign(); err != nil {
		return nil, nil, err
	}

	assigned := r.WithMission(m.Name())
	if assigned.Status() == rocket.OnGround {
		assigned = assigned.WithStatus(rocket.InSpace)
	}

	delta := mission.Delta{AllRockets: 1}
	switch assigned.Status() {
	case rocket.InSpace:
		delta.InSpace = 1
	case rocket.InRepair:
		delta.InRepair = 1
	case rocket.OnGround, rocket.Unknown:
		return nil, nil, fmt.Errorf("rocket with name '%s' cannot be assigned from %s", r.Name(), r.Status())
	}

	updated, err := m.Apply(delta)
	if err != nil {
		return nil, nil, err
	}
	return assigned, updated, nil
}

// ChangeStatus computes the effect of moving r to target. Requests for the
// current status return a StatusChange with Changed set to false.
//
// Errors:
//   - errs.ErrOperationNotAllowed when target is InSpace and r is on the
//     ground, or in repair without a mission
func (e TransitionEngine) ChangeStatus(r *rocket.Rocket, target rocket.Status) (StatusChange, error) {
	if err := errors.Join(r.Validate(), target.Validate()); err != nil {
		return StatusChange{}, err
	}
	rule, ok := statusRules[statusTransition{from: r.Status(), to: target}]
	if !ok {
		return StatusChange{}, errs.NewOperationNotAllowedError(
			fmt.Sprintf("rocket with name '%s' cannot move from %s to %s", r.Name(), r.Status(), target),
		)
	}
	return rule(r)
}

// ApplyStatusChange moves m's counters by change.Delta. m must be the mission
// named by change.Mission.
func (e TransitionEngine) ApplyStatusChange(m *mission.Mission, change StatusChange) (*mission.Mission, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if change.Mission == nil || !change.Mission.IsEqual(m.Name()) {
		return nil, fmt.Errorf("%w: mission with name '%s'", ErrMissionMismatch, m.Name())
	}
	return m.Apply(change.Delta)
}

// Finish grounds every rocket of rockets that belongs to m and ends m.
// Rockets attached to other missions are left out of the result.
func (e TransitionEngine) Finish(m *mission.Mission, rockets []*rocket.Rocket) (*mission.Mission, []*rocket.Rocket, error) {
	if err := m.Validate(); err != nil {
		return nil, nil, err
	}

	grounded := make([]*rocket.Rocket, 0, len(rockets))
	for _, r := range rockets {
		if err := r.Validate(); err != nil {
			return nil, nil, err
		}
		if !r.BelongsTo(m.Name()) {
			continue
		}
		grounded = append(grounded, r.Grounded())
	}

	return m.End(), grounded, nil
}
