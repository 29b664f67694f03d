// Package queries contains read operations for retrieving fleet state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models built from committed state and never write.
package queries

import (
	"errors"

	"spacefleet/internal/core/domain/model/kernel"
	"spacefleet/internal/core/domain/model/rocket"
	"spacefleet/internal/pkg/guard"
)

var ErrGetRocketQueryIsNotConstructed = errors.New(
	"GetRocketQuery must be created via NewGetRocketQuery constructor",
)

// GetRocketQuery looks up one rocket by name.
//
// Example:
//
//	query, err := NewGetRocketQuery("Red Dragon")
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    fmt.Println("no such rocket")
//	}
type GetRocketQuery struct {
	name kernel.Name

	guard guard.ConstructorGuard
}

// NewGetRocketQuery validates the rocket name.
func NewGetRocketQuery(name string) (GetRocketQuery, error) {
	n, err := kernel.NewName(name)
	if err != nil {
		return GetRocketQuery{}, err
	}
	return GetRocketQuery{name: n, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRocketQuery) Validate() error {
	return q.guard.Validate(ErrGetRocketQueryIsNotConstructed)
}

// RocketName returns the rocket to look up.
func (q GetRocketQuery) RocketName() kernel.Name {
	return q.name
}

// RocketView is the read model of a rocket. Mission is empty for rockets
// without a mission.
type RocketView struct {
	Name    string
	Status  rocket.Status
	Mission string
}

func newRocketView(r *rocket.Rocket) RocketView {
	view := RocketView{
		Name:   r.Name().String(),
		Status: r.Status(),
	}
	if m := r.Mission(); m != nil {
		view.Mission = m.String()
	}
	return view
}
