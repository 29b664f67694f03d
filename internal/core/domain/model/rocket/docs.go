// Package rocket contains the Rocket entity and its operational Status.
//
// A rocket is created ON_GROUND and unassigned. It leaves the ground only by
// being assigned to a mission, and it goes back to the ground either on
// request or when its mission finishes. The rules that couple a rocket's
// status to its mission's counters live in the domain services package.
package rocket
