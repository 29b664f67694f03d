// Package mission contains the Mission entity, its Status and the rocket
// counters the status is derived from.
//
// A mission's status is never set directly. Apply recomputes it from the
// counters after every change; End is the only way to reach Ended.
package mission
