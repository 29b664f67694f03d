// Package kernel provides the domain primitives shared by the rocket and
// mission aggregates.
//
// The package includes:
//   - Name: the value object that identifies rockets and missions
//
// Rockets refer to their mission by Name, never by pointer, so ownership of
// the relationship goes through the repositories.
package kernel
