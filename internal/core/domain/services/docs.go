// Package services provides domain services that coordinate the rocket and
// mission aggregates.
//
// The package includes:
//   - TransitionEngine: the rules that keep a rocket's status and its
//     mission's counters consistent across assignment, status changes and
//     mission completion
//
// The engine is pure: it takes current entities and returns updated copies.
// Reading and persisting them is left to the application layer.
package services
