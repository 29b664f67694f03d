// Package commands contains business operations that modify fleet state.
// Each command is a validated value built by its constructor; its handler
// opens a unit of work, applies the transition rules and commits.
package commands

import (
	"context"

	"spacefleet/internal/core/ports"
)

// Unit of work interfaces give command handlers a transaction over exactly the
// repositories they need. A handler asks for the narrowest one that covers the
// aggregates it writes, so a rocket-only command cannot touch missions.
type (
	// TxManager handles transaction lifecycle.
	// Everything saved between Begin and Commit becomes visible at once or not at all.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RocketRepoFactory provides access to the rocket repository within a transaction.
	RocketRepoFactory interface {
		RocketRepository() ports.RocketRepository
	}

	// MissionRepoFactory provides access to the mission repository within a transaction.
	MissionRepoFactory interface {
		MissionRepository() ports.MissionRepository
	}

	// RocketUoW manages transactions for rocket-only operations.
	// Used by CreateRocket, which never changes a mission.
	RocketUoW interface {
		TxManager
		RocketRepoFactory
	}

	// RocketUoWFactory creates new rocket unit of work instances.
	RocketUoWFactory interface {
		Create() RocketUoW
	}

	// MissionUoW manages transactions for mission-only operations.
	// Used by CreateMission, which starts with no rockets attached.
	MissionUoW interface {
		TxManager
		MissionRepoFactory
	}

	// MissionUoWFactory creates new mission unit of work instances.
	MissionUoWFactory interface {
		Create() MissionUoW
	}

	// UoW manages transactions that change a rocket and its mission together.
	// Assignment, status changes and finishing a mission all move rocket state
	// and mission counters in one commit, so the counters never drift from the
	// rockets they count.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   rocketRepo := uow.RocketRepository()
	//   missionRepo := uow.MissionRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		RocketRepoFactory
		MissionRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
