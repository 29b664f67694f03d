package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"spacefleet/internal/core/application/usecases/commands"
	"spacefleet/internal/core/domain/model/rocket"
	"spacefleet/internal/pkg/errs"
)

// Handlers groups the commands a fixture drives.
type Handlers struct {
	CreateRocket       commands.CreateRocketCommandHandler
	CreateMission      commands.CreateMissionCommandHandler
	AssignRockets      commands.AssignRocketsCommandHandler
	ChangeRocketStatus commands.ChangeRocketStatusCommandHandler
	FinishMission      commands.FinishMissionCommandHandler
}

// Summary counts what a fixture changed.
type Summary struct {
	Missions      int
	Rockets       int
	Assigned      int
	Skipped       int
	StatusChanges int
	Finished      int
}

// Loader applies fixtures. Rockets and missions that already exist are kept
// as they are, so a fixture can be replayed against a persistent store.
type Loader struct {
	handlers Handlers
	logger   *slog.Logger
}

// NewLoader creates a loader on top of the command handlers.
func NewLoader(handlers Handlers, logger *slog.Logger) *Loader {
	return &Loader{handlers: handlers, logger: logger.With("component", "seed")}
}

// LoadFile parses the fixture at path and applies it.
func (l *Loader) LoadFile(ctx context.Context, path string) (Summary, error) {
	f, err := ParseFile(path)
	if err != nil {
		return Summary{}, err
	}
	summary, err := l.Apply(ctx, f)
	if err != nil {
		return summary, fmt.Errorf("seed %s: %w", path, err)
	}
	l.logger.InfoContext(ctx, "Fixture applied",
		"path", path,
		"missions", summary.Missions,
		"rockets", summary.Rockets,
		"assigned", summary.Assigned,
		"skipped", summary.Skipped,
		"status_changes", summary.StatusChanges,
		"finished", summary.Finished,
	)
	return summary, nil
}

// Apply runs the fixture sections in order and stops at the first failure.
func (l *Loader) Apply(ctx context.Context, f Fixture) (Summary, error) {
	var summary Summary

	for _, name := range f.Missions {
		created, err := l.createMission(ctx, name)
		if err != nil {
			return summary, err
		}
		if created {
			summary.Missions++
		}
	}

	for _, name := range f.Rockets {
		created, err := l.createRocket(ctx, name)
		if err != nil {
			return summary, err
		}
		if created {
			summary.Rockets++
		}
	}

	for _, a := range f.Assignments {
		assigned, skipped, err := l.assign(ctx, a)
		if err != nil {
			return summary, err
		}
		summary.Assigned += assigned
		summary.Skipped += skipped
	}

	for _, change := range f.Statuses {
		if err := l.changeStatus(ctx, change); err != nil {
			return summary, err
		}
		summary.StatusChanges++
	}

	for _, name := range f.Finished {
		cmd, err := commands.NewFinishMissionCommand(name)
		if err != nil {
			return summary, err
		}
		if err = l.handlers.FinishMission.Handle(ctx, cmd); err != nil {
			return summary, fmt.Errorf("finish mission %q: %w", name, err)
		}
		summary.Finished++
	}

	return summary, nil
}

func (l *Loader) createMission(ctx context.Context, name string) (bool, error) {
	cmd, err := commands.NewCreateMissionCommand(name)
	if err != nil {
		return false, err
	}
	err = l.handlers.CreateMission.Handle(ctx, cmd)
	if errors.Is(err, errs.ErrObjectAlreadyExists) {
		l.logger.DebugContext(ctx, "Mission kept", "mission", name)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("create mission %q: %w", name, err)
	}
	return true, nil
}

func (l *Loader) createRocket(ctx context.Context, name string) (bool, error) {
	cmd, err := commands.NewCreateRocketCommand(name)
	if err != nil {
		return false, err
	}
	err = l.handlers.CreateRocket.Handle(ctx, cmd)
	if errors.Is(err, errs.ErrObjectAlreadyExists) {
		l.logger.DebugContext(ctx, "Rocket kept", "rocket", name)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("create rocket %q: %w", name, err)
	}
	return true, nil
}

func (l *Loader) assign(ctx context.Context, a Assignment) (int, int, error) {
	cmd, err := commands.NewAssignRocketsCommand(a.Rockets, a.Mission)
	if err != nil {
		return 0, 0, err
	}
	result, err := l.handlers.AssignRockets.Handle(ctx, cmd)
	if err != nil {
		return len(result.Assigned), len(result.Skipped), fmt.Errorf("assign rockets to %q: %w", a.Mission, err)
	}
	for _, skipped := range result.Skipped {
		l.logger.InfoContext(ctx, "Rocket skipped",
			"mission", a.Mission, "rocket", skipped.Name, "reason", skipped.Reason)
	}
	return len(result.Assigned), len(result.Skipped), nil
}

func (l *Loader) changeStatus(ctx context.Context, change StatusChange) error {
	status, err := rocket.ParseStatus(change.Status)
	if err != nil {
		return fmt.Errorf("rocket %q: %w", change.Rocket, err)
	}
	cmd, err := commands.NewChangeRocketStatusCommand(change.Rocket, status)
	if err != nil {
		return err
	}
	if err = l.handlers.ChangeRocketStatus.Handle(ctx, cmd); err != nil {
		return fmt.Errorf("change status of rocket %q: %w", change.Rocket, err)
	}
	return nil
}
