package commands

import (
	"errors"
	"fmt"

	"spacefleet/internal/core/domain/model/kernel"
	"spacefleet/internal/pkg/errs"
)

var (
	ErrRocketNotFound       = errors.New("rocket does not exist")
	ErrMissionNotFound      = errors.New("mission does not exist")
	ErrRocketAlreadyExists  = errors.New("rocket already exists")
	ErrMissionAlreadyExists = errors.New("mission already exists")
)

// notFound translates a repository miss into the command-level sentinel and
// passes any other error through unchanged. The result still matches
// errs.ErrObjectNotFound.
func notFound(err error, sentinel error, name kernel.Name) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return fmt.Errorf("%w %q: %w", sentinel, name.String(), err)
	}
	return err
}

func alreadyExists(sentinel error, name kernel.Name) error {
	return fmt.Errorf("%w: %w", sentinel, errs.NewObjectAlreadyExistsError("name", name.String()))
}
