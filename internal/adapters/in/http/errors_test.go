package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"spacefleet/internal/core/domain/model/mission"
	"spacefleet/internal/core/domain/model/rocket"
	"spacefleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", fmt.Errorf("rocket: %w", errs.NewObjectNotFoundError("name", "Ghost")), http.StatusNotFound},
		{"already exists", errs.NewObjectAlreadyExistsError("name", "Mars"), http.StatusConflict},
		{"already assigned", fmt.Errorf("%w: Dragon 1", rocket.ErrRocketAlreadyAssigned), http.StatusConflict},
		{"ended mission", fmt.Errorf("%w: Mars", mission.ErrCannotAssignToEndedMission), http.StatusConflict},
		{"not allowed", errs.NewOperationNotAllowedError("launch"), http.StatusUnprocessableEntity},
		{"required", errs.NewValueIsRequiredError("name"), http.StatusBadRequest},
		{"invalid", errs.NewValueIsInvalidError("status"), http.StatusBadRequest},
		{"other", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusCode(tt.err))
		})
	}
}
