package errs_test

import (
	"errors"
	"testing"

	"spacefleet/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("rocket", "Red Dragon")

		assert.Equal(t, "rocket", err.ParamName)
		assert.Equal(t, "Red Dragon", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: Red Dragon", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("mission", "Mars", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: mission, ID is: Mars (cause: database connection failed)",
			err.Error())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("missionId", 456)
		assert.Equal(t, "object not found: 456", err.Error())
	})
}

func TestObjectAlreadyExistsError(t *testing.T) {
	err := errs.NewObjectAlreadyExistsError("rocket", "Dragon XL")

	assert.Equal(t, "object already exists: rocket Dragon XL", err.Error())
	require.ErrorIs(t, err, errs.ErrObjectAlreadyExists)
}

func TestOperationNotAllowedError(t *testing.T) {
	err := errs.NewOperationNotAllowedError("rocket can be sent in space only by assigning it to mission")

	assert.Equal(t,
		"operation is not allowed: rocket can be sent in space only by assigning it to mission",
		err.Error())
	require.ErrorIs(t, err, errs.ErrOperationNotAllowed)
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "status", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: status", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("unknown status LANDED")
		err := errs.NewValueIsInvalidErrorWithCause("status", cause)

		assert.Equal(t, "value is invalid: status (cause: unknown status LANDED)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("inSpaceCount", -1, 0, 3)

		assert.Equal(t, -1, err.Value)
		assert.Equal(t, "value is invalid: -1 is inSpaceCount, min value is 0, max value is 3", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("counter underflow")
		err := errs.NewValueIsOutOfRangeErrorWithCause("inRepairCount", -2, 0, 5, cause)

		assert.Equal(t,
			"value is invalid: -2 is inRepairCount, min value is 0, max value is 5 (cause: counter underflow)",
			err.Error())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("name", "Red\nDragon", 1, 255)
		assert.Contains(t, err.Error(), "Red Dragon")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("name")

		assert.Equal(t, "value is required: name", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("blank input")
		err := errs.NewValueIsRequiredErrorWithCause("name", cause)

		assert.Equal(t, "value is required: name (cause: blank input)", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "object already exists", errs.ErrObjectAlreadyExists.Error())
	assert.Equal(t, "operation is not allowed", errs.ErrOperationNotAllowed.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
}
