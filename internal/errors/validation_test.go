package errors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saltwindgames/saltwind/internal/errors"
)

func TestValidationBuilder_NoErrors(t *testing.T) {
	vb := errors.NewValidationBuilder()

	assert.NoError(t, vb.Build())
}

func TestValidationBuilder_RequiredFields(t *testing.T) {
	err := errors.NewValidationBuilder().
		RequiredField("Roller").
		RequiredField("EventBus").
		Build()

	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "Roller")
	assert.Contains(t, err.Error(), "EventBus")
}

func TestValidationBuilder_Fieldf(t *testing.T) {
	err := errors.NewValidationBuilder().
		Fieldf("Width", "must be positive, got %d", -3).
		Build()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be positive, got -3")
}

func TestValidationError_Meta(t *testing.T) {
	ve := errors.NewValidationError()
	ve.AddFieldError("Seed", "is required")

	err := ve.ToError()
	require.NotNil(t, err)

	fields, ok := err.Meta["validation_errors"].(map[string][]string)
	require.True(t, ok)
	assert.Equal(t, []string{"is required"}, fields["Seed"])
}
