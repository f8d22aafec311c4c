package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/saltwindgames/saltwind/internal/errors"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.CodeNotFound, "save not found")

	assert.Equal(t, errors.CodeNotFound, err.Code)
	assert.Equal(t, "save not found", err.Message)
	assert.Equal(t, "NOT_FOUND: save not found", err.Error())
}

func TestWrap_PreservesCode(t *testing.T) {
	inner := errors.NotFound("no save in slot 1")
	outer := errors.Wrap(inner, "failed to load game")

	assert.Equal(t, errors.CodeNotFound, outer.Code)
	assert.True(t, errors.IsNotFound(outer))
	assert.ErrorIs(t, outer, inner)
}

func TestWrap_DefaultsToInternal(t *testing.T) {
	inner := fmt.Errorf("connection refused")
	outer := errors.Wrap(inner, "failed to reach store")

	assert.Equal(t, errors.CodeInternal, outer.Code)
	assert.True(t, errors.IsInternal(outer))
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "ignored"))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
	assert.Equal(t, errors.CodeInvalidArgument, errors.GetCode(errors.InvalidArgument("bad")))
	assert.Equal(t, errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
}

func TestGetMessage(t *testing.T) {
	assert.Equal(t, "", errors.GetMessage(nil))
	assert.Equal(t, "bad slot", errors.GetMessage(errors.InvalidArgument("bad slot")))
	assert.Equal(t, "plain", errors.GetMessage(fmt.Errorf("plain")))
}

func TestWithMeta(t *testing.T) {
	err := errors.OutOfRange("aim point outside spell range").
		WithMeta("x", 12).
		WithMeta("y", 30)

	assert.Equal(t, 12, err.Meta["x"])
	assert.Equal(t, 30, err.Meta["y"])
}

func TestIs_MatchesByCode(t *testing.T) {
	a := errors.NotFound("first")
	b := errors.NotFound("second")

	assert.ErrorIs(t, a, b)
}
