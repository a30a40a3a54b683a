// Test Type: Unit Test
// Description: Tests for the errors package - coded errors, wrapping, matching

package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"romsieve/pkg/errors"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.ErrConfigValid, "bad policy")
	assert.Equal(t, "[CONFIG_INVALID] bad policy", err.Error())
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	assert.False(t, errors.IsErrorCode(err, errors.ErrInternal))
}

func TestWrap(t *testing.T) {
	t.Run("wraps_and_unwraps", func(t *testing.T) {
		inner := fmt.Errorf("boom")
		err := errors.Wrap(inner, errors.ErrDatParse, "parse failed")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom")
		assert.Equal(t, inner, stderrors.Unwrap(err))
	})

	t.Run("nil_stays_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "x"))
	})
}

func TestIsMatchesByCode(t *testing.T) {
	a := errors.New(errors.ErrEntryInvalid, "one")
	b := errors.New(errors.ErrEntryInvalid, "another")
	assert.True(t, stderrors.Is(a, b))
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrCatalogRead,
		errors.GetErrorCode(errors.New(errors.ErrCatalogRead, "x")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrEntryInvalid, "bad entry").WithDetail("name", "Game")
	assert.Equal(t, "Game", err.Details["name"])
}
