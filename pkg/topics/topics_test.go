// Test Type: Unit Test
// Description: Tests for the topics package - embedded documentation lookup

package topics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"romsieve/pkg/errors"
	"romsieve/pkg/topics"
)

func TestList(t *testing.T) {
	names := topics.List()
	assert.Contains(t, names, "scoring")
	assert.Contains(t, names, "config")
}

func TestShow(t *testing.T) {
	t.Run("known_topic", func(t *testing.T) {
		content, err := topics.Show("scoring")
		require.NoError(t, err)
		assert.NotEmpty(t, content)
	})

	t.Run("unknown_topic", func(t *testing.T) {
		_, err := topics.Show("nope")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
	})
}
