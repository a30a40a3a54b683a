// Test Type: Unit Test
// Description: Tests for the source package - list file and directory catalog sources

package source_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"romsieve/pkg/errors"
	"romsieve/pkg/source"
)

func TestFromLines(t *testing.T) {
	input := "Game (USA)\n\n  Game (Europe)  \nOther (Japan)\n"

	names, err := source.FromLines(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"Game (USA)", "Game (Europe)", "Other (Japan)"}, names)
}

func TestFromDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"Game (USA).zip", "Game (Europe).zip", ".hidden"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0755))

	names, err := source.FromDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"Game (Europe)", "Game (USA)"}, names)
}

func TestRead(t *testing.T) {
	t.Run("dispatches_on_directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "Game (USA).bin"), nil, 0644))

		names, err := source.Read(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"Game (USA)"}, names)
	})

	t.Run("dispatches_on_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "list.txt")
		require.NoError(t, os.WriteFile(path, []byte("Game (USA)\n"), 0644))

		names, err := source.Read(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"Game (USA)"}, names)
	})

	t.Run("missing_path", func(t *testing.T) {
		_, err := source.Read(filepath.Join(t.TempDir(), "nope"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrCatalogRead))
	})
}
