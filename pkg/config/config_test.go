// Test Type: Unit Test
// Description: Tests for the config package - layered policy configuration loading

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"romsieve/pkg/config"
	"romsieve/pkg/errors"
	"romsieve/pkg/policy"
)

func TestLoad(t *testing.T) {
	t.Run("defaults_only", func(t *testing.T) {
		cfg, err := config.Load("")
		require.NoError(t, err)

		assert.Equal(t, []string{"USA", "World", "Europe"}, cfg.CountryPreference)
		assert.False(t, cfg.ExcludeUnlistedCountries)
		assert.Equal(t, []string{"GameCube"}, cfg.ReEditionMarkers)
		assert.InDelta(t, 1.0, cfg.ReEditionWeight, 1e-9)
		assert.InDelta(t, 0.1, cfg.VersionWeight, 1e-9)
		assert.Empty(t, cfg.SkipAttrs)
	})

	t.Run("defaults_build_a_valid_policy", func(t *testing.T) {
		cfg, err := config.Load("")
		require.NoError(t, err)
		_, err = policy.New(cfg)
		assert.NoError(t, err)
	})

	t.Run("toml_file_overrides_defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "policy.toml")
		content := `
[policy]
country_preference = ["Japan"]
skip_attrs = ["Beta", "Proto"]
bios_excluded = true
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := config.Load(path)
		require.NoError(t, err)

		assert.Equal(t, []string{"Japan"}, cfg.CountryPreference)
		assert.Equal(t, []string{"Beta", "Proto"}, cfg.SkipAttrs)
		assert.True(t, cfg.BiosExcluded)
		// Untouched keys keep their defaults.
		assert.InDelta(t, 0.1, cfg.VersionWeight, 1e-9)
	})

	t.Run("yaml_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "policy.yaml")
		content := "policy:\n  country_preference: [Europe, USA]\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, []string{"Europe", "USA"}, cfg.CountryPreference)
	})

	t.Run("malformed_file_fails_fast", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.toml")
		require.NoError(t, os.WriteFile(path, []byte("[policy\n"), 0644))

		_, err := config.Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("unknown_extension_rejected", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "policy.json")
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0644))

		_, err := config.Load(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("environment_overrides", func(t *testing.T) {
		t.Setenv("ROMSIEVE_POLICY_BIOS_EXCLUDED", "true")

		cfg, err := config.Load("")
		require.NoError(t, err)
		assert.True(t, cfg.BiosExcluded)
	})
}

func TestDefaultTOML(t *testing.T) {
	content := config.DefaultTOML()
	assert.Contains(t, content, "[policy]")
	assert.Contains(t, content, "country_preference")
}

func TestMarshalTOML(t *testing.T) {
	out, err := config.MarshalTOML(policy.DefaultConfig())
	require.NoError(t, err)
	assert.Contains(t, out, "[policy]")
	assert.Contains(t, out, "country_preference")
	assert.Contains(t, out, "USA")
}
