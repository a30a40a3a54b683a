// Package config loads the selection policy configuration the dodot
// way: embedded defaults first, then an optional user file (TOML or
// YAML, chosen by extension), then ROMSIEVE_* environment overrides.
package config

import (
	_ "embed"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gotoml "github.com/pelletier/go-toml/v2"

	"romsieve/pkg/errors"
	"romsieve/pkg/logging"
	"romsieve/pkg/policy"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// envPrefix namespaces environment overrides:
// ROMSIEVE_POLICY_BIOS_EXCLUDED=true maps to policy.bios_excluded.
const envPrefix = "ROMSIEVE_"

// DefaultTOML returns the embedded default configuration file content.
func DefaultTOML() string {
	return string(defaultConfig)
}

// Load builds the policy configuration. path may be empty, in which case
// only defaults and environment overrides apply. The returned Config is
// not yet validated; that happens in policy.New.
func Load(path string) (policy.Config, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return policy.Config{}, errors.Wrap(err, errors.ErrInternal, "failed to load embedded defaults")
	}

	if path != "" {
		parser, err := parserFor(path)
		if err != nil {
			return policy.Config{}, err
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return policy.Config{}, errors.Wrapf(err, errors.ErrConfigParse,
				"failed to load config file %s", path)
		}
		logger.Debug().Str("path", path).Msg("Config file loaded")
	}

	if err := k.Load(env.Provider(envPrefix, ".", envKey), nil); err != nil {
		return policy.Config{}, errors.Wrap(err, errors.ErrConfigParse,
			"failed to apply environment overrides")
	}

	var cfg policy.Config
	if err := k.Unmarshal("policy", &cfg); err != nil {
		return policy.Config{}, errors.Wrap(err, errors.ErrConfigParse,
			"failed to decode policy configuration")
	}
	return cfg, nil
}

// MarshalTOML renders a policy configuration back to TOML, for
// gen-config output.
func MarshalTOML(cfg policy.Config) (string, error) {
	wrapper := struct {
		Policy policy.Config `toml:"policy"`
	}{Policy: cfg}
	out, err := gotoml.Marshal(wrapper)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal configuration")
	}
	return string(out), nil
}

// parserFor picks a parser by file extension.
func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return toml.Parser(), nil
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	default:
		return nil, errors.Newf(errors.ErrConfigLoad,
			"unsupported config file extension on %s (want .toml or .yaml)", path)
	}
}

// envKey maps ROMSIEVE_POLICY_BIOS_EXCLUDED to policy.bios_excluded.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
	return strings.Replace(s, "_", ".", 1)
}

// rawBytesProvider implements a koanf provider for embedded bytes
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New(errors.ErrInternal, "not implemented")
}
