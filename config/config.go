// Package config loads vtxpack runtime settings once at startup.
//
// Settings come from, in increasing priority: built-in defaults, an optional
// YAML file, and VTXPACK_* environment variables:
//
//	VTXPACK_FORCE_SCALAR=true          always use the scalar backend
//	VTXPACK_FUSED_PACK_THRESHOLD=128   largest batch packed in a single pass
//	VTXPACK_BACKEND=vector             preferred backend name
//	VTXPACK_DEBUG=true                 debug-level logging in the CLI
//
// A host reads the configuration once and builds its registry and pipelines
// from RegistryOptions and PipelineOptions.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/gogpu/vtxpack"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "VTXPACK"

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid configuration")

// Config holds the runtime settings.
type Config struct {
	// ForceScalar skips backend resolution and uses the scalar backend.
	ForceScalar bool `mapstructure:"force_scalar" yaml:"force_scalar"`

	// FusedPackThreshold is the largest batch handled by the fused path.
	FusedPackThreshold int `mapstructure:"fused_pack_threshold" yaml:"fused_pack_threshold"`

	// Backend is the preferred backend name.
	Backend string `mapstructure:"backend" yaml:"backend"`

	// Debug enables debug-level logging.
	Debug bool `mapstructure:"debug" yaml:"debug"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		FusedPackThreshold: vtxpack.DefaultFusedPackThreshold,
		Backend:            vtxpack.VectorBackendName,
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("force_scalar", d.ForceScalar)
	v.SetDefault("fused_pack_threshold", d.FusedPackThreshold)
	v.SetDefault("backend", d.Backend)
	v.SetDefault("debug", d.Debug)
}

// Load reads the configuration. path names an optional YAML file; when empty
// only defaults and the environment are used.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: decoding: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.FusedPackThreshold <= 0 {
		return fmt.Errorf("%w: fused_pack_threshold must be positive, got %d", ErrInvalid, c.FusedPackThreshold)
	}
	if strings.TrimSpace(c.Backend) == "" {
		return fmt.Errorf("%w: backend must not be empty", ErrInvalid)
	}
	return nil
}

// RegistryOptions returns the registry options this configuration selects.
func (c *Config) RegistryOptions() []vtxpack.RegistryOption {
	return []vtxpack.RegistryOption{
		vtxpack.WithForceScalar(c.ForceScalar),
		vtxpack.WithPreferredBackend(c.Backend),
	}
}

// PipelineOptions returns the pipeline options this configuration selects.
func (c *Config) PipelineOptions() []vtxpack.PipelineOption {
	return []vtxpack.PipelineOption{
		vtxpack.WithFusedPackThreshold(c.FusedPackThreshold),
	}
}

// NewRegistry builds a registry from the configuration.
func (c *Config) NewRegistry() *vtxpack.Registry {
	return vtxpack.NewRegistry(c.RegistryOptions()...)
}
