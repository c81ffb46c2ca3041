package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/vtxpack"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vtxpack.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.False(t, cfg.ForceScalar)
	assert.Equal(t, vtxpack.DefaultFusedPackThreshold, cfg.FusedPackThreshold)
	assert.Equal(t, vtxpack.VectorBackendName, cfg.Backend)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
force_scalar: true
fused_pack_threshold: 24
backend: scalar
debug: true
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		ForceScalar:        true,
		FusedPackThreshold: 24,
		Backend:            vtxpack.ScalarBackendName,
		Debug:              true,
	}, cfg)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeFile(t, "fused_pack_threshold: 24\n")
	t.Setenv("VTXPACK_FUSED_PACK_THRESHOLD", "200")
	t.Setenv("VTXPACK_FORCE_SCALAR", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 200, cfg.FusedPackThreshold)
	assert.True(t, cfg.ForceScalar)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(t *testing.T) string
		wantErr error
	}{
		{
			name:  "missing file",
			setup: func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") },
		},
		{
			name:    "zero threshold",
			setup:   func(t *testing.T) string { return writeFile(t, "fused_pack_threshold: 0\n") },
			wantErr: ErrInvalid,
		},
		{
			name: "empty backend from env",
			setup: func(t *testing.T) string {
				t.Setenv("VTXPACK_BACKEND", " ")
				return ""
			},
			wantErr: ErrInvalid,
		},
		{
			name: "malformed threshold",
			setup: func(t *testing.T) string {
				t.Setenv("VTXPACK_FUSED_PACK_THRESHOLD", "lots")
				return ""
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.setup(t))
			require.Error(t, err)
			assert.Nil(t, cfg)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestOptions(t *testing.T) {
	cfg := &Config{ForceScalar: true, FusedPackThreshold: 8, Backend: "vector"}

	reg := cfg.NewRegistry()
	assert.Equal(t, vtxpack.ScalarBackendName, reg.Backend().Name())
	assert.NoError(t, reg.Fallback())

	p := reg.Pipeline(cfg.PipelineOptions()...)
	assert.Equal(t, 8, p.FusedPackThreshold())
}

func TestOptions_PreferredBackend(t *testing.T) {
	cfg := &Config{FusedPackThreshold: 8, Backend: vtxpack.ScalarBackendName}
	reg := vtxpack.NewRegistry(cfg.RegistryOptions()...)
	assert.Equal(t, vtxpack.Scalar(), reg.Backend())
	assert.NoError(t, reg.Fallback())
}
