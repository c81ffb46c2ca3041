package main

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/vtxpack"
)

const triangle = `
matrix: [1, 0, 0, 10,  0, 1, 0, 0,  0, 0, 1, 0]
positions: [[0, 0, 0], [1, 0, 0], [0, 1, 0]]
uvs: [[0, 0], [1, 0], [0, 1]]
colors: [0xFF0000FF, 0xFF00FF00, 0xFFFF0000]
normals: [0x007F0000, 0x007F0000, 0x007F0000]
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	orig := vtxpack.Logger()
	t.Cleanup(func() { vtxpack.SetLogger(orig) })

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeMesh(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mesh.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestInfo(t *testing.T) {
	out, err := run(t, "info", "--force-scalar")
	require.NoError(t, err)
	assert.Contains(t, out, "backend:      scalar")
	assert.Contains(t, out, "vectorized:   false")
	assert.Contains(t, out, "registered:")
	assert.Contains(t, out, "28 bytes/vertex")
	assert.Contains(t, out, "@location(3) offset 24")
}

func TestPack(t *testing.T) {
	for _, force := range []bool{false, true} {
		mesh := writeMesh(t, triangle)
		bin := filepath.Join(t.TempDir(), "mesh.bin")
		args := []string{"pack", "--in", mesh, "--out", bin}
		if force {
			args = append(args, "--force-scalar")
		}

		out, err := run(t, args...)
		require.NoError(t, err)
		assert.Contains(t, out, "packed 3 vertices (84 bytes)")

		data, err := os.ReadFile(bin)
		require.NoError(t, err)
		require.Len(t, data, 3*vtxpack.BytesPerVertex)

		word := func(i int) uint32 { return binary.LittleEndian.Uint32(data[i*4:]) }
		// Vertex 1: (1,0,0) translated by 10 on x.
		rec := vtxpack.WordsPerVertex
		assert.Equal(t, float32(11), math.Float32frombits(word(rec)))
		assert.Equal(t, float32(0), math.Float32frombits(word(rec+1)))
		assert.Equal(t, float32(1), math.Float32frombits(word(rec+3)))
		assert.Equal(t, uint32(0xFF00FF00), word(rec+5))
		assert.Equal(t, uint32(0x007F0000), word(rec+6))
	}
}

func TestPackDump_Zstd(t *testing.T) {
	mesh := writeMesh(t, triangle)
	dir := t.TempDir()
	raw := filepath.Join(dir, "mesh.bin")
	zst := filepath.Join(dir, "mesh.bin.zst")

	_, err := run(t, "pack", "--in", mesh, "--out", raw)
	require.NoError(t, err)
	_, err = run(t, "pack", "--in", mesh, "--out", zst, "--zstd")
	require.NoError(t, err)

	plain, err := run(t, "dump", "--in", raw)
	require.NoError(t, err)
	unpacked, err := run(t, "dump", "--in", zst, "--zstd")
	require.NoError(t, err)

	assert.Equal(t, plain, unpacked)
	lines := strings.Split(strings.TrimSpace(plain), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "0: pos (10, 0, 0) uv (0, 0) color ff0000ff normal 007f0000", lines[0])
}

func TestDump_Truncated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.bin")
	require.NoError(t, os.WriteFile(path, make([]byte, 30), 0o600))
	_, err := run(t, "dump", "--in", path)
	assert.ErrorIs(t, err, errTruncated)
}

func TestPack_InvalidMesh(t *testing.T) {
	tests := []struct {
		name string
		mesh string
		want string
	}{
		{"empty", "", "no positions"},
		{"mismatched colors", "positions: [[0, 0, 0], [1, 1, 1]]\ncolors: [1]\n", "2 positions but 1 colors"},
		{"short matrix", "positions: [[0, 0, 0]]\nmatrix: [1, 2, 3]\n", "matrix has 3 values"},
		{"unknown field", "positions: [[0, 0, 0]]\ntangents: [1]\n", "tangents"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mesh := writeMesh(t, tt.mesh)
			_, err := run(t, "pack", "--in", mesh, "--out", filepath.Join(t.TempDir(), "out.bin"))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestMesh_Defaults(t *testing.T) {
	m, err := decodeMesh(strings.NewReader("positions: [[1, 2, 3]]\n"))
	require.NoError(t, err)
	assert.Equal(t, vtxpack.Identity(), m.transform())

	s := m.streams()
	assert.Equal(t, []float32{1}, s.X)
	assert.Equal(t, []float32{0}, s.U)
	assert.Equal(t, []uint32{0}, s.Color)
}
