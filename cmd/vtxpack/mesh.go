package main

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/vtxpack"
)

// mesh is the YAML input of the pack command. Positions are required; the
// other attribute lists are either omitted (zero-filled) or one entry per
// position. Matrix is row-major 3x4 and defaults to identity.
type mesh struct {
	Positions [][3]float32 `yaml:"positions"`
	UVs       [][2]float32 `yaml:"uvs"`
	Colors    []uint32     `yaml:"colors"`
	Normals   []uint32     `yaml:"normals"`
	Matrix    []float32    `yaml:"matrix"`
}

var errNoPositions = errors.New("mesh has no positions")

func decodeMesh(r io.Reader) (*mesh, error) {
	var m mesh
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errNoPositions
		}
		return nil, fmt.Errorf("decoding mesh: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *mesh) validate() error {
	n := len(m.Positions)
	if n == 0 {
		return errNoPositions
	}
	for _, attr := range []struct {
		name string
		len  int
	}{
		{"uvs", len(m.UVs)},
		{"colors", len(m.Colors)},
		{"normals", len(m.Normals)},
	} {
		if attr.len != 0 && attr.len != n {
			return fmt.Errorf("mesh has %d positions but %d %s", n, attr.len, attr.name)
		}
	}
	if len(m.Matrix) != 0 && len(m.Matrix) != 12 {
		return fmt.Errorf("matrix has %d values, want 12", len(m.Matrix))
	}
	return nil
}

func (m *mesh) vertexCount() int { return len(m.Positions) }

func (m *mesh) transform() vtxpack.Affine3x4 {
	if len(m.Matrix) == 0 {
		return vtxpack.Identity()
	}
	v := m.Matrix
	return vtxpack.Affine3x4{
		M00: v[0], M01: v[1], M02: v[2], M03: v[3],
		M10: v[4], M11: v[5], M12: v[6], M13: v[7],
		M20: v[8], M21: v[9], M22: v[10], M23: v[11],
	}
}

// streams splits the mesh into attribute streams.
func (m *mesh) streams() vtxpack.Streams {
	n := m.vertexCount()
	s := vtxpack.Streams{
		X:      make([]float32, n),
		Y:      make([]float32, n),
		Z:      make([]float32, n),
		U:      make([]float32, n),
		V:      make([]float32, n),
		Color:  make([]uint32, n),
		Normal: make([]uint32, n),
	}
	for i, p := range m.Positions {
		s.X[i], s.Y[i], s.Z[i] = p[0], p[1], p[2]
	}
	for i, uv := range m.UVs {
		s.U[i], s.V[i] = uv[0], uv[1]
	}
	copy(s.Color, m.Colors)
	copy(s.Normal, m.Normals)
	return s
}
