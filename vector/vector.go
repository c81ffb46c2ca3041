//go:build !novector

package vector

import (
	"errors"
	"fmt"

	"github.com/gogpu/vtxpack"
	"github.com/gogpu/vtxpack/internal/wide"
)

var (
	// ErrUnsupportedCPU indicates the running CPU has no SIMD unit the
	// backend targets.
	ErrUnsupportedCPU = errors.New("vector: no supported SIMD unit")

	// ErrUnsupportedWidth indicates a lane width other than 4 or 8.
	ErrUnsupportedWidth = errors.New("vector: unsupported lane width")
)

// Backend is the vectorized TransformBackend.
//
// It is stateless apart from its lane width and safe for concurrent use on
// disjoint ranges.
type Backend struct {
	width int
	name  string
}

// New probes the CPU and returns a backend using its native float32 SIMD
// width. It is the factory registered under vtxpack.VectorBackendName.
func New() (vtxpack.TransformBackend, error) {
	w := detectWidth()
	if w == 0 {
		return nil, ErrUnsupportedCPU
	}
	b, err := NewWithWidth(w)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// NewWithWidth returns a backend with a fixed lane width (4 or 8),
// regardless of the running CPU. The lane types are portable Go, so any
// width produces correct results everywhere; only speed depends on the CPU.
func NewWithWidth(width int) (*Backend, error) {
	if width != 4 && width != 8 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedWidth, width)
	}
	return &Backend{
		width: width,
		name:  fmt.Sprintf("%s(%d)", vtxpack.VectorBackendName, width),
	}, nil
}

// Name returns "vector(<width>)".
func (b *Backend) Name() string { return b.name }

// IsVectorized always returns true.
func (b *Backend) IsVectorized() bool { return true }

// Width returns the lane width.
func (b *Backend) Width() int { return b.width }

// TransformAffine3x4SoA implements vtxpack.TransformBackend.
func (b *Backend) TransformAffine3x4SoA(xs, ys, zs []float32, offset, count int, m vtxpack.Affine3x4) {
	if count <= 0 {
		return
	}

	var done int
	if b.width == 8 {
		done = transform8(xs, ys, zs, offset, count, m)
	} else {
		done = transform4(xs, ys, zs, offset, count, m)
	}

	// Tail
	end := offset + count
	for i := offset + done; i < end; i++ {
		xs[i], ys[i], zs[i] = m.Apply(xs[i], ys[i], zs[i])
	}
}

// transform8 processes whole 8-lane chunks from offset and returns the number
// of vertices it transformed.
func transform8(xs, ys, zs []float32, offset, count int, m vtxpack.Affine3x4) int {
	const step = 8
	bound := count - count%step

	vm00, vm01, vm02, vm03 := wide.SplatF32x8(m.M00), wide.SplatF32x8(m.M01), wide.SplatF32x8(m.M02), wide.SplatF32x8(m.M03)
	vm10, vm11, vm12, vm13 := wide.SplatF32x8(m.M10), wide.SplatF32x8(m.M11), wide.SplatF32x8(m.M12), wide.SplatF32x8(m.M13)
	vm20, vm21, vm22, vm23 := wide.SplatF32x8(m.M20), wide.SplatF32x8(m.M21), wide.SplatF32x8(m.M22), wide.SplatF32x8(m.M23)

	for i := 0; i < bound; i += step {
		idx := offset + i

		x := wide.LoadF32x8(xs[idx:])
		y := wide.LoadF32x8(ys[idx:])
		z := wide.LoadF32x8(zs[idx:])

		rx := z.MulAdd(vm02, y.MulAdd(vm01, x.Mul(vm00))).Add(vm03)
		ry := z.MulAdd(vm12, y.MulAdd(vm11, x.Mul(vm10))).Add(vm13)
		rz := z.MulAdd(vm22, y.MulAdd(vm21, x.Mul(vm20))).Add(vm23)

		rx.Store(xs[idx:])
		ry.Store(ys[idx:])
		rz.Store(zs[idx:])
	}
	return bound
}

// transform4 is transform8 with 4 lanes.
func transform4(xs, ys, zs []float32, offset, count int, m vtxpack.Affine3x4) int {
	const step = 4
	bound := count - count%step

	vm00, vm01, vm02, vm03 := wide.SplatF32x4(m.M00), wide.SplatF32x4(m.M01), wide.SplatF32x4(m.M02), wide.SplatF32x4(m.M03)
	vm10, vm11, vm12, vm13 := wide.SplatF32x4(m.M10), wide.SplatF32x4(m.M11), wide.SplatF32x4(m.M12), wide.SplatF32x4(m.M13)
	vm20, vm21, vm22, vm23 := wide.SplatF32x4(m.M20), wide.SplatF32x4(m.M21), wide.SplatF32x4(m.M22), wide.SplatF32x4(m.M23)

	for i := 0; i < bound; i += step {
		idx := offset + i

		x := wide.LoadF32x4(xs[idx:])
		y := wide.LoadF32x4(ys[idx:])
		z := wide.LoadF32x4(zs[idx:])

		rx := z.MulAdd(vm02, y.MulAdd(vm01, x.Mul(vm00))).Add(vm03)
		ry := z.MulAdd(vm12, y.MulAdd(vm11, x.Mul(vm10))).Add(vm13)
		rz := z.MulAdd(vm22, y.MulAdd(vm21, x.Mul(vm20))).Add(vm23)

		rx.Store(xs[idx:])
		ry.Store(ys[idx:])
		rz.Store(zs[idx:])
	}
	return bound
}
