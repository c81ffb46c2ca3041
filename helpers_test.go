package vtxpack

import (
	"math"
	"math/rand/v2"
)

// sliceBuffer is a WordBuffer backed by a slice, counting writes.
type sliceBuffer struct {
	words  []uint32
	writes int
}

func newSliceBuffer(n int) *sliceBuffer {
	return &sliceBuffer{words: make([]uint32, n)}
}

func (b *sliceBuffer) PutWord(index int, w uint32) {
	b.words[index] = w
	b.writes++
}

// randomStreams returns n vertices of reproducible attribute data.
func randomStreams(n int, seed uint64) Streams {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	s := Streams{
		X:      make([]float32, n),
		Y:      make([]float32, n),
		Z:      make([]float32, n),
		U:      make([]float32, n),
		V:      make([]float32, n),
		Color:  make([]uint32, n),
		Normal: make([]uint32, n),
	}
	for i := range n {
		s.X[i] = r.Float32()*200 - 100
		s.Y[i] = r.Float32()*200 - 100
		s.Z[i] = r.Float32()*200 - 100
		s.U[i] = r.Float32()
		s.V[i] = r.Float32()
		s.Color[i] = r.Uint32()
		s.Normal[i] = r.Uint32()
	}
	return s
}

// randomAffine returns a reproducible transform with moderate coefficients.
func randomAffine(seed uint64) Affine3x4 {
	r := rand.New(rand.NewPCG(seed, 7))
	c := func() float32 { return r.Float32()*4 - 2 }
	return Affine3x4{
		M00: c(), M01: c(), M02: c(), M03: c() * 50,
		M10: c(), M11: c(), M12: c(), M13: c() * 50,
		M20: c(), M21: c(), M22: c(), M23: c() * 50,
	}
}

// clone deep-copies all streams.
func (s Streams) clone() Streams {
	return Streams{
		X:      append([]float32(nil), s.X...),
		Y:      append([]float32(nil), s.Y...),
		Z:      append([]float32(nil), s.Z...),
		U:      append([]float32(nil), s.U...),
		V:      append([]float32(nil), s.V...),
		Color:  append([]uint32(nil), s.Color...),
		Normal: append([]uint32(nil), s.Normal...),
	}
}

func sameBits(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Float32bits(a[i]) != math.Float32bits(b[i]) {
			return false
		}
	}
	return true
}

// unregisterBackend removes a test registration.
func unregisterBackend(name string) {
	providersMu.Lock()
	delete(providers, name)
	providersMu.Unlock()
}
