package vtxpack

// TransformBackend applies an affine transform to structure-of-arrays
// position streams in place.
//
// Implementations must be stateless and safe for concurrent use by multiple
// goroutines working on disjoint index ranges or disjoint slices. They must
// not allocate.
//
// Two implementations exist: the scalar backend returned by [Scalar], which
// is always available and defines the reference semantics, and the optional
// vectorized backend registered by the vector package.
type TransformBackend interface {
	// Name returns a diagnostic identifier (e.g., "scalar", "vector(8)").
	Name() string

	// IsVectorized reports whether the backend uses SIMD-width chunks.
	// It is informational only and must never be used to alter output.
	IsVectorized() bool

	// TransformAffine3x4SoA transforms xs[i], ys[i], zs[i] in place for every
	// i in [offset, offset+count). Indices outside the range are not touched.
	// count <= 0 is a no-op. Slices must cover the range; this is not checked.
	TransformAffine3x4SoA(xs, ys, zs []float32, offset, count int, m Affine3x4)
}

// ScalarBackendName is the name reported by the scalar backend.
const ScalarBackendName = "scalar"

// scalarBackend is the portable reference implementation.
type scalarBackend struct{}

// scalarInstance is the process-wide scalar backend.
var scalarInstance TransformBackend = scalarBackend{}

// Scalar returns the scalar backend. It is always available and is the
// fallback for every failed accelerated backend resolution.
func Scalar() TransformBackend {
	return scalarInstance
}

func (scalarBackend) Name() string { return ScalarBackendName }

func (scalarBackend) IsVectorized() bool { return false }

func (scalarBackend) TransformAffine3x4SoA(xs, ys, zs []float32, offset, count int, m Affine3x4) {
	end := offset + count
	for i := offset; i < end; i++ {
		xs[i], ys[i], zs[i] = m.Apply(xs[i], ys[i], zs[i])
	}
}
