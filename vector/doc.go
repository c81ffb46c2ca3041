// Package vector registers the vectorized transform backend.
//
// Import this package to make the backend available to vtxpack registries:
//
//	import _ "github.com/gogpu/vtxpack/vector" // enable the vectorized backend
//
// The backend processes position streams in chunks of the CPU's native
// float32 SIMD width (8 lanes with AVX2, 4 with SSE2 or NEON) using the
// fixed-width lane types of internal/wide, and finishes the remainder with
// the scalar reference evaluation.
//
// The CPU is probed when a registry resolves, not at import. If the CPU has no
// supported SIMD unit, construction fails with ErrUnsupportedCPU and the
// registry silently uses the scalar backend.
//
// Building with -tags novector leaves only the CPU feature report: no backend
// is registered and every registry resolves to scalar.
package vector
