// Package vtxpack prepares vertex batches for GPU upload.
//
// # Overview
//
// vtxpack applies a uniform affine 3x4 transform to structure-of-arrays
// position streams and packs position, UV, packed color and packed normal
// into a fixed 7-word (28-byte) interleaved record per vertex:
//
//	[xBits, yBits, zBits, uBits, vBits, color, normal]
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/vtxpack"
//	    _ "github.com/gogpu/vtxpack/vector" // optional vectorized backend
//	)
//
//	reg := vtxpack.NewRegistry()
//	p := reg.Pipeline()
//
//	out := make([]uint32, vtxpack.WordsNeeded(n))
//	p.TransformThenPack(streams, 0, n, vtxpack.Translate(0, 1, 0), out, 0)
//
// # Backends
//
// A [TransformBackend] performs the bulk transform. The scalar backend is
// always available. The vector package registers a vectorized backend that
// processes SIMD-width chunks; a [Registry] tries it once, verifies it, and
// silently falls back to scalar on any failure. Output never depends on which
// backend is active beyond floating-point evaluation-order tolerance.
//
// # Fusion
//
// Small batches are transformed and packed in one pass without touching the
// caller's position streams. Large batches are transformed in place by the
// backend and then packed. See [Pipeline] for details.
//
// # Build Tags
//
//   - vtxdebug: range assertions at public entry points
//   - novector: exclude the vectorized backend from the vector package
//
// # Logging
//
// vtxpack is silent by default. Use [SetLogger] to see backend selection and
// fallback diagnostics.
package vtxpack
