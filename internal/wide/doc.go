// Package wide provides SIMD-friendly fixed-width float32 lane types.
//
// The types (F32x4, F32x8) are designed to enable Go compiler
// auto-vectorization. By using fixed-size arrays and simple loops, they
// let the compiler generate SIMD instructions on supported architectures
// (SSE, AVX, NEON).
//
// # Design Philosophy
//
//   - Use simple loops over fixed-size arrays for auto-vectorization
//   - Avoid unsafe and assembly - rely on compiler optimization
//   - Keep functions small and inlineable
//
// # Usage Example
//
//	// y = x*a + b over one 8-lane chunk
//	a := wide.SplatF32x8(2)
//	b := wide.SplatF32x8(1)
//	x := wide.LoadF32x8(xs[i:])
//	x.MulAdd(a, b).Store(ys[i:])
package wide
