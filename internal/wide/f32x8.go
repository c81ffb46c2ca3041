package wide

// F32x8 represents 8 float32 lanes for SIMD-style operations.
// Designed for Go compiler auto-vectorization with fixed-size arrays.
type F32x8 [8]float32

// SplatF32x8 creates F32x8 with all lanes set to n.
// This is used to broadcast a coefficient once, outside a loop.
func SplatF32x8(n float32) F32x8 {
	var result F32x8
	for i := range result {
		result[i] = n
	}
	return result
}

// LoadF32x8 loads the first 8 elements of s.
// It panics if len(s) < 8.
func LoadF32x8(s []float32) F32x8 {
	var result F32x8
	copy(result[:], s[:len(result)])
	return result
}

// Store writes the lanes to the first 8 elements of dst.
// It panics if len(dst) < 8.
func (v F32x8) Store(dst []float32) {
	copy(dst[:len(v)], v[:])
}

// Add performs element-wise addition.
func (v F32x8) Add(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Mul performs element-wise multiplication.
func (v F32x8) Mul(other F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// MulAdd computes v*a + acc per lane.
// The compiler may contract it into a fused multiply-add where the
// architecture has one, so results can differ from Mul followed by Add in
// the last bit.
func (v F32x8) MulAdd(a, acc F32x8) F32x8 {
	var result F32x8
	for i := range v {
		result[i] = v[i]*a[i] + acc[i]
	}
	return result
}
