package wide

// F32x4 represents 4 float32 lanes, the native width of SSE and NEON.
// Designed for Go compiler auto-vectorization with fixed-size arrays.
type F32x4 [4]float32

// SplatF32x4 creates F32x4 with all lanes set to n.
func SplatF32x4(n float32) F32x4 {
	var result F32x4
	for i := range result {
		result[i] = n
	}
	return result
}

// LoadF32x4 loads the first 4 elements of s.
// It panics if len(s) < 4.
func LoadF32x4(s []float32) F32x4 {
	var result F32x4
	copy(result[:], s[:len(result)])
	return result
}

// Store writes the lanes to the first 4 elements of dst.
// It panics if len(dst) < 4.
func (v F32x4) Store(dst []float32) {
	copy(dst[:len(v)], v[:])
}

// Add performs element-wise addition.
func (v F32x4) Add(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] + other[i]
	}
	return result
}

// Mul performs element-wise multiplication.
func (v F32x4) Mul(other F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i] * other[i]
	}
	return result
}

// MulAdd computes v*a + acc per lane. See F32x8.MulAdd.
func (v F32x4) MulAdd(a, acc F32x4) F32x4 {
	var result F32x4
	for i := range v {
		result[i] = v[i]*a[i] + acc[i]
	}
	return result
}
