package vtxpack

import "math"

// DefaultFusedPackThreshold is the default largest batch handled by the fused
// single-pass path. One textured cube is 24 vertices, so typical model parts
// stay on the fused path while large merged batches reach the backend.
const DefaultFusedPackThreshold = 96

// Pipeline combines a bulk affine transform with packing into the 7-word
// vertex layout.
//
// For each call it chooses between two strategies:
//
//   - fused (count <= FusedPackThreshold): one loop transforms each vertex
//     with [Affine3x4.Apply] and writes its record directly. The caller's
//     position streams are not modified.
//   - two-pass (count > FusedPackThreshold): the backend transforms the
//     position streams in place, then the packer serializes them. This is
//     the only strategy that mutates the caller's X, Y and Z streams.
//
// Both strategies produce the same packed words; with the scalar backend they
// are bit-identical, with a vectorized backend position words may differ
// within floating-point evaluation-order tolerance.
//
// A Pipeline is immutable and safe for concurrent use on disjoint ranges.
type Pipeline struct {
	backend        TransformBackend
	fusedThreshold int
}

// NewPipeline creates a pipeline bound to backend.
// It panics if backend is nil.
func NewPipeline(backend TransformBackend, opts ...PipelineOption) *Pipeline {
	if backend == nil {
		panic("vtxpack: pipeline backend must not be nil")
	}
	o := defaultPipelineOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Pipeline{
		backend:        backend,
		fusedThreshold: o.fusedPackThreshold,
	}
}

// ScalarPipeline returns a pipeline bound to the scalar backend.
func ScalarPipeline(opts ...PipelineOption) *Pipeline {
	return NewPipeline(Scalar(), opts...)
}

// Backend returns the transform backend the pipeline is bound to.
func (p *Pipeline) Backend() TransformBackend { return p.backend }

// BackendName returns the bound backend's name. Diagnostics only.
func (p *Pipeline) BackendName() string { return p.backend.Name() }

// IsVectorized reports whether the bound backend is vectorized.
// Diagnostics only; callers must not branch on it.
func (p *Pipeline) IsVectorized() bool { return p.backend.IsVectorized() }

// FusedPackThreshold returns the largest batch size handled by the fused path.
func (p *Pipeline) FusedPackThreshold() int { return p.fusedThreshold }

// fused reports whether a batch of count vertices takes the fused path.
func (p *Pipeline) fused(count int) bool { return count <= p.fusedThreshold }

// TransformAffine3x4InPlace transforms positions [offset, offset+count) in place
// using the bound backend.
func (p *Pipeline) TransformAffine3x4InPlace(xs, ys, zs []float32, offset, count int, m Affine3x4) {
	if count <= 0 {
		return
	}
	if debugChecks {
		checkStreams(Streams{X: xs, Y: ys, Z: zs}, offset, count, false)
	}
	p.backend.TransformAffine3x4SoA(xs, ys, zs, offset, count, m)
}

// TransformThenPack transforms vertices [vertexOffset, vertexOffset+count) by m
// and packs them into out starting at word outWordOffset.
// count <= 0 is a no-op.
func (p *Pipeline) TransformThenPack(s Streams, vertexOffset, count int, m Affine3x4, out []uint32, outWordOffset int) {
	if count <= 0 {
		return
	}
	if debugChecks {
		checkStreams(s, vertexOffset, count, true)
		checkWords(len(out), outWordOffset, count)
	}

	if p.fused(count) {
		transformPackWordsFused(s, vertexOffset, count, m, out, outWordOffset)
		return
	}

	p.backend.TransformAffine3x4SoA(s.X, s.Y, s.Z, vertexOffset, count, m)
	PackToWords(s, vertexOffset, count, out, outWordOffset)
}

// TransformThenPackBuffer is TransformThenPack for a WordBuffer sink.
func (p *Pipeline) TransformThenPackBuffer(s Streams, vertexOffset, count int, m Affine3x4, out WordBuffer, outWordOffset int) {
	if count <= 0 {
		return
	}
	if debugChecks {
		checkStreams(s, vertexOffset, count, true)
	}

	if p.fused(count) {
		transformPackBufferFused(s, vertexOffset, count, m, out, outWordOffset)
		return
	}

	p.backend.TransformAffine3x4SoA(s.X, s.Y, s.Z, vertexOffset, count, m)
	PackToBuffer(s, vertexOffset, count, out, outWordOffset)
}

// transformPackWordsFused transforms and packs in one pass without writing
// transformed positions back into the streams.
func transformPackWordsFused(s Streams, vertexOffset, count int, m Affine3x4, out []uint32, outWordOffset int) {
	end := vertexOffset + count
	o := outWordOffset
	for i := vertexOffset; i < end; i++ {
		x, y, z := m.Apply(s.X[i], s.Y[i], s.Z[i])

		rec := out[o : o+WordsPerVertex : o+WordsPerVertex]
		rec[wordX] = math.Float32bits(x)
		rec[wordY] = math.Float32bits(y)
		rec[wordZ] = math.Float32bits(z)
		rec[wordU] = math.Float32bits(s.U[i])
		rec[wordV] = math.Float32bits(s.V[i])
		rec[wordColor] = s.Color[i]
		rec[wordNormal] = s.Normal[i]
		o += WordsPerVertex
	}
}

func transformPackBufferFused(s Streams, vertexOffset, count int, m Affine3x4, out WordBuffer, outWordOffset int) {
	end := vertexOffset + count
	o := outWordOffset
	for i := vertexOffset; i < end; i++ {
		x, y, z := m.Apply(s.X[i], s.Y[i], s.Z[i])

		out.PutWord(o+wordX, math.Float32bits(x))
		out.PutWord(o+wordY, math.Float32bits(y))
		out.PutWord(o+wordZ, math.Float32bits(z))
		out.PutWord(o+wordU, math.Float32bits(s.U[i]))
		out.PutWord(o+wordV, math.Float32bits(s.V[i]))
		out.PutWord(o+wordColor, s.Color[i])
		out.PutWord(o+wordNormal, s.Normal[i])
		o += WordsPerVertex
	}
}
