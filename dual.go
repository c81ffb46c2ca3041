package vtxpack

import "fmt"

// Dual is the host-facing entry point used by rendering integrations.
//
// It holds the registry-selected pipeline and a scalar pipeline side by side,
// so a host can A/B the two per call with forceScalar. Unlike Pipeline, its
// methods never panic: any panic raised while transforming or packing (for
// example an index range the caller's slices do not cover) is recovered and
// reported as false, and the host should take its legacy path for that batch.
type Dual struct {
	selected *Pipeline
	scalar   *Pipeline
}

// NewDual creates a Dual around selected. The scalar pipeline shares the
// selected pipeline's fused-pack threshold.
func NewDual(selected *Pipeline) *Dual {
	if selected == nil {
		panic("vtxpack: dual selected pipeline must not be nil")
	}
	scalar := selected
	if _, isScalar := selected.backend.(scalarBackend); !isScalar {
		scalar = ScalarPipeline(WithFusedPackThreshold(selected.fusedThreshold))
	}
	return &Dual{selected: selected, scalar: scalar}
}

func (d *Dual) pick(forceScalar bool) *Pipeline {
	if forceScalar {
		return d.scalar
	}
	return d.selected
}

// BackendName returns the name of the backend a call with forceScalar would use.
func (d *Dual) BackendName(forceScalar bool) string {
	return d.pick(forceScalar).BackendName()
}

// IsVectorized reports whether a call with forceScalar would be vectorized.
func (d *Dual) IsVectorized(forceScalar bool) bool {
	return d.pick(forceScalar).IsVectorized()
}

// TransformThenPack runs Pipeline.TransformThenPack on the chosen pipeline.
// It reports false if the call panicked.
func (d *Dual) TransformThenPack(forceScalar bool, s Streams, vertexOffset, count int, m Affine3x4, out []uint32, outWordOffset int) (ok bool) {
	p := d.pick(forceScalar)
	defer recoverCall(p, &ok)
	p.TransformThenPack(s, vertexOffset, count, m, out, outWordOffset)
	return true
}

// TransformAffine3x4InPlace runs Pipeline.TransformAffine3x4InPlace on the
// chosen pipeline, so hosts can pack their own records (e.g. when color and
// normal are constant per quad). It reports false if the call panicked.
func (d *Dual) TransformAffine3x4InPlace(forceScalar bool, xs, ys, zs []float32, offset, count int, m Affine3x4) (ok bool) {
	p := d.pick(forceScalar)
	defer recoverCall(p, &ok)
	p.TransformAffine3x4InPlace(xs, ys, zs, offset, count, m)
	return true
}

func recoverCall(p *Pipeline, ok *bool) {
	if r := recover(); r != nil {
		*ok = false
		Logger().Debug("vtxpack: pipeline call failed",
			"backend", p.BackendName(), "panic", fmt.Sprint(r))
	}
}
