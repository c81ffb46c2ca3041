package vtxpack

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"
)

// Errors reported by [Registry.Fallback]. They describe why an accelerated
// backend was not adopted; they are never returned from transform or pack
// operations.
var (
	// ErrBackendUnavailable indicates the requested backend is not registered
	// or its factory failed (missing package, unsupported CPU, panic).
	ErrBackendUnavailable = errors.New("vtxpack: backend unavailable")

	// ErrContractMismatch indicates the backend was constructed but did not
	// honor the TransformBackend contract on the conformance probe.
	ErrContractMismatch = errors.New("vtxpack: backend violates transform contract")
)

// VectorBackendName is the registration name of the optional vectorized
// backend provided by the vector package.
const VectorBackendName = "vector"

// BackendFactory constructs a backend. It is called at most once per
// Registry, during resolution.
type BackendFactory func() (TransformBackend, error)

var (
	providersMu sync.RWMutex
	providers   = map[string]BackendFactory{
		ScalarBackendName: func() (TransformBackend, error) { return Scalar(), nil },
	}
)

// RegisterBackend makes a backend factory available by name.
//
// Optional backend packages call it from init, so that a blank import is all
// a program needs to enable them:
//
//	import _ "github.com/gogpu/vtxpack/vector" // enables the vectorized backend
//
// Subsequent registrations under the same name replace the previous one.
// Registration does not construct the backend; construction happens when a
// Registry resolves.
func RegisterBackend(name string, f BackendFactory) error {
	if name == "" {
		return errors.New("vtxpack: backend name must not be empty")
	}
	if f == nil {
		return errors.New("vtxpack: backend factory must not be nil")
	}
	providersMu.Lock()
	providers[name] = f
	providersMu.Unlock()
	return nil
}

// Backends returns the sorted names of all registered backend factories.
func Backends() []string {
	providersMu.RLock()
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	providersMu.RUnlock()
	slices.Sort(names)
	return names
}

func lookupBackend(name string) BackendFactory {
	providersMu.RLock()
	f := providers[name]
	providersMu.RUnlock()
	return f
}

// Registry resolves which TransformBackend is active.
//
// Resolution runs exactly once, on the first call to Backend, Fallback or
// Pipeline, and the result is frozen for the lifetime of the Registry.
// Concurrent first callers all observe the same backend. A program normally
// builds one Registry during startup and shares it.
//
// Resolution never fails: if the preferred backend cannot be constructed or
// does not pass the conformance probe, the scalar backend is used.
type Registry struct {
	opts registryOptions

	once     sync.Once
	backend  TransformBackend
	fallback error
}

// NewRegistry creates an unresolved registry.
//
// Example:
//
//	reg := vtxpack.NewRegistry()                            // vector if available
//	reg := vtxpack.NewRegistry(vtxpack.WithForceScalar(true)) // A/B testing
func NewRegistry(opts ...RegistryOption) *Registry {
	o := defaultRegistryOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Registry{opts: o}
}

// Backend returns the resolved backend, resolving on first use.
func (r *Registry) Backend() TransformBackend {
	r.once.Do(r.resolve)
	return r.backend
}

// Fallback returns the reason the preferred backend was not adopted, or nil
// if it was adopted or scalar was forced. Diagnostics only.
func (r *Registry) Fallback() error {
	r.once.Do(r.resolve)
	return r.fallback
}

// Pipeline returns a pipeline bound to the resolved backend.
func (r *Registry) Pipeline(opts ...PipelineOption) *Pipeline {
	return NewPipeline(r.Backend(), opts...)
}

func (r *Registry) resolve() {
	log := Logger()
	if r.opts.forceScalar {
		r.backend = Scalar()
		log.Info("vtxpack: transform backend forced", "backend", r.backend.Name())
		return
	}

	b, err := loadBackend(r.opts.preferred)
	if err != nil {
		r.backend = Scalar()
		r.fallback = err
		log.Debug("vtxpack: falling back to scalar transform backend",
			"preferred", r.opts.preferred, "err", err)
		return
	}

	r.backend = b
	log.Info("vtxpack: transform backend selected",
		"backend", b.Name(), "vectorized", b.IsVectorized())
}

// loadBackend constructs and verifies the named backend. Any failure,
// including a panic in the factory or the probe, is returned as an error.
func loadBackend(name string) (b TransformBackend, err error) {
	defer func() {
		if p := recover(); p != nil {
			b = nil
			err = fmt.Errorf("%w: %s panicked: %v", ErrBackendUnavailable, name, p)
		}
	}()

	f := lookupBackend(name)
	if f == nil {
		return nil, fmt.Errorf("%w: %q is not registered", ErrBackendUnavailable, name)
	}
	b, err = f()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBackendUnavailable, name, err)
	}
	if b == nil {
		return nil, fmt.Errorf("%w: %s factory returned nil", ErrContractMismatch, name)
	}
	if err := conformanceProbe(b); err != nil {
		return nil, err
	}
	return b, nil
}

// probeLength is deliberately not a multiple of any SIMD lane width so the
// probe covers both the chunked body and the tail.
const probeLength = 19

// conformanceProbe runs b over a small batch bracketed by guard slots and
// compares it against the scalar backend.
func conformanceProbe(b TransformBackend) error {
	m := Affine3x4{
		M00: 2, M01: 0.5, M02: -1, M03: 3,
		M10: -0.25, M11: 1.5, M12: 0.75, M13: -2,
		M20: 1, M21: -1, M22: 0.5, M23: 0.125,
	}

	const guard = 1
	n := probeLength + 2*guard
	var xs, ys, zs, wx, wy, wz [probeLength + 2*guard]float32
	for i := range n {
		f := float32(i)
		xs[i], ys[i], zs[i] = f-7, 0.5*f, 3-0.25*f
	}
	wx, wy, wz = xs, ys, zs

	Scalar().TransformAffine3x4SoA(wx[:], wy[:], wz[:], guard, probeLength, m)
	b.TransformAffine3x4SoA(xs[:], ys[:], zs[:], guard, probeLength, m)

	for i := range n {
		inRange := i >= guard && i < guard+probeLength
		for axis, pair := range [3][2]float32{{xs[i], wx[i]}, {ys[i], wy[i]}, {zs[i], wz[i]}} {
			got, want := pair[0], pair[1]
			if !inRange && math.Float32bits(got) != math.Float32bits(want) {
				return fmt.Errorf("%w: %s wrote outside range at index %d", ErrContractMismatch, b.Name(), i)
			}
			if inRange && !closeEnough(got, want) {
				return fmt.Errorf("%w: %s axis %d index %d = %v, want %v",
					ErrContractMismatch, b.Name(), axis, i, got, want)
			}
		}
	}
	return nil
}

// relTolerance bounds the evaluation-order and FMA differences allowed
// between the scalar and vectorized backends.
const relTolerance = 1e-5

// closeEnough reports whether a and b agree within relTolerance, scaled by
// their magnitude (but never tighter than an absolute relTolerance).
func closeEnough(a, b float32) bool {
	if a == b {
		return true
	}
	da, db := float64(a), float64(b)
	scale := math.Max(1, math.Max(math.Abs(da), math.Abs(db)))
	return math.Abs(da-db) <= relTolerance*scale
}
