package vtxpack

// RegistryOption configures a Registry during creation.
//
// Example:
//
//	reg := vtxpack.NewRegistry(
//	    vtxpack.WithForceScalar(cfg.ForceScalar),
//	    vtxpack.WithPreferredBackend("vector"),
//	)
type RegistryOption func(*registryOptions)

// registryOptions holds optional configuration for Registry creation.
type registryOptions struct {
	forceScalar bool
	preferred   string
}

// defaultRegistryOptions returns the default registry options.
func defaultRegistryOptions() registryOptions {
	return registryOptions{
		preferred: VectorBackendName,
	}
}

// WithForceScalar makes the registry select the scalar backend without
// probing for an accelerated one. Useful for A/B testing.
func WithForceScalar(force bool) RegistryOption {
	return func(o *registryOptions) {
		o.forceScalar = force
	}
}

// WithPreferredBackend sets the backend name the registry tries before
// falling back to scalar. An empty name keeps the default ("vector").
func WithPreferredBackend(name string) RegistryOption {
	return func(o *registryOptions) {
		if name != "" {
			o.preferred = name
		}
	}
}

// PipelineOption configures a Pipeline during creation.
type PipelineOption func(*pipelineOptions)

// pipelineOptions holds optional configuration for Pipeline creation.
type pipelineOptions struct {
	fusedPackThreshold int
}

// defaultPipelineOptions returns the default pipeline options.
func defaultPipelineOptions() pipelineOptions {
	return pipelineOptions{
		fusedPackThreshold: DefaultFusedPackThreshold,
	}
}

// WithFusedPackThreshold sets the largest batch handled by the fused
// single-pass path. Values <= 0 are ignored and the default is kept.
//
// The default was chosen empirically and is a tunable, not a contract:
// output is identical whichever path a batch takes.
func WithFusedPackThreshold(n int) PipelineOption {
	return func(o *pipelineOptions) {
		if n > 0 {
			o.fusedPackThreshold = n
		}
	}
}
