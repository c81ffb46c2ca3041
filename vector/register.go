//go:build !novector

package vector

import "github.com/gogpu/vtxpack"

func init() {
	if err := vtxpack.RegisterBackend(vtxpack.VectorBackendName, New); err != nil {
		vtxpack.Logger().Warn("vector backend not registered", "err", err)
	}
}
