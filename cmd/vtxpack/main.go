// Command vtxpack inspects the transform backend selected on this machine and
// packs YAML meshes into GPU-ready vertex records.
//
// Usage:
//
//	vtxpack info
//	vtxpack pack --in mesh.yaml --out mesh.bin [--zstd] [--force-scalar]
//	vtxpack dump --in mesh.bin [--zstd]
//
// Settings are read from --config and VTXPACK_* environment variables.
package main

import (
	"fmt"
	"os"

	_ "github.com/gogpu/vtxpack/vector" // register the vectorized backend
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "vtxpack:", err)
		os.Exit(1)
	}
}
