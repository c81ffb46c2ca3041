package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/vtxpack"
	"github.com/gogpu/vtxpack/upload"
	"github.com/gogpu/vtxpack/vector"
)

func newInfoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the transform backend selected on this machine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runInfo(cmd)
		},
	}
}

func (a *app) runInfo(cmd *cobra.Command) error {
	reg := a.cfg.NewRegistry()
	p := reg.Pipeline(a.cfg.PipelineOptions()...)
	out := cmd.OutOrStdout()

	fallback := "none"
	if err := reg.Fallback(); err != nil {
		fallback = err.Error()
	}
	features := vector.Features()
	if len(features) == 0 {
		features = []string{"none"}
	}

	fmt.Fprintf(out, "backend:      %s\n", p.BackendName())
	fmt.Fprintf(out, "vectorized:   %t\n", p.IsVectorized())
	fmt.Fprintf(out, "preferred:    %s (force scalar: %t)\n", a.cfg.Backend, a.cfg.ForceScalar)
	fmt.Fprintf(out, "fallback:     %s\n", fallback)
	fmt.Fprintf(out, "fused pack:   <= %d vertices\n", p.FusedPackThreshold())
	fmt.Fprintf(out, "registered:   %s\n", strings.Join(vtxpack.Backends(), ", "))
	fmt.Fprintf(out, "cpu features: %s\n", strings.Join(features, ", "))

	layout := vtxpack.VertexLayout()
	fmt.Fprintf(out, "layout:       %d bytes/vertex, usage %s\n", layout.ArrayStride, upload.VertexBufferUsage)
	for _, attr := range layout.Attributes {
		fmt.Fprintf(out, "  @location(%d) offset %2d format %v\n", attr.ShaderLocation, attr.Offset, attr.Format)
	}
	return nil
}
