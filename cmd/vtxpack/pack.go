package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"

	"github.com/gogpu/vtxpack"
	"github.com/gogpu/vtxpack/upload"
)

// outputBuffer is the BufferID the pack command writes through.
const outputBuffer upload.BufferID = 1

type packFlags struct {
	in, out string
	zstd    bool
}

func newPackCmd(a *app) *cobra.Command {
	var f packFlags
	cmd := &cobra.Command{
		Use:   "pack",
		Short: "Transform a YAML mesh and write packed vertex records",
		Long: `Pack reads a YAML mesh, transforms its positions by the mesh matrix and
writes one 28-byte little-endian record per vertex:

  x y z u v (float32)  color normal (uint32)

Example mesh:

  matrix: [1, 0, 0, 10,  0, 1, 0, 0,  0, 0, 1, 0]
  positions: [[0, 0, 0], [1, 0, 0], [0, 1, 0]]
  uvs: [[0, 0], [1, 0], [0, 1]]
  colors: [0xFF0000FF, 0xFF00FF00, 0xFFFF0000]
  normals: [0x007F0000, 0x007F0000, 0x007F0000]`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPack(cmd, f)
		},
	}
	cmd.Flags().StringVar(&f.in, "in", "", "input mesh (YAML)")
	cmd.Flags().StringVar(&f.out, "out", "", "output file")
	cmd.Flags().BoolVar(&f.zstd, "zstd", false, "zstd-compress the output")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

func (a *app) runPack(cmd *cobra.Command, f packFlags) error {
	in, err := os.Open(f.in)
	if err != nil {
		return err
	}
	m, err := decodeMesh(in)
	in.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", f.in, err)
	}

	p := a.pipeline()
	n := m.vertexCount()
	st := upload.NewStaging(n)
	p.TransformThenPackBuffer(m.streams(), 0, n, m.transform(), st, 0)

	out, err := os.Create(f.out)
	if err != nil {
		return err
	}
	if f.zstd {
		err = writeZstd(out, st.Bytes())
	} else {
		w := upload.NewWriterAt(out)
		if err = upload.Upload(w, outputBuffer, 0, st); err == nil {
			err = w.Err()
		}
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", f.out, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "packed %d vertices (%d bytes) with %s into %s\n",
		n, len(st.Bytes()), p.BackendName(), f.out)
	return nil
}

func writeZstd(w io.Writer, data []byte) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return err
	}
	if _, err := enc.Write(data); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

func readZstd(r io.Reader) ([]byte, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return io.ReadAll(dec)
}

type dumpFlags struct {
	in   string
	zstd bool
}

var errTruncated = errors.New("size is not a whole number of vertex records")

func newDumpCmd(a *app) *cobra.Command {
	var f dumpFlags
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the records of a packed vertex file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runDump(cmd, f)
		},
	}
	cmd.Flags().StringVar(&f.in, "in", "", "packed file")
	cmd.Flags().BoolVar(&f.zstd, "zstd", false, "input is zstd-compressed")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}

func (a *app) runDump(cmd *cobra.Command, f dumpFlags) error {
	in, err := os.Open(f.in)
	if err != nil {
		return err
	}
	defer in.Close()

	var data []byte
	if f.zstd {
		data, err = readZstd(in)
	} else {
		data, err = io.ReadAll(in)
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", f.in, err)
	}
	if len(data)%vtxpack.BytesPerVertex != 0 {
		return fmt.Errorf("%s: %d bytes: %w", f.in, len(data), errTruncated)
	}

	n := len(data) / vtxpack.BytesPerVertex
	st := upload.NewStaging(n)
	copy(st.Bytes(), data)

	out := cmd.OutOrStdout()
	for i := range n {
		o := i * vtxpack.WordsPerVertex
		fl := func(k int) float32 { return math.Float32frombits(st.Word(o + k)) }
		fmt.Fprintf(out, "%d: pos (%g, %g, %g) uv (%g, %g) color %08x normal %08x\n",
			i, fl(0), fl(1), fl(2), fl(3), fl(4), st.Word(o+5), st.Word(o+6))
	}
	return nil
}
