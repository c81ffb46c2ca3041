package vtxpack

import "github.com/gogpu/gputypes"

// Shader locations of the packed vertex attributes.
const (
	LocationPosition = 0
	LocationUV       = 1
	LocationColor    = 2
	LocationNormal   = 3
)

// VertexLayout describes the packed 7-word record as a vertex buffer layout
// for a WebGPU-style consumer:
//
//	location 0: position  float32x3  @ 0
//	location 1: uv        float32x2  @ 12
//	location 2: color     unorm8x4   @ 20
//	location 3: normal    snorm8x4   @ 24
//
// The color and normal formats are how renderers conventionally decode the
// caller-packed words; the packer itself never interprets them.
func VertexLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: BytesPerVertex,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x3, Offset: wordX * 4, ShaderLocation: LocationPosition},
			{Format: gputypes.VertexFormatFloat32x2, Offset: wordU * 4, ShaderLocation: LocationUV},
			{Format: gputypes.VertexFormatUnorm8x4, Offset: wordColor * 4, ShaderLocation: LocationColor},
			{Format: gputypes.VertexFormatSnorm8x4, Offset: wordNormal * 4, ShaderLocation: LocationNormal},
		},
	}
}
