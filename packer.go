package vtxpack

import "math"

// Packed vertex record layout.
//
// Each vertex occupies WordsPerVertex consecutive 32-bit words in this order:
//
//	[xBits, yBits, zBits, uBits, vBits, color, normal]
//
// Position and UV words are the raw IEEE-754 bit patterns of the float32
// values. Color and normal are caller-packed words copied through unchanged.
// This layout is the compatibility contract with the GPU upload consumer.
const (
	// WordsPerVertex is the record stride in 32-bit words.
	WordsPerVertex = 7

	// BytesPerVertex is the record stride in bytes.
	BytesPerVertex = WordsPerVertex * 4
)

// Word offsets of each field within a record.
const (
	wordX = iota
	wordY
	wordZ
	wordU
	wordV
	wordColor
	wordNormal
)

// Streams holds structure-of-arrays vertex attributes indexed by vertex.
//
// All slices taking part in a call must cover the same vertex range; the
// packer and pipeline do not check lengths (see the vtxdebug build tag).
type Streams struct {
	X, Y, Z []float32
	U, V    []float32
	Color   []uint32
	Normal  []uint32
}

// WordBuffer is a random-access, word-addressable output sink.
// PutWord writes w at absolute word index, independent of any cursor.
type WordBuffer interface {
	PutWord(index int, w uint32)
}

// WordsNeeded returns the number of words required to pack count vertices.
func WordsNeeded(count int) int {
	if count <= 0 {
		return 0
	}
	return count * WordsPerVertex
}

// PackToWords serializes vertices [vertexOffset, vertexOffset+count) into out,
// starting at word outWordOffset. Vertex i lands at
// outWordOffset + WordsPerVertex*(i-vertexOffset). count <= 0 writes nothing.
func PackToWords(s Streams, vertexOffset, count int, out []uint32, outWordOffset int) {
	if count <= 0 {
		return
	}
	if debugChecks {
		checkStreams(s, vertexOffset, count, true)
		checkWords(len(out), outWordOffset, count)
	}

	end := vertexOffset + count
	o := outWordOffset
	for i := vertexOffset; i < end; i++ {
		rec := out[o : o+WordsPerVertex : o+WordsPerVertex]
		rec[wordX] = math.Float32bits(s.X[i])
		rec[wordY] = math.Float32bits(s.Y[i])
		rec[wordZ] = math.Float32bits(s.Z[i])
		rec[wordU] = math.Float32bits(s.U[i])
		rec[wordV] = math.Float32bits(s.V[i])
		rec[wordColor] = s.Color[i]
		rec[wordNormal] = s.Normal[i]
		o += WordsPerVertex
	}
}

// PackToBuffer is PackToWords for a WordBuffer sink, using absolute puts.
// Both sinks produce identical words for identical inputs.
func PackToBuffer(s Streams, vertexOffset, count int, out WordBuffer, outWordOffset int) {
	if count <= 0 {
		return
	}
	if debugChecks {
		checkStreams(s, vertexOffset, count, true)
	}

	end := vertexOffset + count
	o := outWordOffset
	for i := vertexOffset; i < end; i++ {
		out.PutWord(o+wordX, math.Float32bits(s.X[i]))
		out.PutWord(o+wordY, math.Float32bits(s.Y[i]))
		out.PutWord(o+wordZ, math.Float32bits(s.Z[i]))
		out.PutWord(o+wordU, math.Float32bits(s.U[i]))
		out.PutWord(o+wordV, math.Float32bits(s.V[i]))
		out.PutWord(o+wordColor, s.Color[i])
		out.PutWord(o+wordNormal, s.Normal[i])
		o += WordsPerVertex
	}
}
