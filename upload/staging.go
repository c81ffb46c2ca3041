package upload

import (
	"encoding/binary"

	"github.com/gogpu/vtxpack"
)

// Staging is a CPU-side byte buffer sized in whole vertex records.
// It implements vtxpack.WordBuffer, storing each word little-endian, which is
// the byte order WebGPU-style consumers read vertex attributes in.
//
// A Staging is not safe for concurrent Reset, but disjoint word ranges may be
// written concurrently.
type Staging struct {
	buf []byte
}

var _ vtxpack.WordBuffer = (*Staging)(nil)

// NewStaging returns a zeroed staging buffer for vertices records.
func NewStaging(vertices int) *Staging {
	return &Staging{buf: make([]byte, vtxpack.WordsNeeded(vertices)*4)}
}

// PutWord writes w at word index. It panics if index is out of range.
func (s *Staging) PutWord(index int, w uint32) {
	binary.LittleEndian.PutUint32(s.buf[index*4:], w)
}

// Word returns the word at index.
func (s *Staging) Word(index int) uint32 {
	return binary.LittleEndian.Uint32(s.buf[index*4:])
}

// Bytes returns the staged bytes. The slice aliases the buffer.
func (s *Staging) Bytes() []byte { return s.buf }

// Words returns the capacity of the buffer in words.
func (s *Staging) Words() int { return len(s.buf) / 4 }

// Vertices returns the capacity of the buffer in vertex records.
func (s *Staging) Vertices() int { return len(s.buf) / vtxpack.BytesPerVertex }

// Reset resizes the buffer to vertices records and zeroes it, reusing the
// existing allocation when it is large enough.
func (s *Staging) Reset(vertices int) {
	n := vtxpack.WordsNeeded(vertices) * 4
	if cap(s.buf) < n {
		s.buf = make([]byte, n)
		return
	}
	s.buf = s.buf[:n]
	clear(s.buf)
}
