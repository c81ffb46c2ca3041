package upload

import (
	"errors"
	"fmt"
	"io"

	"github.com/gogpu/vtxpack"
)

// CopyAlignment is the required alignment, in bytes, of buffer write offsets.
const CopyAlignment = 4

var (
	// ErrNilWriter is returned when Upload is given no writer.
	ErrNilWriter = errors.New("upload: nil buffer writer")

	// ErrInvalidBuffer is returned for the InvalidID buffer handle.
	ErrInvalidBuffer = errors.New("upload: invalid buffer id")

	// ErrMisalignedOffset is returned when an offset is not a multiple of
	// CopyAlignment.
	ErrMisalignedOffset = errors.New("upload: misaligned buffer offset")
)

// BufferWriter writes bytes into a GPU buffer, typically through a queue.
type BufferWriter interface {
	// WriteBuffer writes data to buffer id starting at byte offset.
	WriteBuffer(id BufferID, offset uint64, data []byte)
}

// Upload writes the staged records into buffer id at byte offset.
// An empty staging buffer writes nothing.
func Upload(w BufferWriter, id BufferID, offset uint64, s *Staging) error {
	if w == nil {
		return ErrNilWriter
	}
	if id == InvalidID {
		return ErrInvalidBuffer
	}
	if offset%CopyAlignment != 0 {
		return fmt.Errorf("%w: %d", ErrMisalignedOffset, offset)
	}
	if s == nil || len(s.buf) == 0 {
		return nil
	}
	w.WriteBuffer(id, offset, s.buf)
	vtxpack.Logger().Debug("upload: wrote vertex records",
		"buffer", uint64(id), "offset", offset, "vertices", s.Vertices())
	return nil
}

// WriterAt adapts an io.WriterAt (a file, for example) to a BufferWriter.
// Every buffer id maps to the same destination; the first write error is kept
// and reported by Err.
type WriterAt struct {
	w   io.WriterAt
	err error
}

// NewWriterAt returns a BufferWriter writing through w.
func NewWriterAt(w io.WriterAt) *WriterAt {
	return &WriterAt{w: w}
}

// WriteBuffer implements BufferWriter.
func (a *WriterAt) WriteBuffer(_ BufferID, offset uint64, data []byte) {
	if a.err != nil {
		return
	}
	if _, err := a.w.WriteAt(data, int64(offset)); err != nil {
		a.err = fmt.Errorf("upload: write at %d: %w", offset, err)
	}
}

// Err returns the first error encountered by WriteBuffer.
func (a *WriterAt) Err() error { return a.err }
