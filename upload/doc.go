// Package upload moves packed vertex records toward a GPU buffer.
//
// A [Staging] buffer is a byte-addressed [vtxpack.WordBuffer]: pipelines pack
// into it with TransformThenPackBuffer and its bytes are exactly the 28-byte
// little-endian records the vertex layout describes. [Upload] then hands those
// bytes to a [BufferWriter], the narrow boundary to whatever owns the GPU queue.
//
//	st := upload.NewStaging(count)
//	p.TransformThenPackBuffer(streams, 0, count, m, st, 0)
//	if err := upload.Upload(queue, vertexBuf, 0, st); err != nil {
//		return err
//	}
//
// Resources are referenced by opaque [BufferID] handles; the writer is
// responsible for mapping them to real buffers.
package upload
