package upload

// BufferID is an opaque handle to a GPU buffer.
// The zero value is InvalidID.
type BufferID uint64

// InvalidID is the zero value, representing an invalid/null buffer.
const InvalidID BufferID = 0

// BufferUsage is a bitmask specifying how a buffer will be used.
type BufferUsage uint32

// Buffer usage flags.
const (
	BufferUsageMapRead  BufferUsage = 1 << 0
	BufferUsageMapWrite BufferUsage = 1 << 1
	BufferUsageCopySrc  BufferUsage = 1 << 2
	BufferUsageCopyDst  BufferUsage = 1 << 3
	BufferUsageIndex    BufferUsage = 1 << 4
	BufferUsageVertex   BufferUsage = 1 << 5
	BufferUsageUniform  BufferUsage = 1 << 6
	BufferUsageStorage  BufferUsage = 1 << 7
)

// VertexBufferUsage is the usage a destination buffer needs to receive
// packed records through a queue write and be bound as a vertex buffer.
const VertexBufferUsage = BufferUsageVertex | BufferUsageCopyDst

// Has reports whether u contains every flag in flags.
func (u BufferUsage) Has(flags BufferUsage) bool {
	return u&flags == flags
}

var usageNames = [...]string{
	"map-read", "map-write", "copy-src", "copy-dst",
	"index", "vertex", "uniform", "storage",
}

// String returns the set flags joined by '|', or "none".
func (u BufferUsage) String() string {
	if u == 0 {
		return "none"
	}
	var s string
	for i, name := range usageNames {
		if u&(1<<i) == 0 {
			continue
		}
		if s != "" {
			s += "|"
		}
		s += name
	}
	if rest := u &^ (1<<len(usageNames) - 1); rest != 0 {
		if s != "" {
			s += "|"
		}
		s += "unknown"
	}
	return s
}
