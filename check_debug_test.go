//go:build vtxdebug

package vtxpack

import "testing"

func TestDebugChecks(t *testing.T) {
	s := threeVertexStreams()
	p := ScalarPipeline()

	tests := []struct {
		name string
		call func()
	}{
		{"short output", func() { PackToWords(s, 0, 3, make([]uint32, 20), 0) }},
		{"range past streams", func() { p.TransformThenPack(s, 1, 3, Identity(), make([]uint32, 21), 0) }},
		{"negative offset", func() { PackToBuffer(s, -1, 2, newSliceBuffer(21), 0) }},
		{"short color stream", func() {
			bad := s
			bad.Color = bad.Color[:1]
			PackToWords(bad, 0, 3, make([]uint32, 21), 0)
		}},
		{"in-place past end", func() { p.TransformAffine3x4InPlace(s.X, s.Y, s.Z, 0, 4, Identity()) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected range assertion panic")
				}
			}()
			tt.call()
		})
	}
}
