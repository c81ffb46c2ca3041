//go:build vtxdebug

package vtxpack

import "fmt"

const debugChecks = true

// checkStreams panics if any stream taking part in a call does not cover
// [offset, offset+count). withAttrs selects whether UV, color and normal
// streams take part (they do not for a bare transform).
func checkStreams(s Streams, offset, count int, withAttrs bool) {
	if offset < 0 {
		panic(fmt.Sprintf("vtxpack: negative vertex offset %d", offset))
	}
	end := offset + count
	check := func(name string, n int) {
		if n < end {
			panic(fmt.Sprintf("vtxpack: %s stream has %d vertices, range needs %d", name, n, end))
		}
	}
	check("x", len(s.X))
	check("y", len(s.Y))
	check("z", len(s.Z))
	if !withAttrs {
		return
	}
	check("u", len(s.U))
	check("v", len(s.V))
	check("color", len(s.Color))
	check("normal", len(s.Normal))
}

// checkWords panics if a word slice of length n cannot hold count records
// starting at offset.
func checkWords(n, offset, count int) {
	if offset < 0 {
		panic(fmt.Sprintf("vtxpack: negative word offset %d", offset))
	}
	if need := offset + count*WordsPerVertex; n < need {
		panic(fmt.Sprintf("vtxpack: output has %d words, %d vertices at offset %d need %d",
			n, count, offset, need))
	}
}
