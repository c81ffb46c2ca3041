//go:build !vtxdebug

package vtxpack

// debugChecks enables range assertions at the public entry points.
// Build with -tags vtxdebug to turn them on.
const debugChecks = false

func checkStreams(Streams, int, int, bool) {}

func checkWords(int, int, int) {}
