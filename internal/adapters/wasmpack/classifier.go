package wasmpack

import "strings"

// The two recognized cache-contention signatures. wasm-pack reports them
// when two invocations race on its shared global cache: a cache directory
// found non-empty by a concurrent move, and a cached binary that vanished
// mid-read.
const (
	sigDirNotEmpty = "Error: Directory not empty"
	sigBinaryGone  = "binary does not exist"
)

// IsCacheContention reports whether stderr carries a known transient
// cache-contention signature. Everything else on a non-zero exit is fatal.
//
// Matching human-readable diagnostic substrings is a brittle contract tied
// to wasm-pack's wording. The matching is kept in this one function so it
// can be swapped for a structured signal if the toolchain ever exposes one.
func IsCacheContention(stderr string) bool {
	return strings.Contains(stderr, sigDirNotEmpty) ||
		strings.Contains(stderr, sigBinaryGone)
}
