package vaultutil

import (
	"crypto/rand"
	"io"
)

var randReader io.Reader = rand.Reader

// SetRandReaderForTesting swaps the package's randomness source for the
// duration of a test and returns a function that restores it. Tests that
// need deterministic file names can call this with a seeded reader.
func SetRandReaderForTesting(r io.Reader) (restore func()) {
	prev := randReader
	randReader = r
	return func() { randReader = prev }
}
