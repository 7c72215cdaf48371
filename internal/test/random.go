package test

import (
	"io"

	"github.com/zeebo/blake3"
)

// Rand returns a deterministic io.Reader derived from seed.
//
// The stream is the blake3 XOF of the seed, so the same seed always
// yields the same byte sequence. It stands in for crypto/rand.Reader
// when share generation needs to be reproducible in tests.
func Rand(seed []byte) io.Reader {
	h := blake3.New()
	_, _ = h.Write(seed)
	return h.Digest()
}
