package sample

import (
	"fmt"
	"io"

	"github.com/cronokirby/saferith"
	"github.com/nthparty/additive/pkg/math/arith"
)

const maxIterations = 255

var ErrMaxIterations = fmt.Errorf("sample: failed to read randomness after %d iterations", maxIterations)

func mustReadBits(rand io.Reader, buf []byte) {
	for i := 0; i < maxIterations; i++ {
		if _, err := io.ReadFull(rand, buf); err == nil {
			return
		}
	}
	panic(ErrMaxIterations)
}

// Residue samples a uniform element of ℤ_{2ᵉ}.
// Since the modulus is a power of two, clearing the bits above e keeps
// the draw uniform and no rejection loop is needed.
func Residue(rand io.Reader, m *arith.Modulus) *saferith.Nat {
	buf := make([]byte, m.ByteLen())
	mustReadBits(rand, buf)
	if bits := m.Exponent() % 8; bits != 0 {
		buf[0] &= byte(1<<bits) - 1
	}
	return new(saferith.Nat).SetBytes(buf)
}
