package arith

import (
	"math/big"

	"github.com/cronokirby/saferith"
)

// Modulus wraps a saferith.Modulus whose value is a power of two 2ᵉ,
// keeping the exponent alongside it.
// Knowing the modulus is a power of two lets callers sample uniform
// residues by masking random bytes instead of rejection sampling.
type Modulus struct {
	// represents modulus 2ᵉ
	*saferith.Modulus
	exponent uint
}

// Pow2 creates the modulus 2ᵉ for a given exponent e.
// It panics when e is 0; callers validate exponents at the API boundary.
func Pow2(exponent uint) *Modulus {
	if exponent < 1 {
		panic("arith.Pow2: exponent must be at least 1")
	}
	// big-endian bytes of 2ᵉ: a leading bit followed by e zero bits.
	buf := make([]byte, exponent/8+1)
	buf[0] = 1 << (exponent % 8)
	n := new(saferith.Nat).SetBytes(buf)
	return &Modulus{
		Modulus:  saferith.ModulusFromNat(n),
		exponent: exponent,
	}
}

// Exponent returns e for the modulus 2ᵉ.
func (m *Modulus) Exponent() uint {
	return m.exponent
}

// ByteLen returns the number of bytes needed to store any residue
// modulo 2ᵉ, i.e. ⌈e/8⌉.
func (m *Modulus) ByteLen() int {
	return int(m.exponent+7) / 8
}

// Big returns the modulus as a big.Int.
func (m *Modulus) Big() *big.Int {
	return m.Modulus.Nat().Big()
}
