package field

import (
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"

	"github.com/cronokirby/saferith"
)

// ErrRange is returned when a value cannot be represented as a residue
// under the supplied parameters.
var ErrRange = errors.New("field: value is not in the range representable with the supplied parameters")

// ErrFormat is returned when a serialized residue is malformed.
var ErrFormat = errors.New("field: malformed residue encoding")

// Encode maps an integer to its residue modulo 2ᵉ.
// Unsigned parameters accept values in [0, 2ᵉ-1]; signed parameters
// accept values in [-2ᵉ⁻¹, 2ᵉ⁻¹-1] and use the two's-complement
// convention, so negative values map to the upper half of the field.
func Encode(v *big.Int, p Parameters) (*saferith.Nat, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	min, max := bounds(p)
	if v.Cmp(min) < 0 || v.Cmp(max) > 0 {
		return nil, fmt.Errorf("%w: %v with exponent %d, signed %t", ErrRange, v, p.Exponent, p.Signed)
	}
	// big.Int.Mod returns a non-negative result for a positive modulus,
	// which is exactly the two's-complement residue for negative v.
	r := new(big.Int).Mod(v, p.Modulus().Big())
	return new(saferith.Nat).SetBig(r, int(p.Exponent)), nil
}

// Decode maps a residue back to the integer it encodes under p.
func Decode(r *saferith.Nat, p Parameters) *big.Int {
	v := r.Big()
	if p.Signed {
		half := new(big.Int).Lsh(big.NewInt(1), p.Exponent-1)
		if v.Cmp(half) >= 0 {
			v.Sub(v, p.Modulus().Big())
		}
	}
	return v
}

// Bytes returns the canonical big-endian encoding of a residue modulo
// 2ᵉ, always exactly ⌈e/8⌉ bytes.
func Bytes(r *saferith.Nat, exponent uint) []byte {
	// Resize fixes the announced length to e bits, which pins the width
	// of Bytes to ⌈e/8⌉. Lossless since r < 2ᵉ.
	return new(saferith.Nat).SetNat(r).Resize(int(exponent)).Bytes()
}

// FromBytes parses the canonical big-endian encoding of a residue.
// Any length other than ⌈e/8⌉, or any set bit above the exponent,
// results in ErrFormat; data is never truncated or padded.
func FromBytes(data []byte, exponent uint) (*saferith.Nat, error) {
	width := int(exponent+7) / 8
	if len(data) != width {
		return nil, fmt.Errorf("%w: got %d bytes, expected %d for exponent %d", ErrFormat, len(data), width, exponent)
	}
	if bits := exponent % 8; bits != 0 && data[0]>>bits != 0 {
		return nil, fmt.Errorf("%w: residue exceeds field order 2^%d", ErrFormat, exponent)
	}
	return new(saferith.Nat).SetBytes(data), nil
}

// Base64 returns the standard base64 encoding of Bytes(r, exponent).
func Base64(r *saferith.Nat, exponent uint) string {
	return base64.StdEncoding.EncodeToString(Bytes(r, exponent))
}

// FromBase64 parses a residue from the standard base64 encoding of its
// canonical byte form.
func FromBase64(text string, exponent uint) (*saferith.Nat, error) {
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64: %v", ErrFormat, err)
	}
	return FromBytes(data, exponent)
}

func bounds(p Parameters) (min, max *big.Int) {
	one := big.NewInt(1)
	if p.Signed {
		half := new(big.Int).Lsh(one, p.Exponent-1)
		min = new(big.Int).Neg(half)
		max = new(big.Int).Sub(half, one)
		return
	}
	min = new(big.Int)
	max = new(big.Int).Sub(new(big.Int).Lsh(one, p.Exponent), one)
	return
}
