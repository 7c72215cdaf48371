package field

import (
	"errors"
	"fmt"

	"github.com/nthparty/additive/internal/params"
	"github.com/nthparty/additive/pkg/math/arith"
)

// ErrExponent is returned when parameters request an exponent smaller than 1.
var ErrExponent = errors.New("field: exponent must be at least 1")

// Parameters describes a finite field of order 2^Exponent, together with
// the convention used for encoding integers as residues.
//
// When Signed is set, residues carry two's-complement values in
// [-2^(e-1), 2^(e-1)-1]; otherwise they carry values in [0, 2^e-1].
// Parameters are comparable with ==.
type Parameters struct {
	Exponent uint
	Signed   bool
}

// Default returns the parameters assumed when a caller does not specify
// any: an unsigned field of order 2³².
func Default() Parameters {
	return Parameters{Exponent: params.DefaultExponent}
}

// Validate ensures the exponent defines a valid field order.
func (p Parameters) Validate() error {
	if p.Exponent < 1 {
		return fmt.Errorf("%w (got %d)", ErrExponent, p.Exponent)
	}
	return nil
}

// ByteLen returns the canonical serialization width ⌈Exponent/8⌉.
func (p Parameters) ByteLen() int {
	return int(p.Exponent+7) / 8
}

// Modulus returns the field order 2^Exponent.
// It panics on invalid parameters, so Validate first at API boundaries.
func (p Parameters) Modulus() *arith.Modulus {
	return arith.Pow2(p.Exponent)
}
