// Package share implements n-out-of-n additive secret sharing of
// integers over fields of order 2ᵉ.
//
// A secret is split into a quantity of shares whose residues sum to it
// modulo the field order; no strict subset of the shares reveals
// anything about the secret. Shares are immutable values: arithmetic
// returns new shares and never modifies its operands.
package share

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/nthparty/additive/pkg/field"
)

// ErrIncompatibleParameters is returned when arithmetic is attempted
// between shares whose field parameters differ.
var ErrIncompatibleParameters = errors.New("share: shares must have identical field parameters")

// ErrNoShares is returned when reconstruction is attempted over an
// empty sequence of shares.
var ErrNoShares = errors.New("share: cannot sum an empty sequence of shares")

// Share is one additive secret share: a residue modulo 2ᵉ together with
// the field parameters it was produced under.
type Share struct {
	residue *saferith.Nat
	params  field.Parameters
}

// New encodes value under the given parameters and wraps it as a Share.
// The result is not yet secret-shared; it is the starting point handed
// to Shares, or a way to rebuild a share from a known residue value.
func New(value *big.Int, params field.Parameters) (*Share, error) {
	r, err := field.Encode(value, params)
	if err != nil {
		return nil, err
	}
	return fromResidue(r, params), nil
}

// Zero returns the additive identity for the given parameters.
// It serves as the initial element when folding a possibly empty
// sequence of shares.
func Zero(params field.Parameters) (*Share, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return fromResidue(new(saferith.Nat).SetUint64(0), params), nil
}

// fromResidue wraps an already reduced residue without any checks.
// The residue is owned by the new share and must not be modified by the
// caller afterwards.
func fromResidue(r *saferith.Nat, params field.Parameters) *Share {
	return &Share{residue: r, params: params}
}

// Params returns the field parameters this share was produced under.
func (s *Share) Params() field.Parameters {
	return s.params
}

// Residue returns a copy of this share's residue in [0, 2ᵉ).
func (s *Share) Residue() *saferith.Nat {
	return new(saferith.Nat).SetNat(s.residue)
}

// Add returns a new share whose residue is the sum of both operands
// modulo 2ᵉ. Both shares must carry identical field parameters.
// Addition is commutative and associative.
func (s *Share) Add(other *Share) (*Share, error) {
	if s.params != other.params {
		return nil, fmt.Errorf("%w: %v and %v", ErrIncompatibleParameters, s.params, other.params)
	}
	m := s.params.Modulus()
	r := new(saferith.Nat).ModAdd(s.residue, other.residue, m.Modulus)
	return fromResidue(r, s.params), nil
}

// Sum folds a non-empty sequence of shares with Add.
// Applied to a complete share set, the result carries the residue of
// the original secret.
func Sum(shares ...*Share) (*Share, error) {
	if len(shares) == 0 {
		return nil, ErrNoShares
	}
	total := shares[0]
	var err error
	for _, s := range shares[1:] {
		if total, err = total.Add(s); err != nil {
			return nil, err
		}
	}
	return total, nil
}

// ToInt decodes this share's residue using its own parameters.
// The result is the secret only when called on the sum of a complete
// share set; on an individual share it is an opaque field element.
func (s *Share) ToInt() *big.Int {
	return field.Decode(s.residue, s.params)
}

// Equal reports whether both shares have the same parameters and the
// same residue.
func (s *Share) Equal(other *Share) bool {
	return s.params == other.params && s.residue.Eq(other.residue) == 1
}

func (s *Share) String() string {
	return fmt.Sprintf("Share(%v, %d, %t)", s.residue.Big(), s.params.Exponent, s.params.Signed)
}
