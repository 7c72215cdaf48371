package share

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/cronokirby/saferith"
	"github.com/nthparty/additive/internal/params"
	"github.com/nthparty/additive/pkg/field"
	"github.com/nthparty/additive/pkg/math/sample"
)

// DefaultQuantity is the number of shares produced by Split.
const DefaultQuantity = params.DefaultQuantity

// ErrQuantity is returned when share generation is asked for fewer than
// one share.
var ErrQuantity = errors.New("share: quantity must be at least 1")

// Shares splits value into quantity shares whose residues sum to its
// encoding modulo 2ᵉ.
//
// All but the last share are drawn uniformly from rand, and the last is
// chosen so the set reconstructs the value; the order of the returned
// shares carries no meaning. Production callers pass crypto/rand.Reader
// for rand; tests may substitute any deterministic stream. rand must be
// safe for concurrent use if Shares is called from multiple goroutines.
func Shares(rand io.Reader, value *big.Int, p field.Parameters, quantity int) ([]*Share, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w (got %d)", ErrQuantity, quantity)
	}
	residue, err := field.Encode(value, p)
	if err != nil {
		return nil, err
	}

	m := p.Modulus()
	result := make([]*Share, 0, quantity)
	total := new(saferith.Nat).SetUint64(0)
	for i := 1; i < quantity; i++ {
		r := sample.Residue(rand, m)
		total.ModAdd(total, r, m.Modulus)
		result = append(result, fromResidue(r, p))
	}
	last := new(saferith.Nat).ModSub(residue, total, m.Modulus)
	return append(result, fromResidue(last, p)), nil
}

// Split is shorthand for Shares with the default quantity of 2.
func Split(rand io.Reader, value *big.Int, p field.Parameters) ([]*Share, error) {
	return Shares(rand, value, p, DefaultQuantity)
}
