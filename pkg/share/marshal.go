package share

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/nthparty/additive/pkg/field"
)

// shareMarshal is the cbor envelope for a Share. Unlike the raw byte
// form, it carries the field parameters, so the receiving side needs no
// out-of-band information.
type shareMarshal struct {
	Exponent uint
	Signed   bool
	Residue  []byte
}

// MarshalBinary returns a self-describing cbor encoding of this share.
func (s *Share) MarshalBinary() ([]byte, error) {
	return cbor.Marshal(&shareMarshal{
		Exponent: s.params.Exponent,
		Signed:   s.params.Signed,
		Residue:  s.Bytes(),
	})
}

// UnmarshalBinary parses a share from its cbor encoding, validating the
// embedded parameters and residue width.
func (s *Share) UnmarshalBinary(data []byte) error {
	var sm shareMarshal
	if err := cbor.Unmarshal(data, &sm); err != nil {
		return fmt.Errorf("%w: %v", field.ErrFormat, err)
	}
	parsed, err := FromBytes(sm.Residue, field.Parameters{Exponent: sm.Exponent, Signed: sm.Signed})
	if err != nil {
		return err
	}
	*s = *parsed
	return nil
}
