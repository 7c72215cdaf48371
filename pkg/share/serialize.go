package share

import (
	"encoding/base64"
	"fmt"

	"github.com/nthparty/additive/pkg/field"
)

// Bytes returns the canonical big-endian encoding of this share's
// residue, always exactly ⌈e/8⌉ bytes. The field parameters are not
// part of the encoding; the receiving side supplies them again when
// parsing.
func (s *Share) Bytes() []byte {
	return field.Bytes(s.residue, s.params.Exponent)
}

// Base64 returns the standard base64 encoding of Bytes.
func (s *Share) Base64() string {
	return base64.StdEncoding.EncodeToString(s.Bytes())
}

// FromBytes parses a share from its canonical byte encoding under the
// given parameters. The byte length must equal ⌈e/8⌉.
func FromBytes(data []byte, params field.Parameters) (*Share, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	r, err := field.FromBytes(data, params.Exponent)
	if err != nil {
		return nil, err
	}
	return fromResidue(r, params), nil
}

// FromBase64 parses a share from the base64 encoding of its canonical
// byte form under the given parameters.
func FromBase64(text string, params field.Parameters) (*Share, error) {
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64: %v", field.ErrFormat, err)
	}
	return FromBytes(data, params)
}

// InferFromBytes parses a share from raw bytes that carry no parameter
// information, taking the exponent to be eight times the byte length
// and the encoding to be unsigned.
func InferFromBytes(data []byte) (*Share, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty encoding", field.ErrFormat)
	}
	return FromBytes(data, field.Parameters{Exponent: 8 * uint(len(data))})
}

// InferFromBase64 parses a share from the base64 encoding of raw bytes,
// inferring parameters the same way as InferFromBytes.
func InferFromBase64(text string) (*Share, error) {
	data, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64: %v", field.ErrFormat, err)
	}
	return InferFromBytes(data)
}
