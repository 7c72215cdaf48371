package share

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/nthparty/additive/pkg/field"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShare_BytesRoundTrip(t *testing.T) {
	for _, p := range []field.Parameters{
		{Exponent: 4},
		{Exponent: 8},
		{Exponent: 8, Signed: true},
		{Exponent: 13, Signed: true},
		{Exponent: 32},
		{Exponent: 128, Signed: true},
	} {
		ss, err := Split(rand.Reader, big.NewInt(7), p)
		require.NoError(t, err)
		for _, s := range ss {
			data := s.Bytes()
			assert.Len(t, data, p.ByteLen())

			parsed, err := FromBytes(data, p)
			require.NoError(t, err)
			assert.True(t, s.Equal(parsed))
		}
	}
}

func TestShare_Base64RoundTrip(t *testing.T) {
	p := field.Parameters{Exponent: 32, Signed: true}
	ss, err := Split(rand.Reader, big.NewInt(-123), p)
	require.NoError(t, err)
	for _, s := range ss {
		parsed, err := FromBase64(s.Base64(), p)
		require.NoError(t, err)
		assert.True(t, s.Equal(parsed))
	}
}

// Shares serialized on one side and reconstructed on the other recover
// the secret.
func TestShare_Base64Transport(t *testing.T) {
	p := field.Parameters{Exponent: 32, Signed: true}
	ss, err := Shares(rand.Reader, big.NewInt(-123), p, 3)
	require.NoError(t, err)

	received := make([]*Share, len(ss))
	for i, s := range ss {
		received[i], err = FromBase64(s.Base64(), p)
		require.NoError(t, err)
	}
	total, err := Sum(received...)
	require.NoError(t, err)
	assert.Equal(t, int64(-123), total.ToInt().Int64())
}

func TestInferFromBase64(t *testing.T) {
	s, err := InferFromBase64("HgEA")
	require.NoError(t, err)
	assert.Equal(t, "1e0100", hex.EncodeToString(s.Bytes()))
	assert.Equal(t, field.Parameters{Exponent: 24}, s.Params())
	assert.Equal(t, "HgEA", s.Base64())
}

func TestInferFromBytes(t *testing.T) {
	s, err := InferFromBytes([]byte{0x01, 0x02})
	require.NoError(t, err)
	assert.Equal(t, field.Parameters{Exponent: 16}, s.Params())
	assert.Equal(t, int64(0x0102), s.ToInt().Int64())

	_, err = InferFromBytes(nil)
	require.ErrorIs(t, err, field.ErrFormat)
}

func TestFromBytes_Invalid(t *testing.T) {
	_, err := FromBytes([]byte{1, 2, 3}, field.Parameters{Exponent: 16})
	require.ErrorIs(t, err, field.ErrFormat)
	_, err = FromBytes([]byte{1}, field.Parameters{})
	require.ErrorIs(t, err, field.ErrExponent)
}

func TestFromBase64_Invalid(t *testing.T) {
	_, err := FromBase64("@@@", field.Default())
	require.ErrorIs(t, err, field.ErrFormat)
	_, err = InferFromBase64("@@@")
	require.ErrorIs(t, err, field.ErrFormat)
	// empty text decodes to zero bytes, which infers no field at all
	_, err = InferFromBase64("")
	require.ErrorIs(t, err, field.ErrFormat)
}

func TestShare_MarshalBinary(t *testing.T) {
	p := field.Parameters{Exponent: 13, Signed: true}
	ss, err := Shares(rand.Reader, big.NewInt(-1000), p, 3)
	require.NoError(t, err)

	for _, s := range ss {
		data, err := s.MarshalBinary()
		require.NoError(t, err)

		var parsed Share
		require.NoError(t, parsed.UnmarshalBinary(data))
		assert.True(t, s.Equal(&parsed))
		assert.Equal(t, p, parsed.Params())
	}
}

func TestShare_UnmarshalBinary_Invalid(t *testing.T) {
	var s Share
	require.Error(t, s.UnmarshalBinary([]byte("not cbor")))
	require.Error(t, s.UnmarshalBinary(nil))
}
