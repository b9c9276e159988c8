package bitfield

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRejectsWidthAboveSixtyFour(t *testing.T) {
	_, err := New(FieldSpec{StartBit: 0, WidthInBits: 65, Tag: UnsignedIntegerLittleEndian})
	require.ErrorIs(t, err, ErrUnsupportedFieldShape)
}

func TestNewRejectsUnrecognizedTag(t *testing.T) {
	_, err := New(FieldSpec{StartBit: 0, WidthInBits: 8, Tag: TypeTag(200)})
	require.ErrorIs(t, err, ErrUnsupportedFieldShape)
}

func TestNewRejectsFloatAtUnsupportedAlignedWidth(t *testing.T) {
	_, err := New(FieldSpec{StartBit: 0, WidthInBits: 16, Tag: FloatLittleEndian})
	require.ErrorIs(t, err, ErrUnsupportedFieldShape)
}

func TestNewRejectsFloatAtUnsupportedGenericWidth(t *testing.T) {
	_, err := New(FieldSpec{StartBit: 1, WidthInBits: 7, Tag: FloatBigEndian})
	require.ErrorIs(t, err, ErrUnsupportedFieldShape)
}

func TestNewRejectsUnalignedWidthSixtyFour(t *testing.T) {
	_, err := New(FieldSpec{StartBit: 3, WidthInBits: 64, Tag: UnsignedIntegerLittleEndian})
	require.ErrorIs(t, err, ErrUnsupportedFieldShape)
}

func TestNewAcceptsFloatZeroAndOneWidth(t *testing.T) {
	zero := mustNew(t, FieldSpec{StartBit: 0, WidthInBits: 0, Tag: FloatBigEndian})
	require.Equal(t, float64(0), zero.ReadFloat64(make([]byte, 1)))

	bit := mustNew(t, FieldSpec{StartBit: 0, WidthInBits: 1, Tag: FloatLittleEndian})
	buf := make([]byte, 1)
	bit.WriteBool(buf, true)
	require.True(t, bit.ReadBool(buf))
}

func TestDispatchChoosesExpectedCodecKind(t *testing.T) {
	cases := []struct {
		name string
		spec FieldSpec
		want string
	}{
		{"zero", FieldSpec{StartBit: 4, WidthInBits: 0, Tag: SignedIntegerLittleEndian}, "*bitfield.zeroCodec"},
		{"bit", FieldSpec{StartBit: 4, WidthInBits: 1, Tag: SignedIntegerLittleEndian}, "*bitfield.bitCodec"},
		{"aligned", FieldSpec{StartBit: 8, WidthInBits: 16, Tag: SignedIntegerLittleEndian}, "*bitfield.alignedCodec"},
		{"generic-unaligned-start", FieldSpec{StartBit: 3, WidthInBits: 16, Tag: SignedIntegerLittleEndian}, "*bitfield.genericCodec"},
		{"generic-odd-width", FieldSpec{StartBit: 0, WidthInBits: 12, Tag: SignedIntegerLittleEndian}, "*bitfield.genericCodec"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := mustNew(t, tc.spec)
			require.Equal(t, tc.want, typeNameOf(a.c), "case %s", tc.name)
		})
	}
}

func typeNameOf(c codec) string {
	switch c.(type) {
	case *zeroCodec:
		return "*bitfield.zeroCodec"
	case *bitCodec:
		return "*bitfield.bitCodec"
	case *alignedCodec:
		return "*bitfield.alignedCodec"
	case *genericCodec:
		return "*bitfield.genericCodec"
	default:
		return "unknown"
	}
}
