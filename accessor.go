package bitfield

// FieldSpec names where a field lives and how to interpret it:
// StartBit and WidthInBits count in bits from the start of the
// buffer; Tag selects signedness or floating point, and byte order.
type FieldSpec struct {
	StartBit    uint32
	WidthInBits uint32
	Tag         TypeTag
}

func isByteAlignedWidth(width uint32) bool {
	switch width {
	case 8, 16, 32, 64:
		return true
	default:
		return false
	}
}

// Accessor reads and writes one field, at the bit offset, width and
// type tag given to New, against any buffer supplied to its
// Read*/Write* methods. An Accessor holds no reference to any
// buffer, is immutable after construction, and is safe to share
// across goroutines operating on disjoint buffers.
type Accessor struct {
	spec FieldSpec
	c    codec
}

// New builds an Accessor for spec, choosing among the zero, bit,
// aligned and generic codecs by field shape:
//
//	width 0                                  -> zero codec
//	width 1                                  -> bit codec
//	width in {8,16,32,64}, byte-aligned start -> aligned codec
//	everything else                          -> generic codec
//
// It fails with ErrUnsupportedFieldShape when the type tag is
// unrecognized, the width exceeds 64 bits, a floating-point tag is
// paired with a width the chosen codec cannot realize, or a generic
// field's width plus its sub-byte start offset exceeds 64 bits.
func New(spec FieldSpec) (*Accessor, error) {
	if !spec.Tag.valid() {
		return nil, errorShape("type tag %d is not a recognized value", spec.Tag)
	}
	if spec.WidthInBits > 64 {
		return nil, errorShape("width %d exceeds the maximum of 64 bits", spec.WidthInBits)
	}

	var c codec
	var err error
	switch {
	case spec.WidthInBits == 0:
		c = newZeroCodec(spec.Tag)
	case spec.WidthInBits == 1:
		c = newBitCodec(spec.StartBit, spec.Tag)
	case isByteAlignedWidth(spec.WidthInBits) && spec.StartBit%8 == 0:
		c, err = newAlignedCodec(spec.StartBit, spec.WidthInBits, spec.Tag)
	default:
		c, err = newGenericCodec(spec.StartBit, spec.WidthInBits, spec.Tag)
	}
	if err != nil {
		return nil, err
	}
	return &Accessor{spec: spec, c: c}, nil
}

// ReadUint64 reads the field as an unsigned 64-bit integer, widening
// via the codec's natural signedness.
func (a *Accessor) ReadUint64(buf []byte) uint64 {
	return toUint64(a.c.readBits(buf), a.c.kind(), a.c.width())
}

// WriteUint64 writes v into the field, truncating to the codec's
// natural width by two's-complement wrap.
func (a *Accessor) WriteUint64(buf []byte, v uint64) {
	a.c.writeBits(buf, fromUint64(v, a.c.kind(), a.c.width()))
}

// ReadInt64 reads the field as a signed 64-bit integer, sign- or
// zero-extending per the codec's natural signedness.
func (a *Accessor) ReadInt64(buf []byte) int64 {
	return toInt64(a.c.readBits(buf), a.c.kind(), a.c.width())
}

// WriteInt64 writes v into the field, truncating to the codec's
// natural width by two's-complement wrap.
func (a *Accessor) WriteInt64(buf []byte, v int64) {
	a.c.writeBits(buf, fromInt64(v, a.c.kind(), a.c.width()))
}

// ReadUint32 reads the field as an unsigned 32-bit integer.
func (a *Accessor) ReadUint32(buf []byte) uint32 {
	return uint32(a.ReadUint64(buf))
}

// WriteUint32 writes v into the field.
func (a *Accessor) WriteUint32(buf []byte, v uint32) {
	a.WriteUint64(buf, uint64(v))
}

// ReadInt32 reads the field as a signed 32-bit integer.
func (a *Accessor) ReadInt32(buf []byte) int32 {
	return int32(a.ReadInt64(buf))
}

// WriteInt32 writes v into the field.
func (a *Accessor) WriteInt32(buf []byte, v int32) {
	a.WriteInt64(buf, int64(v))
}

// ReadFloat64 reads the field as a float64. For a floating-point
// codec this reinterprets the stored bit pattern; for an integer
// codec it converts the integer's numeric value to float64.
func (a *Accessor) ReadFloat64(buf []byte) float64 {
	return toFloat64(a.c.readBits(buf), a.c.kind(), a.c.width())
}

// WriteFloat64 writes v into the field. For a floating-point codec
// this stores v's bit pattern (narrowed to float32 first if the
// field is 32 bits wide); for an integer codec it truncates v to an
// integer before placement.
func (a *Accessor) WriteFloat64(buf []byte, v float64) {
	a.c.writeBits(buf, fromFloat64(v, a.c.kind(), a.c.width()))
}

// ReadFloat32 reads the field as a float32.
func (a *Accessor) ReadFloat32(buf []byte) float32 {
	return toFloat32(a.c.readBits(buf), a.c.kind(), a.c.width())
}

// WriteFloat32 writes v into the field.
func (a *Accessor) WriteFloat32(buf []byte, v float32) {
	a.c.writeBits(buf, fromFloat32(v, a.c.kind(), a.c.width()))
}

// ReadBool reads the field as a boolean: true iff its numeric value
// is non-zero. Going through the float conversion (rather than
// comparing the raw bit pattern) matters for a float-kind codec
// holding negative zero, whose bit pattern is non-zero but whose
// numeric value is not.
func (a *Accessor) ReadBool(buf []byte) bool {
	return a.ReadFloat64(buf) != 0
}

// WriteBool writes the numeric value 1 or 0 into the field, through
// the same kind-aware conversion every other write uses. For a
// float-kind codec this stores the bit pattern of 1.0/0.0, matching
// the original's static_cast<T>(value) on a bool; writing the raw
// integer bit pattern 1 would land on a subnormal float instead.
func (a *Accessor) WriteBool(buf []byte, v bool) {
	var numeric float64
	if v {
		numeric = 1
	}
	a.c.writeBits(buf, fromFloat64(numeric, a.c.kind(), a.c.width()))
}
