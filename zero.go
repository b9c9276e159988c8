package bitfield

// zeroCodec implements the width-0 field: reads always yield zero,
// writes are no-ops, and no byte of the buffer is ever touched.
type zeroCodec struct {
	k valueKind
}

func newZeroCodec(tag TypeTag) *zeroCodec {
	return &zeroCodec{k: tag.kind()}
}

func (z *zeroCodec) kind() valueKind            { return z.k }
func (z *zeroCodec) width() uint32              { return 0 }
func (z *zeroCodec) readBits(buf []byte) uint64 { return 0 }
func (z *zeroCodec) writeBits(buf []byte, bitsVal uint64) {}
