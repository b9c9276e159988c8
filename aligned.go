package bitfield

import "encoding/binary"

// alignedCodec implements a byte-aligned field of width 8, 16, 32 or
// 64 bits: a single machine-word load or store with an optional byte
// swap. The buffer's in-memory byte order is always little-endian;
// a big-endian tag swaps the word immediately after loading (read)
// or immediately before storing (write).
type alignedCodec struct {
	byteOffset int
	widthBits  uint32
	swap       bool
	k          valueKind
}

func newAlignedCodec(startBit, widthInBits uint32, tag TypeTag) (*alignedCodec, error) {
	if tag.isFloat() && widthInBits != 32 && widthInBits != 64 {
		return nil, errorShape("float field must be 32 or 64 bits wide, got %d", widthInBits)
	}
	return &alignedCodec{
		byteOffset: int(startBit / 8),
		widthBits:  widthInBits,
		swap:       tag.bigEndian(),
		k:          tag.kind(),
	}, nil
}

func (a *alignedCodec) kind() valueKind { return a.k }
func (a *alignedCodec) width() uint32   { return a.widthBits }

func (a *alignedCodec) readBits(buf []byte) uint64 {
	var raw uint64
	switch a.widthBits {
	case 8:
		raw = uint64(buf[a.byteOffset])
	case 16:
		v := binary.LittleEndian.Uint16(buf[a.byteOffset:])
		if a.swap {
			v = swap16(v)
		}
		raw = uint64(v)
	case 32:
		v := binary.LittleEndian.Uint32(buf[a.byteOffset:])
		if a.swap {
			v = swap32(v)
		}
		raw = uint64(v)
	case 64:
		v := binary.LittleEndian.Uint64(buf[a.byteOffset:])
		if a.swap {
			v = swap64(v)
		}
		raw = v
	}
	return extendByKind(raw, a.k, a.widthBits)
}

func (a *alignedCodec) writeBits(buf []byte, bitsVal uint64) {
	switch a.widthBits {
	case 8:
		buf[a.byteOffset] = byte(bitsVal)
	case 16:
		v := uint16(bitsVal)
		if a.swap {
			v = swap16(v)
		}
		binary.LittleEndian.PutUint16(buf[a.byteOffset:], v)
	case 32:
		v := uint32(bitsVal)
		if a.swap {
			v = swap32(v)
		}
		binary.LittleEndian.PutUint32(buf[a.byteOffset:], v)
	case 64:
		v := bitsVal
		if a.swap {
			v = swap64(v)
		}
		binary.LittleEndian.PutUint64(buf[a.byteOffset:], v)
	}
}
