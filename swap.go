package bitfield

import "math/bits"

// swap16, swap32 and swap64 reverse the byte order of a 16/32/64-bit
// unsigned word. Go exposes the same hardware byte-swap intrinsics
// the original source reached for by hand via math/bits; there is no
// shift/mask fallback to write because ReverseBytesNN already
// compiles to BSWAP/REV on every platform Go targets.
func swap16(v uint16) uint16 { return bits.ReverseBytes16(v) }
func swap32(v uint32) uint32 { return bits.ReverseBytes32(v) }
func swap64(v uint64) uint64 { return bits.ReverseBytes64(v) }
