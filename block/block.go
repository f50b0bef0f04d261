// Package block reads a byte stream as a sequence of fixed-size, comparable
// tiles. It mirrors the generic LookupBlock bound of the source
// implementation: any fixed-width value can stand in for one tile as long as
// it can be hashed and compared for equality, which is exactly what the lut
// package needs to build an inverse-index lookup table.
package block

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Block4 represents one 4-byte tile (Rgba8 pixels).
type Block4 [4]byte

// Block8 represents one 8-byte tile (Bc1 blocks).
type Block8 [8]byte

// Block16 represents one 16-byte tile (Bc3, Bc7, and RgbaF32 blocks/pixels).
type Block16 [16]byte

// Block is any fixed-size tile this package knows how to read. Arrays are
// naturally comparable, satisfying the same role the source's LookupBlock
// trait gives u32/u64/u128.
type Block interface {
	Block4 | Block8 | Block16
}

// Read decodes buf as a contiguous sequence of T, little-endian, stopping
// at the last complete tile. A trailing partial tile is silently dropped,
// matching the source's read_vec loop which stops at the first read error.
func Read[T Block](buf []byte) []T {
	var zero T
	size := len(zero)
	if size == 0 {
		return nil
	}

	count := len(buf) / size
	out := make([]T, count)
	for i := 0; i < count; i++ {
		for j := 0; j < size; j++ {
			out[i][j] = buf[i*size+j]
		}
	}
	return out
}

// ReadLE decodes buf into n little-endian uint64 lane values per tile,
// useful for formats (like RgbaF32) where individual lanes need further
// interpretation rather than raw byte comparison.
func ReadLE(buf []byte, size int) ([]uint64, error) {
	if size <= 0 || size > 8 {
		return nil, errors.Errorf("block: unsupported lane size %d", size)
	}
	if len(buf)%size != 0 {
		return nil, errors.New("block: buffer length not a multiple of lane size")
	}

	out := make([]uint64, len(buf)/size)
	for i := range out {
		chunk := buf[i*size : (i+1)*size]
		var padded [8]byte
		copy(padded[:], chunk)
		out[i] = binary.LittleEndian.Uint64(padded[:])
	}
	return out, nil
}

// SizeFor returns the byte width of the block type T.
func SizeFor[T Block]() int {
	var zero T
	return len(zero)
}
