// Package gen produces synthetic tile payloads whose tiles are all
// pairwise distinct. Feeding generated data through Swizzle and then
// through lut.BuildLUT against the original linear order is how the mask
// formulas in the root package get verified (and were originally
// reverse-engineered): a permutation is only recoverable from a buffer
// where no two tiles collide.
package gen

import (
	"encoding/binary"
	"math"
)

// RGBA8 writes tileCount unique 4-byte tiles: each tile is its own linear
// index as a little-endian uint32, giving one unique value per pixel.
func RGBA8(tileCount int) []byte {
	out := make([]byte, tileCount*4)
	for i := 0; i < tileCount; i++ {
		binary.LittleEndian.PutUint32(out[i*4:], uint32(i))
	}
	return out
}

// RGBAF32 writes tileCount unique 16-byte tiles: each tile's red channel
// carries the linear index as a float32, with green/blue/alpha zeroed.
//
// Only indices representable exactly as float32 stay unique; the source
// notes the same ceiling (16,777,216) without working around it, so this
// generator preserves that limitation rather than silently fixing it.
func RGBAF32(tileCount int) []byte {
	out := make([]byte, tileCount*16)
	for i := 0; i < tileCount; i++ {
		off := i * 16
		binary.LittleEndian.PutUint32(out[off:], math.Float32bits(float32(i)))
		// green, blue, alpha stay zero
	}
	return out
}

// BC1 writes tileCount unique 8-byte BC1 blocks: the color endpoints are
// zeroed and the index selector bits carry the linear index.
func BC1(tileCount int) []byte {
	out := make([]byte, tileCount*8)
	for i := 0; i < tileCount; i++ {
		off := i * 8
		binary.LittleEndian.PutUint32(out[off:], 0)
		binary.LittleEndian.PutUint32(out[off+4:], uint32(i))
	}
	return out
}

// BC3 writes tileCount unique 16-byte BC3 blocks: the alpha block is set
// to a fixed non-degenerate value and the color block carries the index.
func BC3(tileCount int) []byte {
	out := make([]byte, tileCount*16)
	for i := 0; i < tileCount; i++ {
		off := i * 16
		binary.LittleEndian.PutUint64(out[off:], 65535)
		binary.LittleEndian.PutUint64(out[off+8:], uint64(i))
	}
	return out
}

// BC7 writes tileCount unique 16-byte BC7 blocks: the first four bytes are
// zero, the next eight carry the index as a little-endian uint64, and the
// last four hold the constant 2.
func BC7(tileCount int) []byte {
	out := make([]byte, tileCount*16)
	for i := 0; i < tileCount; i++ {
		off := i * 16
		binary.LittleEndian.PutUint32(out[off:], 0)
		binary.LittleEndian.PutUint64(out[off+4:], uint64(i))
		binary.LittleEndian.PutUint32(out[off+12:], 2)
	}
	return out
}
