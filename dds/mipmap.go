package dds

import (
	"github.com/pkg/errors"

	"github.com/tiledtex/swizzle"
)

// Split divides a DDS data payload into one []byte per mip level, mirroring
// read_mipmaps_dds: each level's buffer is a quarter of the previous level's
// size (never less than one byte), and the offset of the next level advances
// by at least the format's block size, so a level smaller than one block
// still occupies one block of data.
func Split(h Header, data []byte) ([][]byte, error) {
	_, minSize := bytesPerTile(h.DXGIFormat)

	offset := 0
	size := int(h.LevelSize(0))

	mips := make([][]byte, 0, h.MipCount)
	for level := uint32(0); level < h.MipCount; level++ {
		if offset+size > len(data) {
			return mips, errors.Wrapf(swizzle.ErrTruncatedContainer, "dds: mip level %d overruns data (need %d, have %d)", level, offset+size, len(data))
		}

		mip := make([]byte, size)
		copy(mip, data[offset:offset+size])
		mips = append(mips, mip)

		step := size
		if step < int(minSize) {
			step = int(minSize)
		}
		offset += step
		size /= 4
		if size < 1 {
			size = 1
		}
	}

	return mips, nil
}

// Join concatenates mip-level buffers back into one DDS data payload,
// packing levels back-to-back with no padding between them. It is the
// inverse of Split only while every level is at least one block long: Split
// returns a smaller level without the padding that follows it in data, and
// Join does not restore that padding.
func Join(mips [][]byte) []byte {
	total := 0
	for _, m := range mips {
		total += len(m)
	}

	out := make([]byte, 0, total)
	for _, m := range mips {
		out = append(out, m...)
	}
	return out
}
