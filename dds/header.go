// Package dds parses and writes the subset of the DirectDraw Surface
// container format this engine needs: the classic header plus its DX10
// extension, and the mip-chain splitting that lets the lut package treat
// each mip level as its own independent tile buffer.
package dds

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/tiledtex/swizzle"
)

// DXGI_FORMAT values this engine maps to and from.
const (
	DXGIFormatR8G8B8A8UNorm uint32 = 28
	DXGIFormatR32G32B32A32Float uint32 = 2
	DXGIFormatBC1UNorm uint32 = 71
	DXGIFormatBC3UNorm uint32 = 77
	DXGIFormatBC7UNorm uint32 = 98
)

const (
	magic          = 0x20534444 // "DDS "
	headerSize     = 124
	pixelFormatSize = 32
	dx10FourCC     = 0x30315844 // "DX10"

	flagCaps        = 0x1
	flagHeight      = 0x2
	flagWidth       = 0x4
	flagPixelFormat = 0x1000
	flagMipMapCount = 0x20000
	flagLinearSize  = 0x80000

	capsTexture = 0x1000
	capsMipmap  = 0x400000

	pixelFlagFourCC = 0x4

	resourceDimensionTexture2D = 3
)

// Header is the information this engine needs out of a DDS file: enough to
// recover per-mip-level buffer sizes and the DXGI format, without modeling
// every legacy field DDS supports.
type Header struct {
	Width      uint32
	Height     uint32
	MipCount   uint32
	DXGIFormat uint32
}

// bytesPerTile returns the block/pixel size used by calculateLinearSize's
// blockSize table, generalized to the five formats this engine supports.
func bytesPerTile(format uint32) (tileEdge, bytesPerTile uint32) {
	switch format {
	case DXGIFormatBC1UNorm:
		return 4, 8
	case DXGIFormatBC3UNorm, DXGIFormatBC7UNorm:
		return 4, 16
	case DXGIFormatR32G32B32A32Float:
		return 1, 16
	default: // DXGIFormatR8G8B8A8UNorm and anything unrecognized
		return 1, 4
	}
}

// LevelSize returns the byte size of mip level `level` (0 = full size),
// matching calculateLinearSize's block-rounding behavior generalized
// across mip levels.
func (h Header) LevelSize(level uint32) uint32 {
	w := h.Width >> level
	ht := h.Height >> level
	if w == 0 {
		w = 1
	}
	if ht == 0 {
		ht = 1
	}

	tileEdge, bpt := bytesPerTile(h.DXGIFormat)
	blocksWide := (w + tileEdge - 1) / tileEdge
	blocksHigh := (ht + tileEdge - 1) / tileEdge
	return blocksWide * blocksHigh * bpt
}

// ParseHeader reads a DDS magic, classic header, and DX10 extension from r,
// returning the parsed Header. Only the DX10-extended layout is supported;
// legacy FourCC-only files are rejected.
func ParseHeader(r io.Reader) (Header, error) {
	var h Header

	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return h, errors.Wrap(err, "dds: reading magic")
	}
	if binary.LittleEndian.Uint32(buf[:]) != magic {
		return h, errors.Wrap(swizzle.ErrInvalidContainer, "dds: bad magic")
	}

	header := make([]byte, headerSize)
	if _, err := io.ReadFull(r, header); err != nil {
		return h, errors.Wrap(err, "dds: reading header")
	}

	h.Height = binary.LittleEndian.Uint32(header[8:12])
	h.Width = binary.LittleEndian.Uint32(header[12:16])
	h.MipCount = binary.LittleEndian.Uint32(header[24:28])
	if h.MipCount == 0 {
		h.MipCount = 1
	}

	pfFlags := binary.LittleEndian.Uint32(header[76:80])
	if pfFlags&pixelFlagFourCC == 0 {
		return h, errors.Wrap(swizzle.ErrInvalidContainer, "dds: only DX10-extended files are supported")
	}
	fourCC := binary.LittleEndian.Uint32(header[80:84])
	if fourCC != dx10FourCC {
		return h, errors.Wrap(swizzle.ErrInvalidContainer, "dds: only DX10-extended files are supported")
	}

	dx10 := make([]byte, 20)
	if _, err := io.ReadFull(r, dx10); err != nil {
		return h, errors.Wrap(err, "dds: reading DX10 extension")
	}
	h.DXGIFormat = binary.LittleEndian.Uint32(dx10[0:4])

	return h, nil
}

// WriteHeader writes the DDS magic, classic header, and DX10 extension
// describing h, grounded on createDDSHeader's field layout and flag
// selection.
func WriteHeader(w io.Writer, h Header) error {
	out := make([]byte, 4+headerSize+20)
	binary.LittleEndian.PutUint32(out[0:4], magic)

	off := 4
	binary.LittleEndian.PutUint32(out[off:off+4], headerSize)
	off += 4

	flags := uint32(flagCaps | flagHeight | flagWidth | flagPixelFormat | flagLinearSize)
	if h.MipCount > 1 {
		flags |= flagMipMapCount
	}
	binary.LittleEndian.PutUint32(out[off:off+4], flags)
	off += 4

	binary.LittleEndian.PutUint32(out[off:off+4], h.Height)
	off += 4
	binary.LittleEndian.PutUint32(out[off:off+4], h.Width)
	off += 4

	binary.LittleEndian.PutUint32(out[off:off+4], h.LevelSize(0))
	off += 4

	off += 4 // depth, unused
	binary.LittleEndian.PutUint32(out[off:off+4], h.MipCount)
	off += 4

	off += 44 // reserved1

	binary.LittleEndian.PutUint32(out[off:off+4], pixelFormatSize)
	off += 4
	binary.LittleEndian.PutUint32(out[off:off+4], pixelFlagFourCC)
	off += 4
	binary.LittleEndian.PutUint32(out[off:off+4], dx10FourCC)
	off += 4
	off += 20 // rgb bit counts / masks, unused for DX10

	caps := uint32(capsTexture)
	if h.MipCount > 1 {
		caps |= capsMipmap
	}
	binary.LittleEndian.PutUint32(out[off:off+4], caps)
	off += 4

	off += 12 // caps2/3/4
	off += 4  // reserved2

	binary.LittleEndian.PutUint32(out[off:off+4], h.DXGIFormat)
	off += 4
	binary.LittleEndian.PutUint32(out[off:off+4], resourceDimensionTexture2D)
	off += 4
	off += 4 // miscFlag
	binary.LittleEndian.PutUint32(out[off:off+4], 1) // arraySize
	off += 4
	// miscFlags2 left zero

	_, err := w.Write(out)
	return errors.Wrap(err, "dds: writing header")
}
