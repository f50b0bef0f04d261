package swizzle

// Walk drives the mask-walk address permutation shared by Swizzle and
// Deswizzle. For every tile index it derives the tile's masked address by
// independently incrementing through maskX and maskY using the
// "decrement-under-mask" trick (v = (v - mask) & mask walks every subset of
// mask's set bits in ascending order), then copies one tile between src and
// dst at the masked and sequential offsets, in whichever direction deswizzle
// selects.
//
// src and dst must each be at least widthInTiles*heightInTiles*bytesPerTile
// bytes; Swizzle and Deswizzle are responsible for sizing and validating
// them before calling Walk.
func Walk(maskX, maskY uint32, widthInTiles, heightInTiles int, src, dst []byte, deswizzle bool, bytesPerTile int) error {
	tileCount := widthInTiles * heightInTiles
	need := tileCount * bytesPerTile
	if len(src) < need || len(dst) < need {
		return ErrInvalidBuffer
	}

	sequentialOffset := 0
	offsetX := uint32(0)
	offsetY := uint32(0)

	for i := 0; i < tileCount; i++ {
		// offsetX and offsetY are already byte-scaled by the mask
		// generators (MaskX8/MaskY8/MaskX16/MaskY16 each shift by
		// log2(bytesPerTile)), so their sum is the masked byte address
		// directly; multiplying by bytesPerTile again would double-scale it.
		maskedOffset := int(offsetX + offsetY)

		// Mirrors the source's deswizzle/else split: deswizzle copies
		// destination[sequential] = source[masked], swizzle copies the
		// reverse, destination[masked] = source[sequential].
		var srcOff, dstOff int
		if deswizzle {
			srcOff, dstOff = maskedOffset, sequentialOffset
		} else {
			srcOff, dstOff = sequentialOffset, maskedOffset
		}

		copy(dst[dstOff:dstOff+bytesPerTile], src[srcOff:srcOff+bytesPerTile])

		sequentialOffset += bytesPerTile

		// Advance offsetX through every subset of maskX's bits in order,
		// carrying into offsetY's walk each time offsetX wraps to zero.
		offsetX = (offsetX - maskX) & maskX
		if offsetX == 0 {
			offsetY = (offsetY - maskY) & maskY
		}
	}

	return nil
}

// Swizzle converts a linear (row-major tile order) buffer into the
// console-native tiled layout for img's format and dimensions.
func Swizzle(img Image, linear []byte) ([]byte, error) {
	return walkImage(img, linear, false)
}

// Deswizzle converts a tiled buffer back into linear (row-major tile order).
func Deswizzle(img Image, swizzled []byte) ([]byte, error) {
	return walkImage(img, swizzled, true)
}

func walkImage(img Image, buf []byte, deswizzle bool) ([]byte, error) {
	if !img.Valid() {
		return nil, ErrInvalidDimensions
	}

	size := img.Size()
	if len(buf) < size || len(buf)%img.BytesPerTile() != 0 {
		return nil, ErrInvalidBuffer
	}

	out := make([]byte, size)

	d, ok := descriptors[img.Format]
	if !ok {
		return nil, ErrUnsupportedFormat
	}

	if d.maskX == nil || d.maskY == nil {
		// No mask generator for this format (Rgba8): the swizzle is a
		// true no-op, matching the source's ImageFormat::Rgba8 arm.
		copy(out, buf[:size])
		return out, nil
	}

	w, h := uint32(img.WidthInTiles()), uint32(img.HeightInTiles())
	maskX := d.maskX(w, h)
	maskY := d.maskY(w, h)

	if err := Walk(maskX, maskY, img.WidthInTiles(), img.HeightInTiles(), buf, out, deswizzle, d.bytesPerTile); err != nil {
		return nil, err
	}

	return out, nil
}
