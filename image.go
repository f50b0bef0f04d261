package swizzle

// Image is the immutable descriptor of a texture surface: its pixel
// dimensions and pixel format. All derived quantities (tile edge,
// bytes-per-tile, tile-grid dimensions) are computed, never stored.
type Image struct {
	Width  int
	Height int
	Format Format
}

// TileEdge returns the pixel edge length of one tile for this image's format.
func (i Image) TileEdge() int { return i.Format.TileEdge() }

// BytesPerTile returns the byte size of one tile for this image's format.
func (i Image) BytesPerTile() int { return i.Format.BytesPerTile() }

// WidthInTiles returns the tile-grid width.
func (i Image) WidthInTiles() int { return i.Width / i.TileEdge() }

// HeightInTiles returns the tile-grid height.
func (i Image) HeightInTiles() int { return i.Height / i.TileEdge() }

// Size returns the total byte length of a buffer holding this image, either
// swizzled or linear (both layouts have the same size).
//
// This fixes the sizing bug noted in spec.md §9: the source computes
// deswizzle buffer size as (width/4)*(height/4)*bytesPerTile for every
// format, which undercounts uncompressed formats (Rgba8, RgbaF32). Here the
// size is derived from the format's real TileEdge, so uncompressed formats
// size as Width*Height*BytesPerTile.
func (i Image) Size() int {
	return i.WidthInTiles() * i.HeightInTiles() * i.BytesPerTile()
}

// Valid reports whether the image has power-of-two dimensions of at least
// one tile in each axis, as required by the mask generator (spec.md §3).
func (i Image) Valid() bool {
	if i.Width <= 0 || i.Height <= 0 {
		return false
	}

	edge := i.TileEdge()
	if i.Width%edge != 0 || i.Height%edge != 0 {
		return false
	}

	w, h := i.WidthInTiles(), i.HeightInTiles()
	return w > 0 && h > 0 && isPowerOfTwo(w) && isPowerOfTwo(h)
}

func isPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}
