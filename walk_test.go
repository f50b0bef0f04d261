package swizzle

import (
	"bytes"
	"testing"

	"github.com/tiledtex/swizzle/gen"
)

func roundTrip(t *testing.T, format Format, width, height int, payload []byte) {
	t.Helper()

	img := Image{Width: width, Height: height, Format: format}

	swizzled, err := Swizzle(img, payload)
	if err != nil {
		t.Fatalf("Swizzle(%v, %dx%d): %v", format, width, height, err)
	}
	if len(swizzled) != len(payload) {
		t.Fatalf("Swizzle changed length: got %d want %d", len(swizzled), len(payload))
	}

	back, err := Deswizzle(img, swizzled)
	if err != nil {
		t.Fatalf("Deswizzle(%v, %dx%d): %v", format, width, height, err)
	}

	if !bytes.Equal(back, payload) {
		t.Fatalf("round trip mismatch for %v %dx%d", format, width, height)
	}
}

func TestRoundTripBC7(t *testing.T) {
	sizes := []int{64, 128, 256, 512, 1024}
	for _, s := range sizes {
		img := Image{Width: s, Height: s, Format: Bc7}
		payload := gen.BC7(img.WidthInTiles() * img.HeightInTiles())
		roundTrip(t, Bc7, s, s, payload)
	}
}

func TestRoundTripBC1(t *testing.T) {
	sizes := []int{32, 64, 128, 256}
	for _, s := range sizes {
		img := Image{Width: s, Height: s, Format: Bc1}
		payload := gen.BC1(img.WidthInTiles() * img.HeightInTiles())
		roundTrip(t, Bc1, s, s, payload)
	}
}

func TestRoundTripBC3(t *testing.T) {
	sizes := []int{64, 128, 256}
	for _, s := range sizes {
		img := Image{Width: s, Height: s, Format: Bc3}
		payload := gen.BC3(img.WidthInTiles() * img.HeightInTiles())
		roundTrip(t, Bc3, s, s, payload)
	}
}

func TestRoundTripRGBAF32(t *testing.T) {
	sizes := []int{64, 128}
	for _, s := range sizes {
		img := Image{Width: s, Height: s, Format: RgbaF32}
		payload := gen.RGBAF32(img.WidthInTiles() * img.HeightInTiles())
		roundTrip(t, RgbaF32, s, s, payload)
	}
}

// TestRGBA8NoOp checks the documented gap: Rgba8 has no mask generator, so
// Swizzle is the identity function.
func TestRGBA8NoOp(t *testing.T) {
	img := Image{Width: 16, Height: 16, Format: Rgba8}
	payload := gen.RGBA8(img.WidthInTiles() * img.HeightInTiles())

	swizzled, err := Swizzle(img, payload)
	if err != nil {
		t.Fatalf("Swizzle: %v", err)
	}
	if !bytes.Equal(swizzled, payload) {
		t.Fatalf("Rgba8 swizzle should be a no-op")
	}
}

// TestSwizzleIsPermutation checks invariant II: when every input tile is
// unique, swizzling never collides two tiles onto the same output tile.
func TestSwizzleIsPermutation(t *testing.T) {
	img := Image{Width: 128, Height: 128, Format: Bc7}
	payload := gen.BC7(img.WidthInTiles() * img.HeightInTiles())

	swizzled, err := Swizzle(img, payload)
	if err != nil {
		t.Fatalf("Swizzle: %v", err)
	}

	seen := make(map[string]bool, img.WidthInTiles()*img.HeightInTiles())
	tile := img.BytesPerTile()
	for off := 0; off < len(swizzled); off += tile {
		key := string(swizzled[off : off+tile])
		if seen[key] {
			t.Fatalf("duplicate tile at output offset %d: swizzle is not a permutation", off)
		}
		seen[key] = true
	}
}

func TestSwizzleRejectsInvalidDimensions(t *testing.T) {
	img := Image{Width: 100, Height: 100, Format: Bc7}
	if _, err := Swizzle(img, make([]byte, img.Size())); err == nil {
		t.Fatal("expected error for non-power-of-two tile grid")
	}
}

func TestSwizzleRejectsShortBuffer(t *testing.T) {
	img := Image{Width: 64, Height: 64, Format: Bc7}
	if _, err := Swizzle(img, make([]byte, 4)); err == nil {
		t.Fatal("expected error for undersized buffer")
	}
}
