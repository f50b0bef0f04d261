package swizzle

import "testing"

func TestImageSizeUncompressed(t *testing.T) {
	img := Image{Width: 16, Height: 16, Format: Rgba8}
	if got, want := img.Size(), 16*16*4; got != want {
		t.Errorf("Rgba8 Size() = %d, want %d", got, want)
	}

	f32 := Image{Width: 16, Height: 16, Format: RgbaF32}
	if got, want := f32.Size(), 16*16*16; got != want {
		t.Errorf("RgbaF32 Size() = %d, want %d", got, want)
	}
}

func TestImageSizeCompressed(t *testing.T) {
	img := Image{Width: 64, Height: 64, Format: Bc7}
	tiles := (64 / 4) * (64 / 4)
	if got, want := img.Size(), tiles*16; got != want {
		t.Errorf("Bc7 Size() = %d, want %d", got, want)
	}
}

func TestImageValid(t *testing.T) {
	valid := Image{Width: 128, Height: 64, Format: Bc1}
	if !valid.Valid() {
		t.Error("expected valid image")
	}

	notPow2 := Image{Width: 100, Height: 100, Format: Bc1}
	if notPow2.Valid() {
		t.Error("expected invalid image for non-power-of-two tile grid")
	}

	zero := Image{Width: 0, Height: 16, Format: Rgba8}
	if zero.Valid() {
		t.Error("expected invalid image for zero dimension")
	}
}
