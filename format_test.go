package swizzle

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"rgba8":   Rgba8,
		"RGBA8":   Rgba8,
		"rgbaf32": RgbaF32,
		"Bc1":     Bc1,
		"bc3":     Bc3,
		"BC7":     Bc7,
	}
	for input, want := range cases {
		got, err := ParseFormat(input)
		if err != nil {
			t.Fatalf("ParseFormat(%q): %v", input, err)
		}
		if got != want {
			t.Errorf("ParseFormat(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestParseFormatUnsupported(t *testing.T) {
	_, err := ParseFormat("nope")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestContainerTagRoundTrip(t *testing.T) {
	for _, f := range []Format{Rgba8, RgbaF32, Bc1, Bc3, Bc7} {
		got, ok := FormatFromContainerTag(f.ContainerTag())
		if !ok {
			t.Fatalf("FormatFromContainerTag(%d): not found", f.ContainerTag())
		}
		if got != f {
			t.Errorf("FormatFromContainerTag(%d) = %v, want %v", f.ContainerTag(), got, f)
		}
	}
}

func TestFormatString(t *testing.T) {
	if Bc7.String() != "bc7" {
		t.Errorf("Bc7.String() = %q, want bc7", Bc7.String())
	}
}
