// Package container implements a small proprietary texture container: a
// fixed header (magic, format tag, dimensions, name) followed by a raw
// tile payload. It plays the role the source's nutexb writer plays for the
// Switch "nutexb" format, generalized to this engine's five formats.
package container

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/tiledtex/swizzle"
)

const (
	magic      = 0x58455443 // "CTEX" little-endian
	nameLen    = 64
	headerSize = 4 + 4 + 4 + 4 + nameLen // magic, format_tag, width, height, name
)

// Write emits the container header followed by payload: magic, the
// format's container tag, width, height, a fixed-width name field
// (truncated or zero-padded to 64 bytes), and the raw tiles.
//
// Grounded on create_nutexb's call shape (header fields plus a raw data
// blob written through one writer) and the fixed-width-name convention the
// other_examples DDS metadata struct uses for its reserved trailer.
func Write(w io.Writer, name string, img swizzle.Image, payload []byte) error {
	header := make([]byte, headerSize)
	binary.LittleEndian.PutUint32(header[0:4], magic)
	binary.LittleEndian.PutUint32(header[4:8], img.Format.ContainerTag())
	binary.LittleEndian.PutUint32(header[8:12], uint32(img.Width))
	binary.LittleEndian.PutUint32(header[12:16], uint32(img.Height))

	nameBytes := []byte(name)
	if len(nameBytes) > nameLen {
		nameBytes = nameBytes[:nameLen]
	}
	copy(header[16:16+nameLen], nameBytes)

	if _, err := w.Write(header); err != nil {
		return errors.Wrap(err, "container: writing header")
	}
	if _, err := w.Write(payload); err != nil {
		return errors.Wrap(err, "container: writing payload")
	}
	return nil
}

// Read parses a container header and returns the embedded name, image
// descriptor, and raw payload. The payload is read to EOF, so Read expects
// r to contain exactly one container.
func Read(r io.Reader) (name string, img swizzle.Image, payload []byte, err error) {
	header := make([]byte, headerSize)
	if _, err = io.ReadFull(r, header); err != nil {
		return "", swizzle.Image{}, nil, errors.Wrap(err, "container: reading header")
	}

	if binary.LittleEndian.Uint32(header[0:4]) != magic {
		return "", swizzle.Image{}, nil, swizzle.ErrInvalidContainer
	}

	tag := binary.LittleEndian.Uint32(header[4:8])
	format, ok := swizzle.FormatFromContainerTag(tag)
	if !ok {
		return "", swizzle.Image{}, nil, swizzle.ErrUnsupportedFormat
	}

	width := binary.LittleEndian.Uint32(header[8:12])
	height := binary.LittleEndian.Uint32(header[12:16])

	nameEnd := 16
	for nameEnd < 16+nameLen && header[nameEnd] != 0 {
		nameEnd++
	}
	name = string(header[16:nameEnd])

	payload, err = io.ReadAll(r)
	if err != nil {
		return "", swizzle.Image{}, nil, errors.Wrap(err, "container: reading payload")
	}

	img = swizzle.Image{Width: int(width), Height: int(height), Format: format}
	want := img.Size()
	if want > 0 && len(payload) < want {
		return "", swizzle.Image{}, nil, swizzle.ErrTruncatedContainer
	}

	return name, img, payload, nil
}
