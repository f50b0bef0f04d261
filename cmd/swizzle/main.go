// Command swizzle reverse-engineers and applies the console texture tiling
// transform: it can swizzle/deswizzle raw tile data, synthesize unique
// test payloads, and recover the address masks a swizzled/deswizzled pair
// implies.
package main

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/tiledtex/swizzle"
	"github.com/tiledtex/swizzle/block"
	"github.com/tiledtex/swizzle/container"
	"github.com/tiledtex/swizzle/dds"
	"github.com/tiledtex/swizzle/gen"
	"github.com/tiledtex/swizzle/lut"
)

// VERSION is injected by build flags.
var VERSION = "SELFBUILD"

func main() {
	log.SetFlags(log.LstdFlags)

	app := cli.NewApp()
	app.Name = "swizzle"
	app.Usage = "console texture tiling toolkit"
	app.Version = VERSION

	formatFlag := cli.StringFlag{Name: "format, f", Usage: "image format: rgba8, rgbaf32, bc1, bc3, bc7", Required: true}
	widthFlag := cli.IntFlag{Name: "width, w", Usage: "image width in pixels", Required: true}
	heightFlag := cli.IntFlag{Name: "height", Usage: "image height in pixels", Required: true}

	app.Commands = []cli.Command{
		{
			Name:  "swizzle",
			Usage: "convert linear tile data into tiled layout",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "input, i", Required: true},
				cli.StringFlag{Name: "output, o", Required: true},
				formatFlag, widthFlag, heightFlag,
			},
			Action: runSwizzle(false),
		},
		{
			Name:  "deswizzle",
			Usage: "convert tiled data back into linear layout",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "input, i", Required: true},
				cli.StringFlag{Name: "output, o", Required: true},
				formatFlag, widthFlag, heightFlag,
			},
			Action: runSwizzle(true),
		},
		{
			Name:  "write_addresses",
			Usage: "write a set number of unique blocks compatible with the given format",
			Flags: []cli.Flag{
				formatFlag, widthFlag, heightFlag,
				cli.IntFlag{Name: "imagesize", Usage: "total number of payload bytes to write"},
				cli.StringFlag{Name: "output, o", Required: true},
			},
			Action: runWriteAddresses,
		},
		{
			Name:  "calculate_swizzle",
			Usage: "print swizzle patterns recovered from a swizzled/deswizzled pair",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "swizzled", Required: true},
				cli.StringFlag{Name: "deswizzled", Required: true},
				formatFlag, widthFlag, heightFlag,
			},
			Action: runCalculateSwizzle,
		},
		{
			Name:  "write_swizzle_lut",
			Usage: "write swizzled/deswizzled address pairs in CSV format",
			Flags: []cli.Flag{
				cli.StringFlag{Name: "swizzled", Required: true},
				cli.StringFlag{Name: "deswizzled", Required: true},
				cli.StringFlag{Name: "output, o", Required: true},
				formatFlag,
			},
			Action: runWriteSwizzleLUT,
		},
	}

	app.Action = func(c *cli.Context) error {
		cli.ShowAppHelp(c)
		return nil
	}

	start := time.Now()
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("swizzle: %v", err)
	}
	log.Printf("execution time: %v", time.Since(start))
}

func runSwizzle(deswizzle bool) cli.ActionFunc {
	return func(c *cli.Context) error {
		format, err := swizzle.ParseFormat(c.String("format"))
		if err != nil {
			return errors.Wrap(err, "swizzle")
		}

		img := swizzle.Image{Width: c.Int("width"), Height: c.Int("height"), Format: format}

		data, err := os.ReadFile(c.String("input"))
		if err != nil {
			return errors.Wrap(err, "swizzle: reading input")
		}

		var out []byte
		if deswizzle {
			out, err = swizzle.Deswizzle(img, data)
		} else {
			out, err = swizzle.Swizzle(img, data)
		}
		if err != nil {
			return errors.Wrap(err, "swizzle: transforming data")
		}

		if err := os.WriteFile(c.String("output"), out, 0o644); err != nil {
			return errors.Wrap(err, "swizzle: writing output")
		}
		return nil
	}
}

func runWriteAddresses(c *cli.Context) error {
	format, err := swizzle.ParseFormat(c.String("format"))
	if err != nil {
		return errors.Wrap(err, "write_addresses")
	}

	width, height := c.Int("width"), c.Int("height")
	bytesPerTile := format.BytesPerTile()

	var tileCount int
	if c.IsSet("imagesize") {
		tileCount = c.Int("imagesize") / bytesPerTile
	} else {
		img := swizzle.Image{Width: width, Height: height, Format: format}
		tileCount = img.WidthInTiles() * img.HeightInTiles()
	}

	var payload []byte
	switch format {
	case swizzle.Rgba8:
		payload = gen.RGBA8(tileCount)
	case swizzle.RgbaF32:
		payload = gen.RGBAF32(tileCount)
	case swizzle.Bc1:
		payload = gen.BC1(tileCount)
	case swizzle.Bc3:
		payload = gen.BC3(tileCount)
	case swizzle.Bc7:
		payload = gen.BC7(tileCount)
	}

	output := c.String("output")
	f, err := os.Create(output)
	if err != nil {
		return errors.Wrap(err, "write_addresses: creating output")
	}
	defer f.Close()

	if filepath.Ext(output) == ".ctex" {
		img := swizzle.Image{Width: width, Height: height, Format: format}
		name := filepath.Base(output[:len(output)-len(filepath.Ext(output))])
		return errors.Wrap(container.Write(f, name, img, payload), "write_addresses: writing container")
	}

	_, err = f.Write(payload)
	return errors.Wrap(err, "write_addresses: writing payload")
}

func runCalculateSwizzle(c *cli.Context) error {
	format, err := swizzle.ParseFormat(c.String("format"))
	if err != nil {
		return errors.Wrap(err, "calculate_swizzle")
	}

	width, height := c.Int("width"), c.Int("height")

	var reports []lut.MipReport
	switch format {
	case swizzle.Rgba8:
		reports, err = calculateSwizzleFor[block.Block4](c, width, height, true)
	case swizzle.Bc1:
		reports, err = calculateSwizzleFor[block.Block8](c, width, height, false)
	default:
		reports, err = calculateSwizzleFor[block.Block16](c, width, height, format.TileEdge() == 1)
	}
	if err != nil {
		return errors.Wrap(err, "calculate_swizzle")
	}

	for _, r := range reports {
		fmt.Println(r.String())
	}
	return nil
}

func calculateSwizzleFor[T block.Block](c *cli.Context, width, height int, uncompressed bool) ([]lut.MipReport, error) {
	swizzledMips, err := readMips[T](c.String("swizzled"))
	if err != nil {
		return nil, errors.Wrap(err, "reading swizzled file")
	}
	deswizzledMips, err := readMips[T](c.String("deswizzled"))
	if err != nil {
		return nil, errors.Wrap(err, "reading deswizzled file")
	}

	return lut.WalkMips(deswizzledMips, swizzledMips, width, height, uncompressed)
}

// readMips reads path as a sequence of mip-level block buffers. A ".dds"
// file is split into one buffer per mip level via its header; anything
// else is treated as a single flat level, matching guess_swizzle_patterns'
// extension check for which side of a pair actually carries a mip chain.
func readMips[T block.Block](path string) ([][]T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}

	if filepath.Ext(path) != ".dds" {
		return [][]T{block.Read[T](data)}, nil
	}

	r := bytes.NewReader(data)
	header, err := dds.ParseHeader(r)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing DDS header in %s", path)
	}
	rest, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "reading DDS payload in %s", path)
	}
	levels, err := dds.Split(header, rest)
	if err != nil {
		return nil, errors.Wrapf(err, "splitting DDS mips in %s", path)
	}

	out := make([][]T, len(levels))
	for i, level := range levels {
		out[i] = block.Read[T](level)
	}
	return out, nil
}

// readPayload reads path as one contiguous block buffer: a DDS file has its
// header stripped and mip levels rejoined back-to-back, matching how
// write_swizzle_lut's CSV output treats a whole texture as a flat address
// space regardless of container.
func readPayload[T block.Block](path string) ([]T, error) {
	mips, err := readMips[T](path)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, m := range mips {
		total += len(m)
	}
	out := make([]T, 0, total)
	for _, m := range mips {
		out = append(out, m...)
	}
	return out, nil
}

func runWriteSwizzleLUT(c *cli.Context) error {
	format, err := swizzle.ParseFormat(c.String("format"))
	if err != nil {
		return errors.Wrap(err, "write_swizzle_lut")
	}

	var table lut.Table
	switch format {
	case swizzle.Rgba8:
		table, err = buildSwizzleLUT[block.Block4](c)
	case swizzle.Bc1:
		table, err = buildSwizzleLUT[block.Block8](c)
	default:
		table, err = buildSwizzleLUT[block.Block16](c)
	}
	if err != nil {
		return errors.Wrap(err, "write_swizzle_lut: building table")
	}

	out, err := os.Create(c.String("output"))
	if err != nil {
		return errors.Wrap(err, "write_swizzle_lut: creating output")
	}
	defer out.Close()

	fmt.Fprintln(out, "swizzled_index,deswizzled_index")
	for i, v := range table {
		fmt.Fprintf(out, "%d,%s\n", i, strconv.FormatInt(v, 10))
	}
	return nil
}

// buildSwizzleLUT reads the swizzled/deswizzled file pair (DDS-aware via
// readPayload) and builds the index-by-deswizzled, probe-by-swizzled table
// the CSV output is keyed on.
func buildSwizzleLUT[T block.Block](c *cli.Context) (lut.Table, error) {
	deswizzled, err := readPayload[T](c.String("deswizzled"))
	if err != nil {
		return nil, errors.Wrap(err, "reading deswizzled file")
	}
	swizzled, err := readPayload[T](c.String("swizzled"))
	if err != nil {
		return nil, errors.Wrap(err, "reading swizzled file")
	}
	return lut.BuildLUT(deswizzled, swizzled)
}
