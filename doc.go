/*
Package swizzle implements the console texture address-swizzle engine: the
bitmask "mask-walk" permutation that maps between a texture's linear
(row-major tile) layout and its hardware-tiled layout.

High-level usage:
  - Swizzle/Deswizzle convert a full buffer between layouts for a given Image.
  - Walk drives the underlying per-tile address permutation directly, for
    callers that already have precomputed axis masks.
  - MaskX8/MaskY8/MaskX16/MaskY16 compute the axis masks themselves from a
    tile grid's dimensions.
  - ParseFormat/Format enumerate the five pixel formats this engine
    understands and their tile geometry.

Subpackages:
  - block reads raw bytes as fixed-size comparable tiles.
  - dds parses and splits DDS mip chains.
  - lut builds and reports on swizzle/deswizzle inverse-index tables.
  - gen generates synthetic payloads with pairwise-unique tiles.
  - container reads and writes this module's own texture container format.

The swizzle algorithm and its known gaps (RGBA-F32/BC1 mask range limits,
Rgba8's no-op swizzle) are described alongside each function; see the mask
functions' doc comments for the exact ranges they cover.
*/
package swizzle
