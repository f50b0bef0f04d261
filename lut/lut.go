// Package lut builds and reports on inverse-index lookup tables that map
// each deswizzled tile position back to the swizzled tile position holding
// the same data. It is the reverse-engineering half of the engine: given a
// pair of buffers where every tile's contents are unique, it recovers the
// permutation the address-mask walk produced, which is how the mask
// formulas in the root package were originally discovered.
package lut

import (
	"runtime"
	"sync"

	"github.com/pkg/errors"
)

// Table is the per-mip-level inverse index: Table[i] is the tile index in
// the linear (deswizzled) buffer that the swizzled buffer's tile i came
// from, or -1 if no matching tile was found.
type Table []int64

// BuildLUT builds the inverse index mapping each swizzled tile to its
// linear tile index, by hashing every linear tile once and then looking up
// each swizzled tile concurrently.
//
// This mirrors create_mip_deswizzle_lut's AHashMap-plus-rayon approach: a
// single-pass index build followed by a parallel map over the lookup side,
// translated to a worker pool since no package in this module's dependency
// graph provides a ready-made parallel-map primitive.
func BuildLUT[T comparable](linear, swizzled []T) (Table, error) {
	if len(linear) == 0 || len(swizzled) == 0 {
		return nil, errors.New("lut: empty input")
	}

	index := make(map[T]int64, len(linear))
	for i, v := range linear {
		index[v] = int64(i)
	}

	out := make(Table, len(swizzled))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(swizzled) {
		workers = len(swizzled)
	}
	if workers < 1 {
		workers = 1
	}

	chunk := (len(swizzled) + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= len(swizzled) {
			break
		}
		end := start + chunk
		if end > len(swizzled) {
			end = len(swizzled)
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				if idx, ok := index[swizzled[i]]; ok {
					out[i] = idx
				} else {
					out[i] = -1
				}
			}
		}(start, end)
	}
	wg.Wait()

	return out, nil
}

// Range returns the minimum and maximum indices present in the table.
func (t Table) Range() (min, max int64) {
	if len(t) == 0 {
		return 0, 0
	}
	min, max = t[0], t[0]
	for _, v := range t[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}

// Shift subtracts offset from every entry, used to renormalize a mip
// level's table so its addresses start from zero. Entries holding the -1
// missing-block sentinel are left untouched rather than shifted into a
// bogus index.
func (t Table) Shift(offset int64) {
	for i, v := range t {
		if v != -1 {
			t[i] = v - offset
		}
	}
}
