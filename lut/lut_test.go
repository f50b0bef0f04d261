package lut

import "testing"

func TestBuildLUTIdentity(t *testing.T) {
	linear := []int{0, 1, 2, 3, 4, 5, 6, 7}
	table, err := BuildLUT(linear, linear)
	if err != nil {
		t.Fatalf("BuildLUT: %v", err)
	}
	for i, v := range table {
		if v != int64(i) {
			t.Errorf("table[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestBuildLUTPermutation(t *testing.T) {
	linear := []int{10, 20, 30, 40}
	// swizzled is linear with positions 1 and 3 swapped
	swizzled := []int{10, 40, 30, 20}

	table, err := BuildLUT(linear, swizzled)
	if err != nil {
		t.Fatalf("BuildLUT: %v", err)
	}

	want := []int64{0, 3, 2, 1}
	for i, v := range table {
		if v != want[i] {
			t.Errorf("table[%d] = %d, want %d", i, v, want[i])
		}
	}
}

func TestBuildLUTMissing(t *testing.T) {
	linear := []int{1, 2, 3}
	swizzled := []int{1, 99, 3}

	table, err := BuildLUT(linear, swizzled)
	if err != nil {
		t.Fatalf("BuildLUT: %v", err)
	}
	if table[1] != -1 {
		t.Errorf("table[1] = %d, want -1 for missing block", table[1])
	}
}

func TestBuildLUTLargeConcurrent(t *testing.T) {
	n := 10000
	linear := make([]int, n)
	swizzled := make([]int, n)
	for i := 0; i < n; i++ {
		linear[i] = i
		swizzled[i] = n - 1 - i
	}

	table, err := BuildLUT(linear, swizzled)
	if err != nil {
		t.Fatalf("BuildLUT: %v", err)
	}
	for i, v := range table {
		want := int64(n - 1 - i)
		if v != want {
			t.Fatalf("table[%d] = %d, want %d", i, v, want)
		}
	}
}

func TestTableRangeAndShift(t *testing.T) {
	table := Table{5, 2, 9, 3}
	min, max := table.Range()
	if min != 2 || max != 9 {
		t.Errorf("Range() = %d, %d, want 2, 9", min, max)
	}

	table.Shift(min)
	want := Table{3, 0, 7, 1}
	for i, v := range table {
		if v != want[i] {
			t.Errorf("after Shift, table[%d] = %d, want %d", i, v, want[i])
		}
	}
}
