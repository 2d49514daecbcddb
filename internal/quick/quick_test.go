package quick_test

import (
	"testing"

	"github.com/segmentio/cityhash/internal/quick"
)

func TestCheck(t *testing.T) {
	seen := make(map[int]int)
	err := quick.Check(func(b []byte) bool {
		seen[len(b)]++
		return true
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, n := range quick.Sizes {
		if seen[n] != quick.Repeat {
			t.Errorf("size %d: want %d calls, got %d", n, quick.Repeat, seen[n])
		}
	}
}

func TestCheckFailure(t *testing.T) {
	err := quick.CheckSeeded(func(b []byte, _, _ uint64) bool {
		return len(b) < 100
	})
	if err == nil {
		t.Fatal("expected an error for inputs of 100 bytes or more")
	}
}

func TestSizesSorted(t *testing.T) {
	for i := 1; i < len(quick.Sizes); i++ {
		if quick.Sizes[i-1] >= quick.Sizes[i] {
			t.Errorf("sizes out of order at index %d: %d >= %d", i, quick.Sizes[i-1], quick.Sizes[i])
		}
	}
}

func TestSizesPowerOf2Boundaries(t *testing.T) {
	sizes := make(map[int]bool)
	for _, n := range quick.Sizes {
		sizes[n] = true
	}
	for _, p := range []int{64, 128, 256, 1024, 2048, 4096} {
		for _, n := range []int{p - 1, p, p + 1} {
			if !sizes[n] {
				t.Errorf("size %d is missing", n)
			}
		}
	}
}
