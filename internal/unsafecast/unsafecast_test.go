package unsafecast_test

import (
	"testing"
	"unsafe"

	"github.com/segmentio/cityhash/internal/unsafecast"
)

func TestUnsafeCastSlice(t *testing.T) {
	a := make([]uint32, 4, 13)
	a[0] = 1
	a[1] = 0
	a[2] = 2
	a[3] = 0

	b := unsafecast.Slice[int64](a)
	if len(b) != 2 { // (4 * sizeof(uint32)) / sizeof(int64)
		t.Fatalf("length mismatch: want=2 got=%d", len(b))
	}
	if cap(b) != 6 { // (13 * sizeof(uint32)) / sizeof(int64)
		t.Fatalf("capacity mismatch: want=6 got=%d", cap(b))
	}
	if b[0] != 1 {
		t.Errorf("wrong value at index 0: want=1 got=%d", b[0])
	}
	if b[1] != 2 {
		t.Errorf("wrong value at index 1: want=2 got=%d", b[1])
	}

	c := unsafecast.Slice[uint32](b)
	if len(c) != 4 {
		t.Fatalf("length mismatch: want=4 got=%d", len(c))
	}
	if cap(c) != 12 {
		t.Fatalf("capacity mismatch: want=12 got=%d", cap(c))
	}
	for i := range c {
		if c[i] != a[i] {
			t.Errorf("wrong value at index %d: want=%d got=%d", i, a[i], c[i])
		}
	}
}

func TestStringToBytes(t *testing.T) {
	for _, s := range []string{"", "a", "hello world"} {
		b := unsafecast.StringToBytes(s)
		if len(b) != len(s) {
			t.Fatalf("length mismatch: want=%d got=%d", len(s), len(b))
		}
		if string(b) != s {
			t.Errorf("content mismatch: want=%q got=%q", s, b)
		}
		if len(s) != 0 && unsafe.SliceData(b) != unsafe.StringData(s) {
			t.Error("byte slice does not share the memory of the string")
		}
	}
}
