// Package unsafecast exposes functions to bypass the Go type system and perform
// conversions between types that would otherwise not be possible.
//
// The functions of this package are mostly useful as optimizations to avoid
// memory copies when converting between compatible memory layouts; for
// example, hashing a string without first copying it to a byte slice.
//
// As the name suggests, the functions of this package are unsafe, since they
// may produce values that violate the Go type system invariants. Callers must
// not mutate memory obtained through these conversions when the source was
// immutable (e.g. a string).
package unsafecast

import "unsafe"

// StringToBytes returns a byte slice sharing the memory of s.
//
// The returned slice must never be written to.
func StringToBytes(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// Slice converts the data slice of type []From to a slice of type []To sharing
// the same backing array. The length and capacity of the returned slice are
// scaled according to the size difference between the source and destination
// types.
//
// Note that the function does not perform any checks to ensure that the memory
// layouts of the types are compatible.
func Slice[To, From any](data []From) []To {
	var zf From
	var zt To
	fromSize := unsafe.Sizeof(zf)
	toSize := unsafe.Sizeof(zt)
	n := (uintptr(len(data)) * fromSize) / toSize
	c := (uintptr(cap(data)) * fromSize) / toSize
	if c == 0 {
		return nil
	}
	ptr := (*To)(unsafe.Pointer(unsafe.SliceData(data[:cap(data)])))
	return unsafe.Slice(ptr, c)[:n]
}
