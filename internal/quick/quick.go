// Package quick runs property checks over byte inputs of the lengths where
// hash functions change code paths.
package quick

import (
	"fmt"
	"math/rand"
)

// Sizes are the input lengths exercised by Check. They bracket the limits of
// the short input buckets, the block sizes of the long input loops, and the
// thresholds of the CRC based functions.
var Sizes = [...]int{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9,
	10, 11, 12, 13, 14, 15, 16, 17, 18, 19,
	20, 21, 22, 23, 24, 25, 26, 27, 28, 29,
	30, 31, 32, 33, 34, 35, 36, 37, 38, 39,
	40, 41, 63, 64, 65,
	99, 100, 101,
	127, 128, 129,
	239, 240, 241,
	255, 256, 257,
	479, 480, 481,
	899, 900, 901,
	1000, 1023, 1024, 1025,
	2000, 2047, 2048, 2049,
	4000, 4095, 4096, 4097,
}

// Repeat is the number of random inputs generated per size.
const Repeat = 3

// Check is inspired by the standard quick.Check function, but tests inputs of
// larger sizes than the maximum of 50 hardcoded in testing/quick, and always
// includes the sizes listed in Sizes.
func Check(f func([]byte) bool) error {
	return CheckSeeded(func(b []byte, _, _ uint64) bool { return f(b) })
}

// CheckSeeded is like Check but also passes two random seeds to f.
func CheckSeeded(f func(b []byte, seed0, seed1 uint64) bool) error {
	r := rand.New(rand.NewSource(0))

	for _, n := range Sizes {
		for i := 0; i < Repeat; i++ {
			in := make([]byte, n)
			r.Read(in)
			seed0, seed1 := r.Uint64(), r.Uint64()
			if !f(in, seed0, seed1) {
				return fmt.Errorf("test #%d: failed on input of size %d (seeds=%d,%d): %#v", i+1, n, seed0, seed1, in)
			}
		}
	}
	return nil
}
