package cityhash

import (
	"encoding/binary"
	"math/bits"
)

// Some primes between 2^63 and 2^64 for various uses.
const (
	k0 = 0xc3a5c85c97cb3127
	k1 = 0xb492b66fbe98f273
	k2 = 0x9ae16a3b2f90404f
)

// Magic numbers for 32-bit hashing, copied from Murmur3.
const (
	c1 = 0xcc9e2d51
	c2 = 0x1b873593
)

// kMul is the multiplier of the 128 to 64 bits reduction, Murmur-inspired.
const kMul = 0x9ddfea08eb382d69

func fetch64(s []byte, i int) uint64 {
	return binary.LittleEndian.Uint64(s[i : i+8])
}

func fetch32(s []byte, i int) uint32 {
	return binary.LittleEndian.Uint32(s[i : i+4])
}

// rotate is a right rotation; bits.RotateLeft64 is well defined for a zero
// shift so there is no special case.
func rotate(v uint64, shift int) uint64 {
	return bits.RotateLeft64(v, -shift)
}

func rotate32(v uint32, shift int) uint32 {
	return bits.RotateLeft32(v, -shift)
}

func shiftMix(v uint64) uint64 {
	return v ^ (v >> 47)
}

func hashLen16(u, v uint64) uint64 {
	return hashLen16Mul(u, v, kMul)
}

func hashLen16Mul(u, v, mul uint64) uint64 {
	a := (u ^ v) * mul
	a ^= a >> 47
	b := (v ^ a) * mul
	b ^= b >> 47
	b *= mul
	return b
}

// A 32-bit to 32-bit integer hash copied from Murmur3.
func fmix(h uint32) uint32 {
	h ^= h >> 16
	h *= 0x85ebca6b
	h ^= h >> 13
	h *= 0xc2b2ae35
	h ^= h >> 16
	return h
}

// mur combines two 32-bit values, helper from Murmur3.
func mur(a, h uint32) uint32 {
	a *= c1
	a = rotate32(a, 17)
	a *= c2
	h ^= a
	h = rotate32(h, 19)
	return h*5 + 0xe6546b64
}
