// Package cityhash implements the CityHash family of non-cryptographic hash
// functions (v1.1.1).
//
// The functions compute 32, 64, 128 and 256 bit fingerprints of byte
// sequences, for use in hash tables, sharding, checksums or deduplication keys.
// They are deterministic, seedable, and run at close to memory bandwidth, but
// they are not collision resistant against adversarial input and must never be
// used for security purposes.
//
// All functions are pure: they never retain or modify the input slice, do not
// allocate, and are safe to call concurrently from multiple goroutines. Values
// are computed by reading the input as little-endian words, which makes them
// identical on every platform.
//
// The HashCRC128 and HashCRC256 functions rely on a CRC32 instruction of the
// CPU and are only usable when CRCEnabled returns true.
package cityhash

import (
	"encoding/binary"

	"github.com/segmentio/cityhash/internal/unsafecast"
)

// Uint128 is a 128 bit hash value, made of its low and high 64 bit halves.
type Uint128 [2]uint64

// Low returns the low 64 bits of h.
func (h Uint128) Low() uint64 { return h[0] }

// High returns the high 64 bits of h.
func (h Uint128) High() uint64 { return h[1] }

// Hash64 reduces h to 64 bits, see Hash128To64.
func (h Uint128) Hash64() uint64 { return Hash128To64(h) }

// Bytes returns the 16 bytes representation of h, low half first, each half
// in little-endian byte order.
func (h Uint128) Bytes() [16]byte {
	var b [16]byte
	binary.LittleEndian.PutUint64(b[:8], h[0])
	binary.LittleEndian.PutUint64(b[8:], h[1])
	return b
}

// AppendBytes appends the 16 bytes representation of h to b.
func (h Uint128) AppendBytes(b []byte) []byte {
	v := h.Bytes()
	return append(b, v[:]...)
}

// Uint256 is a 256 bit hash value produced by HashCRC256.
type Uint256 [4]uint64

// Bytes returns the 32 bytes representation of h, each word in little-endian
// byte order.
func (h Uint256) Bytes() [32]byte {
	var b [32]byte
	for i, w := range h {
		binary.LittleEndian.PutUint64(b[8*i:], w)
	}
	return b
}

// Hash32 returns a 32 bit hash of s.
func Hash32(s []byte) uint32 {
	return hash32(s)
}

// Hash64 returns a 64 bit hash of s.
func Hash64(s []byte) uint64 {
	return hash64(s)
}

// Hash64WithSeed returns a 64 bit hash of s mixed with a seed.
func Hash64WithSeed(s []byte, seed uint64) uint64 {
	return Hash64WithSeeds(s, k2, seed)
}

// Hash64WithSeeds returns a 64 bit hash of s mixed with two seeds.
func Hash64WithSeeds(s []byte, seed0, seed1 uint64) uint64 {
	return hashLen16(hash64(s)-seed0, seed1)
}

// Hash128 returns a 128 bit hash of s.
func Hash128(s []byte) Uint128 {
	return hash128(s)
}

// Hash128WithSeed returns a 128 bit hash of s mixed with a 128 bit seed.
func Hash128WithSeed(s []byte, seed Uint128) Uint128 {
	return hash128WithSeed(s, seed)
}

// Hash128To64 reduces a 128 bit hash to 64 bits, with good enough mixing for
// hash tables.
func Hash128To64(h Uint128) uint64 {
	return hashLen16(h.Low(), h.High())
}

// Hash32String is like Hash32 but takes a string, without copying it.
func Hash32String(s string) uint32 {
	return hash32(unsafecast.StringToBytes(s))
}

// Hash64String is like Hash64 but takes a string, without copying it.
func Hash64String(s string) uint64 {
	return hash64(unsafecast.StringToBytes(s))
}

// Hash128String is like Hash128 but takes a string, without copying it.
func Hash128String(s string) Uint128 {
	return hash128(unsafecast.StringToBytes(s))
}

// MultiHash64 writes the 64 bit hashes of keys to dst, returning the number of
// hashes written, which is the smallest of len(dst) and len(keys).
func MultiHash64(dst []uint64, keys [][]byte) int {
	n := min(len(dst), len(keys))
	dst = dst[:n]
	keys = keys[:n]
	for i := range keys {
		dst[i] = hash64(keys[i])
	}
	return n
}

// MultiHash64WithSeed is like MultiHash64 but mixes the hashes with a seed.
func MultiHash64WithSeed(dst []uint64, keys [][]byte, seed uint64) int {
	n := min(len(dst), len(keys))
	dst = dst[:n]
	keys = keys[:n]
	for i := range keys {
		dst[i] = hashLen16(hash64(keys[i])-k2, seed)
	}
	return n
}
