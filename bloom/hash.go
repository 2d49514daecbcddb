package bloom

import "github.com/segmentio/cityhash"

// Hash is an interface abstracting the hashing algorithm used in bloom filters.
//
// Hash instances must be safe to use concurrently from multiple goroutines.
type Hash interface {
	// Returns the 64 bit hash of the value passed as argument.
	Sum64(value []byte) uint64
	// Compute hashes of the values passed as arguments, returning the number
	// of hashes written to the destination buffer.
	MultiSum64(dst []uint64, src [][]byte) int
}

// CityHash64 is an implementation of the Hash interface using the unseeded
// 64 bit CityHash.
type CityHash64 struct{}

func (CityHash64) Sum64(b []byte) uint64 {
	return cityhash.Hash64(b)
}

func (CityHash64) MultiSum64(h []uint64, v [][]byte) int {
	return cityhash.MultiHash64(h, v)
}

// SeededCityHash64 is an implementation of the Hash interface using the 64 bit
// CityHash mixed with a seed.
//
// Filters built with different seeds have independent false positives, which
// programs can take advantage of by probing multiple filters.
type SeededCityHash64 struct {
	Seed uint64
}

func (h SeededCityHash64) Sum64(b []byte) uint64 {
	return cityhash.Hash64WithSeed(b, h.Seed)
}

func (h SeededCityHash64) MultiSum64(dst []uint64, src [][]byte) int {
	return cityhash.MultiHash64WithSeed(dst, src, h.Seed)
}

var (
	_ Hash = CityHash64{}
	_ Hash = SeededCityHash64{}
)
