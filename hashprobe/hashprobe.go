// Package hashprobe implements an open addressing table which assigns dense
// ids to fingerprints, to group identical inputs without retaining them.
package hashprobe

import (
	"math"
	"math/bits"
	"math/rand"

	"github.com/segmentio/cityhash"
)

const (
	minCap         = 64
	DefaultMaxLoad = 0.9

	// probeBatchSize is the number of byte keys hashed ahead of probing.
	probeBatchSize = 256
)

func nextPowerOf2(n int) int {
	return 1 << (64 - bits.LeadingZeros64(uint64(n-1)))
}

// Table maps 128 bit fingerprints to ids in the order they were first seen:
// the first distinct key probed gets the id 0, the next one 1, and so on.
//
// Two keys are considered equal when their fingerprints are, which makes
// ProbeBytes subject to the (negligible) collision rate of Hash128.
//
// Table values are not safe for concurrent use.
type Table struct {
	len     int
	cap     int
	maxLen  int
	maxLoad float64
	seed    uint64
	flags   []uint64
	keys    []cityhash.Uint128
	values  []int32
}

// NewTable constructs a table sized to hold cap keys before it needs to grow.
// maxLoad is the fraction of slots that may be occupied, values out of the
// (0, 1) range select DefaultMaxLoad.
func NewTable(cap int, maxLoad float64) *Table {
	if cap < minCap {
		cap = minCap
	}
	if maxLoad <= 0 || maxLoad >= 1 {
		maxLoad = DefaultMaxLoad
	}
	t := new(Table)
	t.init(nextPowerOf2(cap), maxLoad)
	return t
}

func (t *Table) init(cap int, maxLoad float64) {
	*t = Table{
		cap:     cap,
		maxLen:  int(math.Ceil(maxLoad * float64(cap))),
		maxLoad: maxLoad,
		seed:    rand.Uint64(),
		flags:   make([]uint64, cap/64),
		keys:    make([]cityhash.Uint128, cap),
		values:  make([]int32, cap),
	}
}

func (t *Table) grow(totalKeys int) {
	cap := 2 * t.cap
	totalKeys = nextPowerOf2(totalKeys)
	if totalKeys > cap {
		cap = totalKeys
	}

	tmp := Table{}
	tmp.init(cap, t.maxLoad)
	tmp.len = t.len

	for i, f := range t.flags {
		for f != 0 {
			j := 64*i + bits.TrailingZeros64(f)
			tmp.insert(t.keys[j], t.values[j])
			f &= f - 1
		}
	}

	*t = tmp
}

func (t *Table) hash(key cityhash.Uint128) uint64 {
	return cityhash.Hash128To64(cityhash.Uint128{key.Low() ^ t.seed, key.High()})
}

func (t *Table) insert(key cityhash.Uint128, value int32) {
	mod := uint64(t.cap) - 1

	for hash := t.hash(key); ; hash++ {
		position := hash & mod
		index := position / 64
		shift := position % 64

		if (t.flags[index] & (1 << shift)) == 0 {
			t.flags[index] |= 1 << shift
			t.keys[position] = key
			t.values[position] = value
			return
		}
	}
}

// Reset empties the table, retaining its capacity.
func (t *Table) Reset() {
	for i := range t.flags {
		t.flags[i] = 0
	}
	t.len = 0
}

// Len returns the number of distinct keys in the table.
func (t *Table) Len() int { return t.len }

// Cap returns the number of slots of the table.
func (t *Table) Cap() int { return t.cap }

// Probe writes to values[i] the id of keys[i], inserting the keys that were
// not in the table yet. The values slice must be at least as long as keys.
func (t *Table) Probe(keys []cityhash.Uint128, values []int32) {
	_ = values[:len(keys)]

	if totalKeys := t.len + len(keys); totalKeys > t.maxLen {
		t.grow(totalKeys)
	}

	mod := uint64(t.cap) - 1

	for i, key := range keys {
		for hash := t.hash(key); ; hash++ {
			position := hash & mod
			index := position / 64
			shift := position % 64

			if (t.flags[index] & (1 << shift)) == 0 {
				t.flags[index] |= 1 << shift
				t.keys[position] = key
				t.values[position] = int32(t.len)
				values[i] = int32(t.len)
				t.len++
				break
			}

			if t.keys[position] == key {
				values[i] = t.values[position]
				break
			}
		}
	}
}

// ProbeBytes is like Probe but takes the keys as byte sequences, which are
// fingerprinted with cityhash.Hash128.
func (t *Table) ProbeBytes(keys [][]byte, values []int32) {
	_ = values[:len(keys)]

	var hashes [probeBatchSize]cityhash.Uint128

	for i := 0; i < len(keys); {
		j := min(i+len(hashes), len(keys))
		n := j - i

		for k, key := range keys[i:j] {
			hashes[k] = cityhash.Hash128(key)
		}

		t.Probe(hashes[:n:n], values[i:j:j])
		i = j
	}
}
