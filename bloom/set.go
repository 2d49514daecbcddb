package bloom

// DefaultBitsPerKey is the number of filter bits per key used when creating a
// Set with a zero bits per key value, it yields a false positive rate close
// to 1%.
const DefaultBitsPerKey = 10

// Set is a probabilistic set of byte keys, typically used to deduplicate
// streams of records.
//
// Set values are not safe for concurrent use by multiple goroutines when one
// of them is adding keys.
type Set struct {
	filter SplitBlockFilter
	hash   Hash
	hashes []uint64
}

// NewSet constructs a set sized to hold numKeys with the given number of
// filter bits per key. A nil hash defaults to CityHash64.
func NewSet(numKeys int64, bitsPerKey uint, hash Hash) *Set {
	if bitsPerKey == 0 {
		bitsPerKey = DefaultBitsPerKey
	}
	if hash == nil {
		hash = CityHash64{}
	}
	return &Set{
		filter: make(SplitBlockFilter, NumSplitBlocksOf(numKeys, bitsPerKey)),
		hash:   hash,
	}
}

// Add inserts key in the set and returns true if the key was possibly present
// already; a false return value means that key had never been added before.
func (s *Set) Add(key []byte) bool {
	x := s.hash.Sum64(key)
	b := s.filter.Block(x)
	if b.Check(uint32(x)) {
		return true
	}
	b.Insert(uint32(x))
	return false
}

// AddBatch inserts keys in the set.
func (s *Set) AddBatch(keys [][]byte) {
	if cap(s.hashes) < len(keys) {
		s.hashes = make([]uint64, len(keys))
	}
	hashes := s.hashes[:len(keys)]
	n := s.hash.MultiSum64(hashes, keys)
	s.filter.InsertBulk(hashes[:n])
}

// Contains returns true if key was possibly added to the set, false if it was
// certainly not.
func (s *Set) Contains(key []byte) bool {
	return s.filter.Check(s.hash.Sum64(key))
}

// Reset removes all keys from the set.
func (s *Set) Reset() { s.filter.Reset() }

// Filter returns the bloom filter backing the set.
func (s *Set) Filter() SplitBlockFilter { return s.filter }
