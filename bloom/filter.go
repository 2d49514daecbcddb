package bloom

import (
	"io"

	"github.com/segmentio/cityhash/internal/unsafecast"
)

// Filter is an interface representing read-only bloom filters where programs
// can probe for the possible presence of a hash key.
type Filter interface {
	Check(uint64) bool
}

// MutableFilter is an extension of the Filter interface which supports
// inserting keys to the filter.
type MutableFilter interface {
	Filter
	Reset()
	Insert(uint64)
	InsertBulk([]uint64)
	Bytes() []byte
}

// SplitBlockFilter is an in-memory implementation of split-block bloom filters.
//
// This type is useful to construct bloom filters that are later serialized
// to a storage medium.
type SplitBlockFilter []Block

// NumSplitBlocksOf returns the number of blocks in a filter intended to hold
// the given number of values and bits of filter per value.
//
// This function is useful to determine the number of blocks when creating bloom
// filters in memory, for example:
//
//	f := make(bloom.SplitBlockFilter, bloom.NumSplitBlocksOf(n, 10))
func NumSplitBlocksOf(numValues int64, bitsPerValue uint) int {
	numBytes := (uint64(numValues)*uint64(bitsPerValue) + 7) / 8
	numBlocks := (numBytes + (BlockSize - 1)) / BlockSize
	if numBlocks == 0 {
		numBlocks = 1
	}
	return int(numBlocks)
}

// Reset clears the content of the filter f.
func (f SplitBlockFilter) Reset() {
	for i := range f {
		f[i] = Block{}
	}
}

// Block returns a pointer to the block that the given value hashes to in the
// bloom filter.
func (f SplitBlockFilter) Block(x uint64) *Block { return &f[blockIndex(x, uint64(len(f)))] }

// InsertBulk adds all values from x into f.
func (f SplitBlockFilter) InsertBulk(x []uint64) {
	for _, v := range x {
		f.Insert(v)
	}
}

// Insert adds x to f.
func (f SplitBlockFilter) Insert(x uint64) { f.Block(x).Insert(uint32(x)) }

// Check tests whether x is in f.
func (f SplitBlockFilter) Check(x uint64) bool { return f.Block(x).Check(uint32(x)) }

// Bytes converts f to a byte slice.
//
// The returned slice shares the memory of f. The method is intended to be used
// to serialize the bloom filter to a storage medium.
func (f SplitBlockFilter) Bytes() []byte {
	return unsafecast.Slice[byte, Block](f)
}

// CheckSplitBlock is similar to bloom.SplitBlockFilter.Check but reads the
// bloom filter of n bytes from r, using b as buffer to load the block in which
// to check for the existence of x.
//
// The size n of the bloom filter is assumed to be a multiple of the block size.
func CheckSplitBlock(r io.ReaderAt, n int64, b *Block, x uint64) (bool, error) {
	offset := BlockSize * blockIndex(x, uint64(n)/BlockSize)
	_, err := r.ReadAt(b.Bytes(), int64(offset))
	return b.Check(uint32(x)), err
}

// The upper 32 bits of x select the block, the lower 32 bits select the bits
// within the block.
func blockIndex(x, n uint64) uint64 {
	return ((x >> 32) * n) >> 32
}

var (
	_ MutableFilter = SplitBlockFilter(nil)
)
