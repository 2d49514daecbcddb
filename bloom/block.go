package bloom

import "unsafe"

// Word represents 32 bits words of bloom filter blocks.
type Word uint32

// Block represents bloom filter blocks which contain eight 32 bits words.
type Block [8]Word

// BlockSize is the size of bloom filter blocks in bytes.
const BlockSize = 32

// salt values used to derive the bit positions of a key in a block.
var salt = [8]uint32{
	0: 0x47b6137b,
	1: 0x44974d91,
	2: 0x8824ad5b,
	3: 0xa2b7289d,
	4: 0x705495c7,
	5: 0x2df1424b,
	6: 0x9efc4947,
	7: 0x5c6bfb31,
}

func (b *Block) mask(x uint32) (m Block) {
	for i := range m {
		m[i] = Word(1) << ((x * salt[i]) >> 27)
	}
	return m
}

// Bytes returns b as a byte slice.
func (b *Block) Bytes() []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(b)), BlockSize)
}

// Insert sets the bits of x in b.
func (b *Block) Insert(x uint32) {
	m := b.mask(x)
	for i := range b {
		b[i] |= m[i]
	}
}

// Check tests whether all the bits of x are set in b.
func (b *Block) Check(x uint32) bool {
	m := b.mask(x)
	for i := range b {
		if (b[i] & m[i]) == 0 {
			return false
		}
	}
	return true
}
