package cityhash

import (
	"encoding/binary"

	"github.com/klauspost/crc32"
)

const unsupported = "BUG: CRC32 instructions are not available on this platform"

// crcFallbackThreshold is the length up to which HashCRC128 and
// HashCRC128WithSeed produce the same values as Hash128 and Hash128WithSeed.
const crcFallbackThreshold = 900

// crcBlockSize is the number of bytes consumed by one iteration of the main
// loop of hashCRC256, made of six 40 bytes chunks.
const crcBlockSize = 240

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// CRCEnabled returns true if the CPU provides the CRC32 instructions that the
// HashCRC128, HashCRC128WithSeed and HashCRC256 functions depend on.
//
// The value is determined once when the program starts and never changes.
// When it is false, calling any of those functions triggers a panic: the
// program must select the portable Hash128 instead, there is no automatic
// fallback since the two algorithms produce different values.
func CRCEnabled() bool { return hasCRC32 }

// HashCRC256 returns a 256 bit hash of s.
//
// The function panics if CRCEnabled returns false.
func HashCRC256(s []byte) Uint256 {
	if !hasCRC32 {
		panic(unsupported)
	}
	return hashCRC256(s)
}

// HashCRC128 returns a 128 bit hash of s. For inputs up to 900 bytes the value
// is the same as Hash128.
//
// The function panics if CRCEnabled returns false.
func HashCRC128(s []byte) Uint128 {
	if !hasCRC32 {
		panic(unsupported)
	}
	return hashCRC128(s)
}

// HashCRC128WithSeed returns a 128 bit hash of s mixed with a 128 bit seed. For
// inputs up to 900 bytes the value is the same as Hash128WithSeed.
//
// The function panics if CRCEnabled returns false.
func HashCRC128WithSeed(s []byte, seed Uint128) Uint128 {
	if !hasCRC32 {
		panic(unsupported)
	}
	return hashCRC128WithSeed(s, seed)
}

func hashCRC128(s []byte) Uint128 {
	return crc128(s, crc32u64)
}

func hashCRC128WithSeed(s []byte, seed Uint128) Uint128 {
	return crc128WithSeed(s, seed, crc32u64)
}

func crc128(s []byte, crc crcFunc) Uint128 {
	if len(s) <= crcFallbackThreshold {
		return hash128(s)
	}
	h := crc256(s, crc)
	return Uint128{h[2], h[3]}
}

func crc128WithSeed(s []byte, seed Uint128, crc crcFunc) Uint128 {
	if len(s) <= crcFallbackThreshold {
		return hash128WithSeed(s, seed)
	}
	h := crc256(s, crc)
	u := seed.High() + h[0]
	v := seed.Low() + h[1]
	return Uint128{
		hashLen16(u, v+h[2]),
		hashLen16(rotate(v, 32), u*k0+h[3]),
	}
}

func hashCRC256(s []byte) Uint256 {
	return crc256(s, crc32u64)
}

// crc256Generic computes the same values as hashCRC256 with the portable CRC
// step, regardless of the CPU capabilities.
func crc256Generic(s []byte) Uint256 {
	return crc256(s, crc32u64Generic)
}

type crcFunc func(crc, v uint64) uint64

func crc256(s []byte, crc crcFunc) Uint256 {
	if len(s) >= crcBlockSize {
		return crc256Long(s, 0, crc)
	}
	// Short inputs are zero-padded to a full block, the length is mixed in
	// through the seed so that trailing zeros remain significant.
	var buf [crcBlockSize]byte
	copy(buf[:], s)
	return crc256Long(buf[:], ^uint32(len(s)), crc)
}

// crcState holds the eight accumulators a..h and the three CRC lanes x, y, z
// of the accelerated engine.
type crcState struct {
	a, b, c, d, e, f, g, h uint64
	x, y, z                uint64
	crc                    crcFunc
}

// chunk mixes the 40 bytes at s[i:] into the state.
func (t *crcState) chunk(s []byte, i, r int) {
	permute3(&t.x, &t.z, &t.y)
	t.b += fetch64(s, i)
	t.c += fetch64(s, i+8)
	t.d += fetch64(s, i+16)
	t.e += fetch64(s, i+24)
	t.f += fetch64(s, i+32)
	t.a += t.b
	t.h += t.f
	t.b += t.c
	t.f += t.d
	t.g += t.e
	t.e += t.z
	t.g += t.x
	t.z = t.crc(t.z, t.b+t.g)
	t.y = t.crc(t.y, t.e+t.h)
	t.x = t.crc(t.x, t.f+t.a)
	t.e = rotate(t.e, r)
	t.c += t.e
}

// permute3 rotates the values of a, b, c so that a receives c, b receives a,
// and c receives b.
func permute3(a, b, c *uint64) {
	*a, *b, *c = *c, *a, *b
}

// crc256Long requires len(s) >= 240.
func crc256Long(s []byte, seed uint32, crc crcFunc) Uint256 {
	n := len(s)
	var r Uint256
	t := crcState{
		a:   fetch64(s, 56) + k0,
		b:   fetch64(s, 96) + k0,
		e:   fetch64(s, 184) + uint64(seed),
		x:   uint64(seed),
		crc: crc,
	}
	t.c = hashLen16(t.b, uint64(n))
	t.d = fetch64(s, 120)*k0 + uint64(n)
	r[0] = t.c
	r[1] = t.d
	t.h = t.c + t.d

	i := 0
	for iters := n / crcBlockSize; iters > 0; iters-- {
		t.chunk(s, i, 0)
		permute3(&t.a, &t.h, &t.c)
		t.chunk(s, i+40, 33)
		permute3(&t.a, &t.h, &t.f)
		t.chunk(s, i+80, 0)
		permute3(&t.b, &t.h, &t.f)
		t.chunk(s, i+120, 42)
		permute3(&t.b, &t.h, &t.d)
		t.chunk(s, i+160, 0)
		permute3(&t.b, &t.h, &t.e)
		t.chunk(s, i+200, 33)
		permute3(&t.a, &t.h, &t.e)
		i += crcBlockSize
	}

	for ; n-i >= 40; i += 40 {
		t.chunk(s, i, 29)
		t.e ^= rotate(t.a, 20)
		t.h += rotate(t.b, 30)
		t.g ^= rotate(t.c, 40)
		t.f += rotate(t.d, 34)
		permute3(&t.c, &t.h, &t.g)
	}

	if i < n {
		// Re-read the last 40 bytes of s, overlapping the previous chunk.
		t.chunk(s, n-40, 33)
		t.e ^= rotate(t.a, 43)
		t.h += rotate(t.b, 42)
		t.g ^= rotate(t.c, 41)
		t.f += rotate(t.d, 40)
	}

	r[0] ^= t.h
	r[1] ^= t.g
	t.g += t.h
	t.a = hashLen16(t.a, t.g+t.z)
	t.x += t.y << 32
	t.b += t.x
	t.c = hashLen16(t.c, t.z) + t.h
	t.d = hashLen16(t.d, t.e+r[0])
	t.g += t.e
	t.h += hashLen16(t.x, t.f)
	t.e = hashLen16(t.a, t.d) + t.g
	t.z = hashLen16(t.b, t.c) + t.a
	t.y = hashLen16(t.g, t.h) + t.c
	r[0] = t.e + t.z + t.y + t.x
	t.a = shiftMix((t.a+t.y)*k0)*k0 + t.b
	r[1] += t.a + r[0]
	t.a = shiftMix(t.a*k0)*k0 + t.c
	r[2] = t.a + r[1]
	t.a = shiftMix((t.a+t.e)*k0) * k0
	r[3] = t.a + r[2]
	return r
}

// crc32u64Generic has the semantics of the SSE4.2 crc32 instruction on 64 bits
// operands: the CRC32-C of the 8 little-endian bytes of v, continuing from the
// low 32 bits of crc, without the pre and post inversions of hash/crc32.
func crc32u64Generic(crc, v uint64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	return uint64(^crc32.Update(^uint32(crc), castagnoli, b[:]))
}
