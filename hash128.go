package cityhash

// cityMurmur returns a decent 128-bit hash for inputs shorter than 128 bytes.
// Based on City and Murmur.
func cityMurmur(s []byte, seed Uint128) Uint128 {
	n := len(s)
	a := seed.Low()
	b := seed.High()
	c := uint64(0)
	d := uint64(0)

	if n <= 16 {
		a = shiftMix(a*k1) * k1
		c = b*k1 + hashLen0to16(s)
		if n >= 8 {
			d = shiftMix(a + fetch64(s, 0))
		} else {
			d = shiftMix(a + c)
		}
	} else {
		c = hashLen16(fetch64(s, n-8)+k1, a)
		d = hashLen16(b+uint64(n), c+fetch64(s, n-16))
		a += d
		// The last iteration may read up to 15 bytes past n-16, which are
		// still within s since n > 16.
		for i := 0; i < n-16; i += 16 {
			a ^= shiftMix(fetch64(s, i)*k1) * k1
			a *= k1
			b ^= a
			c ^= shiftMix(fetch64(s, i+8)*k1) * k1
			c *= k1
			d ^= c
		}
	}

	a = hashLen16(a, c)
	b = hashLen16(d, b)
	return Uint128{a ^ b, hashLen16(b, a)}
}

func hash128WithSeed(s []byte, seed Uint128) Uint128 {
	if len(s) < 128 {
		return cityMurmur(s, seed)
	}

	// We expect len >= 128 to be the common case. Keep 56 bytes of state:
	// v, w, x, y, and z.
	n := len(s)
	x := seed.Low()
	y := seed.High()
	z := uint64(n) * k1
	v1 := rotate(y^k1, 49)*k1 + fetch64(s, 0)
	v2 := rotate(v1, 42)*k1 + fetch64(s, 8)
	w1 := rotate(y+z, 35)*k1 + x
	w2 := rotate(x+fetch64(s, 88), 53) * k1

	// Same inner loop as hash64, unrolled twice per 128 bytes.
	i := 0
	for ; n-i >= 128; i += 128 {
		for j := i; j < i+128; j += 64 {
			x = rotate(x+y+v1+fetch64(s, j+8), 37) * k1
			y = rotate(y+v2+fetch64(s, j+48), 42) * k1
			x ^= w2
			y += v1 + fetch64(s, j+40)
			z = rotate(z+w1, 33) * k1
			v1, v2 = weakHashLen32WithSeeds(s, j, v2*k1, x+w1)
			w1, w2 = weakHashLen32WithSeeds(s, j+32, z+w2, y+fetch64(s, j+16))
			z, x = x, z
		}
	}
	x += rotate(v1+z, 49) * k0
	y = y*k0 + rotate(w2, 37)
	z = z*k0 + rotate(w1, 27)
	w1 *= 9
	v1 *= k0

	// The remaining 0 to 127 bytes are hashed in 32-byte blocks walking
	// back from the end of s; the first block may overlap bytes that the
	// loop above already consumed.
	for done := 0; done < n-i; {
		done += 32
		off := n - done
		y = rotate(x+y, 42)*k0 + v2
		w1 += fetch64(s, off+16)
		x = x*k0 + w1
		z += w2 + fetch64(s, off)
		w2 += v1
		v1, v2 = weakHashLen32WithSeeds(s, off, v1+z, v2)
		v1 *= k0
	}

	// At this point our 56 bytes of state should contain more than enough
	// information for a strong 128-bit hash. We use two different
	// 56-byte-to-8-byte hashes to get a 16-byte final result.
	x = hashLen16(x, v1)
	y = hashLen16(y+z, w1)
	return Uint128{
		hashLen16(x+v2, w2) + y,
		hashLen16(x+w2, y+v2),
	}
}

func hash128(s []byte) Uint128 {
	if len(s) >= 16 {
		return hash128WithSeed(s[16:], Uint128{fetch64(s, 0), fetch64(s, 8) + k0})
	}
	return hash128WithSeed(s, Uint128{k0, k1})
}
