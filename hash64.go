package cityhash

import "math/bits"

func hashLen0to16(s []byte) uint64 {
	n := uint64(len(s))
	if n >= 8 {
		mul := k2 + n*2
		a := fetch64(s, 0) + k2
		b := fetch64(s, len(s)-8)
		c := rotate(b, 37)*mul + a
		d := (rotate(a, 25) + b) * mul
		return hashLen16Mul(c, d, mul)
	}
	if n >= 4 {
		mul := k2 + n*2
		a := uint64(fetch32(s, 0))
		return hashLen16Mul(n+(a<<3), uint64(fetch32(s, len(s)-4)), mul)
	}
	if n > 0 {
		a := s[0]
		b := s[n>>1]
		c := s[n-1]
		y := uint32(a) + uint32(b)<<8
		z := uint32(n) + uint32(c)<<2
		return shiftMix(uint64(y)*k2^uint64(z)*k0) * k2
	}
	return k2
}

// This probably works well for 16-byte strings as well, but it may be overkill
// in that case.
func hashLen17to32(s []byte) uint64 {
	n := len(s)
	mul := k2 + uint64(n)*2
	a := fetch64(s, 0) * k1
	b := fetch64(s, 8)
	c := fetch64(s, n-8) * mul
	d := fetch64(s, n-16) * k2
	return hashLen16Mul(rotate(a+b, 43)+rotate(c, 30)+d, a+rotate(b+k2, 18)+c, mul)
}

func hashLen33to64(s []byte) uint64 {
	n := len(s)
	mul := k2 + uint64(n)*2
	a := fetch64(s, 0) * k2
	b := fetch64(s, 8)
	c := fetch64(s, n-24)
	d := fetch64(s, n-32)
	e := fetch64(s, 16) * k2
	f := fetch64(s, 24) * 9
	g := fetch64(s, n-8)
	h := fetch64(s, n-16) * mul
	u := rotate(a+g, 43) + (rotate(b, 30)+c)*9
	v := ((a + g) ^ d) + f + 1
	w := bits.ReverseBytes64((u+v)*mul) + h
	x := rotate(e+f, 42) + c
	y := (bits.ReverseBytes64((v+w)*mul) + g) * mul
	z := e + f + c
	a = bits.ReverseBytes64((x+z)*mul+y) + b
	b = shiftMix((z+a)*mul+d+h) * mul
	return b + x
}

// weakHashLen32WithSeedsWords returns a 16-byte hash for 48 bytes. Quick and
// dirty. Callers do best to use "random-looking" values for a and b.
func weakHashLen32WithSeedsWords(w, x, y, z, a, b uint64) (uint64, uint64) {
	a += w
	b = rotate(b+a+z, 21)
	c := a
	a += x
	a += y
	b += rotate(a, 44)
	return a + z, b + c
}

// weakHashLen32WithSeeds returns a 16-byte hash for s[i:i+32], a, and b.
func weakHashLen32WithSeeds(s []byte, i int, a, b uint64) (uint64, uint64) {
	return weakHashLen32WithSeedsWords(
		fetch64(s, i),
		fetch64(s, i+8),
		fetch64(s, i+16),
		fetch64(s, i+24),
		a,
		b,
	)
}

func hash64(s []byte) uint64 {
	n := len(s)
	if n <= 32 {
		if n <= 16 {
			return hashLen0to16(s)
		}
		return hashLen17to32(s)
	}
	if n <= 64 {
		return hashLen33to64(s)
	}

	// For strings over 64 bytes we hash the end first, and then as we loop we
	// keep 56 bytes of state: v, w, x, y, and z.
	x := fetch64(s, n-40)
	y := fetch64(s, n-16) + fetch64(s, n-56)
	z := hashLen16(fetch64(s, n-48)+uint64(n), fetch64(s, n-24))
	v1, v2 := weakHashLen32WithSeeds(s, n-64, uint64(n), z)
	w1, w2 := weakHashLen32WithSeeds(s, n-32, y+k1, x)
	x = x*k1 + fetch64(s, 0)

	// Operate on 64-byte chunks up to the largest multiple of 64 strictly
	// below n; the remainder was folded in by the seeding above.
	end := (n - 1) &^ 63
	for i := 0; i < end; i += 64 {
		x = rotate(x+y+v1+fetch64(s, i+8), 37) * k1
		y = rotate(y+v2+fetch64(s, i+48), 42) * k1
		x ^= w2
		y += v1 + fetch64(s, i+40)
		z = rotate(z+w1, 33) * k1
		v1, v2 = weakHashLen32WithSeeds(s, i, v2*k1, x+w1)
		w1, w2 = weakHashLen32WithSeeds(s, i+32, z+w2, y+fetch64(s, i+16))
		z, x = x, z
	}
	return hashLen16(hashLen16(v1, w1)+shiftMix(y)*k1+z, hashLen16(v2, w2)+x)
}
