package cityhash

import "math/bits"

func hash32Len0to4(s []byte) uint32 {
	b := uint32(0)
	c := uint32(9)
	for _, v := range s {
		// Bytes are sign-extended before being mixed in.
		b = b*c1 + uint32(int8(v))
		c ^= b
	}
	return fmix(mur(b, mur(uint32(len(s)), c)))
}

func hash32Len5to12(s []byte) uint32 {
	n := uint32(len(s))
	a, b, c, d := n, n*5, uint32(9), n*5
	a += fetch32(s, 0)
	b += fetch32(s, len(s)-4)
	c += fetch32(s, (len(s)>>1)&4)
	return fmix(mur(c, mur(b, mur(a, d))))
}

func hash32Len13to24(s []byte) uint32 {
	n := len(s)
	a := fetch32(s, (n>>1)-4)
	b := fetch32(s, 4)
	c := fetch32(s, n-8)
	d := fetch32(s, n>>1)
	e := fetch32(s, 0)
	f := fetch32(s, n-4)
	h := uint32(n)
	return fmix(mur(f, mur(e, mur(d, mur(c, mur(b, mur(a, h)))))))
}

func hash32(s []byte) uint32 {
	n := len(s)
	if n <= 24 {
		switch {
		case n <= 4:
			return hash32Len0to4(s)
		case n <= 12:
			return hash32Len5to12(s)
		default:
			return hash32Len13to24(s)
		}
	}

	const magic = 0xe6546b64
	h := uint32(n)
	g := c1 * uint32(n)
	f := g

	a0 := rotate32(fetch32(s, n-4)*c1, 17) * c2
	a1 := rotate32(fetch32(s, n-8)*c1, 17) * c2
	a2 := rotate32(fetch32(s, n-16)*c1, 17) * c2
	a3 := rotate32(fetch32(s, n-12)*c1, 17) * c2
	a4 := rotate32(fetch32(s, n-20)*c1, 17) * c2
	h ^= a0
	h = rotate32(h, 19)*5 + magic
	h ^= a2
	h = rotate32(h, 19)*5 + magic
	g ^= a1
	g = rotate32(g, 19)*5 + magic
	g ^= a3
	g = rotate32(g, 19)*5 + magic
	f += a4
	f = rotate32(f, 19)*5 + magic

	for i, iters := 0, (n-1)/20; iters != 0; iters-- {
		a0 := rotate32(fetch32(s, i)*c1, 17) * c2
		a1 := fetch32(s, i+4)
		a2 := rotate32(fetch32(s, i+8)*c1, 17) * c2
		a3 := rotate32(fetch32(s, i+12)*c1, 17) * c2
		a4 := fetch32(s, i+16)
		h ^= a0
		h = rotate32(h, 18)*5 + magic
		f += a1
		f = rotate32(f, 19) * c1
		g += a2
		g = rotate32(g, 18)*5 + magic
		h ^= a3 + a1
		h = rotate32(h, 19)*5 + magic
		g ^= a4
		g = bits.ReverseBytes32(g) * 5
		h += a4 * 5
		h = bits.ReverseBytes32(h)
		f += a0
		f, g, h = g, h, f
		i += 20
	}

	g = rotate32(g, 11) * c1
	g = rotate32(g, 17) * c1
	f = rotate32(f, 11) * c1
	f = rotate32(f, 17) * c1
	h = rotate32(h+g, 19)
	h = h*5 + magic
	h = rotate32(h, 17) * c1
	h = rotate32(h+f, 19)
	h = h*5 + magic
	h = rotate32(h, 17) * c1
	return h
}
