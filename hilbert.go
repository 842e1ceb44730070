package flatbush

// hilbert maps a grid coordinate pair in [0, 65536) x [0, 65536) to its
// distance along an order-16 Hilbert curve. The bit-mixing sequence below
// is the public-domain technique from https://github.com/rawrunprotected/hilbert_curves,
// reproduced bit-for-bit because the packed tree's leaf order depends on
// it: a different (even if still locality-preserving) mixing would produce
// a different packed layout.
//
// All arithmetic is unsigned 32-bit; right shifts must stay logical.
func hilbert(x, y uint32) uint32 {
	var A, B, C, D uint32

	{
		a := x ^ y
		b := 0xFFFF ^ a
		c := 0xFFFF ^ (x | y)
		d := x & (y ^ 0xFFFF)

		A = a | (b >> 1)
		B = (a >> 1) ^ a

		C = ((c >> 1) ^ (b & (d >> 1))) ^ c
		D = ((a & (c >> 1)) ^ (d >> 1)) ^ d
	}

	{
		a, b, c, d := A, B, C, D

		A = (a & (a >> 2)) ^ (b & (b >> 2))
		B = (a & (b >> 2)) ^ (b & ((a ^ b) >> 2))

		C ^= (a & (c >> 2)) ^ (b & (d >> 2))
		D ^= (b & (c >> 2)) ^ ((a ^ b) & (d >> 2))
	}

	{
		a, b, c, d := A, B, C, D

		A = (a & (a >> 4)) ^ (b & (b >> 4))
		B = (a & (b >> 4)) ^ (b & ((a ^ b) >> 4))

		C ^= (a & (c >> 4)) ^ (b & (d >> 4))
		D ^= (b & (c >> 4)) ^ ((a ^ b) & (d >> 4))
	}

	{
		a, b, c, d := A, B, C, D

		C ^= (a & (c >> 8)) ^ (b & (d >> 8))
		D ^= (b & (c >> 8)) ^ ((a ^ b) & (d >> 8))
	}

	a := C ^ (C >> 1)
	b := D ^ (D >> 1)

	i0 := x ^ y
	i1 := b | (0xFFFF ^ (i0 | a))

	return (interleave(i1) << 1) | interleave(i0)
}

// interleave spreads the low 16 bits of x into the even bit positions of a
// 32-bit word (a Morton/bit-spread step). From rawrunprotected's hilbert_curves,
// public domain.
func interleave(x uint32) uint32 {
	x = (x | (x << 8)) & 0x00FF00FF
	x = (x | (x << 4)) & 0x0F0F0F0F
	x = (x | (x << 2)) & 0x33333333
	x = (x | (x << 1)) & 0x55555555
	return x
}
