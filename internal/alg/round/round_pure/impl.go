package round_pure

import (
	"math/bits"
)

var (
	sbox    [256]byte
	invSbox [256]byte

	td0, td1, td2, td3 [256]uint32
)

func init() {
	// walk the multiplicative group with generator 3, pairing every p with
	// its inverse q, and apply the affine transform to q.
	p, q := byte(1), byte(1)
	for {
		p ^= xtime(p)

		q ^= q << 1
		q ^= q << 2
		q ^= q << 4
		if q&0x80 != 0 {
			q ^= 0x09
		}

		x := q ^ bits.RotateLeft8(q, 1) ^ bits.RotateLeft8(q, 2) ^
			bits.RotateLeft8(q, 3) ^ bits.RotateLeft8(q, 4)
		sbox[p] = x ^ 0x63

		if p == 1 {
			break
		}
	}
	sbox[0] = 0x63

	for i, v := range sbox {
		invSbox[v] = byte(i)
	}

	for x := range td0 {
		s := invSbox[x]
		w := uint32(mul(s, 14)) | uint32(mul(s, 9))<<8 |
			uint32(mul(s, 13))<<16 | uint32(mul(s, 11))<<24

		td0[x] = w
		td1[x] = bits.RotateLeft32(w, 8)
		td2[x] = bits.RotateLeft32(w, 16)
		td3[x] = bits.RotateLeft32(w, 24)
	}
}

func xtime(a byte) byte {
	if a&0x80 != 0 {
		return a<<1 ^ 0x1b
	}
	return a << 1
}

func mul(a, b byte) (r byte) {
	for ; b != 0; b >>= 1 {
		if b&1 != 0 {
			r ^= a
		}
		a = xtime(a)
	}
	return r
}

// Dec performs one AES decryption round on s with the round key k, exactly
// like the AESDEC instruction: InvShiftRows, InvSubBytes, InvMixColumns and
// then a xor with k. Word c of the state holds column c, row 0 in the low
// byte.
func Dec(s *[4]uint32, k *[4]uint32) {
	s0, s1, s2, s3 := s[0], s[1], s[2], s[3]

	s[0] = td0[uint8(s0)] ^ td1[uint8(s3>>8)] ^ td2[uint8(s2>>16)] ^ td3[uint8(s1>>24)] ^ k[0]
	s[1] = td0[uint8(s1)] ^ td1[uint8(s0>>8)] ^ td2[uint8(s3>>16)] ^ td3[uint8(s2>>24)] ^ k[1]
	s[2] = td0[uint8(s2)] ^ td1[uint8(s1>>8)] ^ td2[uint8(s0>>16)] ^ td3[uint8(s3>>24)] ^ k[2]
	s[3] = td0[uint8(s3)] ^ td1[uint8(s2>>8)] ^ td2[uint8(s1>>16)] ^ td3[uint8(s0>>24)] ^ k[3]
}
