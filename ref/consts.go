package ref

const chunkLen = 16

var finalize = [3][16]byte{
	{0x88, 0x6a, 0x3f, 0x24, 0xd3, 0x08, 0xa3, 0x85, 0x2e, 0x8a, 0x19, 0x13, 0x44, 0x73, 0x70, 0x03},
	{0x22, 0x38, 0x09, 0xa4, 0xd0, 0x31, 0x9f, 0x29, 0x98, 0xfa, 0x2e, 0x08, 0x89, 0x6c, 0x4e, 0xec},
	{0xe6, 0x21, 0x28, 0x45, 0x77, 0x13, 0xd0, 0x38, 0xcf, 0x66, 0x54, 0xbe, 0x6c, 0x0c, 0xe9, 0x34},
}

// gmul multiplies in GF(2^8) modulo x^8 + x^4 + x^3 + x + 1.
func gmul(a, b byte) (r byte) {
	for ; b != 0; b >>= 1 {
		if b&1 != 0 {
			r ^= a
		}
		hi := a & 0x80
		a <<= 1
		if hi != 0 {
			a ^= 0x1b
		}
	}
	return r
}

// ginv returns a^254, the multiplicative inverse of a (and 0 for 0).
func ginv(a byte) byte {
	r := byte(1)
	for i := 0; i < 254; i++ {
		r = gmul(r, a)
	}
	return r
}

func subByte(a byte) byte {
	const c = byte(0x63)

	b := ginv(a)
	var s byte
	for i := uint(0); i < 8; i++ {
		bit := (b>>i ^ b>>((i+4)%8) ^ b>>((i+5)%8) ^ b>>((i+6)%8) ^ b>>((i+7)%8) ^ c>>i) & 1
		s |= bit << i
	}
	return s
}

var invSub = func() (t [256]byte) {
	for i := 0; i < 256; i++ {
		t[subByte(byte(i))] = byte(i)
	}
	return t
}()
