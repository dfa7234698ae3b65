package round_pure

import (
	"encoding/binary"
	"encoding/hex"
	"testing"

	"github.com/zeebo/assert"
)

func words(t *testing.T, x string) (w [4]uint32) {
	t.Helper()

	b, err := hex.DecodeString(x)
	assert.NoError(t, err)
	assert.Equal(t, len(b), 16)

	for i := range w {
		w[i] = binary.LittleEndian.Uint32(b[4*i:])
	}
	return w
}

func TestSbox(t *testing.T) {
	assert.Equal(t, sbox[0x00], byte(0x63))
	assert.Equal(t, sbox[0x01], byte(0x7c))
	assert.Equal(t, sbox[0x53], byte(0xed))
	assert.Equal(t, sbox[0xff], byte(0x16))

	for i := 0; i < 256; i++ {
		assert.Equal(t, invSbox[sbox[i]], byte(i))
	}
}

func TestDec_Zero(t *testing.T) {
	var s, k [4]uint32
	Dec(&s, &k)
	assert.Equal(t, s, [4]uint32{0x52525252, 0x52525252, 0x52525252, 0x52525252})
}

func TestDec_IntelVector(t *testing.T) {
	// state 7b5b54657374566563746f725d53475d and key
	// 48692853686179295b477565726f6e5d, written as 128 bit integers.
	s := [4]uint32{0x5d53475d, 0x63746f72, 0x73745665, 0x7b5b5465}
	k := [4]uint32{0x726f6e5d, 0x5b477565, 0x68617929, 0x48692853}

	Dec(&s, &k)
	assert.Equal(t, s, [4]uint32{0xb730392a, 0xb58eb95e, 0xfaea2787, 0x138ac342})
}

// decLast is the final decryption round (no InvMixColumns).
func decLast(s *[4]uint32, k *[4]uint32) {
	var out [4]uint32
	for c := 0; c < 4; c++ {
		b0 := uint32(invSbox[uint8(s[c])])
		b1 := uint32(invSbox[uint8(s[(c+3)&3]>>8)])
		b2 := uint32(invSbox[uint8(s[(c+2)&3]>>16)])
		b3 := uint32(invSbox[uint8(s[(c+1)&3]>>24)])
		out[c] = (b0 | b1<<8 | b2<<16 | b3<<24) ^ k[c]
	}
	*s = out
}

// invMixColumns feeds the forward sbox into the decryption tables so that
// only the InvMixColumns step remains.
func invMixColumns(k [4]uint32) (out [4]uint32) {
	for c, w := range k {
		out[c] = td0[sbox[uint8(w)]] ^ td1[sbox[uint8(w>>8)]] ^
			td2[sbox[uint8(w>>16)]] ^ td3[sbox[uint8(w>>24)]]
	}
	return out
}

func subWord(w uint32) uint32 {
	return uint32(sbox[uint8(w)]) | uint32(sbox[uint8(w>>8)])<<8 |
		uint32(sbox[uint8(w>>16)])<<16 | uint32(sbox[uint8(w>>24)])<<24
}

func TestDec_AES128Decrypt(t *testing.T) {
	key := words(t, "000102030405060708090a0b0c0d0e0f")
	ct := words(t, "69c4e0d86a7b0430d8cdb78070b4c55a")
	pt := words(t, "00112233445566778899aabbccddeeff")

	var w [44]uint32
	copy(w[:], key[:])
	rcon := uint32(1)
	for i := 4; i < 44; i++ {
		tmp := w[i-1]
		if i%4 == 0 {
			tmp = subWord(tmp>>8|tmp<<24) ^ rcon
			rcon = uint32(xtime(byte(rcon)))
		}
		w[i] = w[i-4] ^ tmp
	}

	round := func(r int) (k [4]uint32) {
		copy(k[:], w[4*r:])
		return k
	}

	s := ct
	last := round(10)
	for i := range s {
		s[i] ^= last[i]
	}
	for r := 9; r >= 1; r-- {
		k := invMixColumns(round(r))
		Dec(&s, &k)
	}
	first := round(0)
	decLast(&s, &first)

	assert.Equal(t, s, pt)
}

func BenchmarkDec(b *testing.B) {
	var s, k [4]uint32

	b.SetBytes(16)
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		Dec(&s, &k)
	}
}
