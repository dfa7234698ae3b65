// Package ref is a slow, direct implementation of the meow kernels used as
// a reference by tests. It pads the input up front, keeps every sub-lane in
// one flat slice and performs the AES round step by step on bytes.
package ref

import "encoding/binary"

// Dec is one AES decryption round on 16 bytes, byte r+4c holding row r of
// column c: InvShiftRows, InvSubBytes, InvMixColumns, AddRoundKey.
func Dec(state *[16]byte, key *[16]byte) {
	var s [16]byte
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			s[r+4*c] = invSub[state[r+4*((c-r+4)%4)]]
		}
	}

	for c := 0; c < 4; c++ {
		a0, a1, a2, a3 := s[4*c], s[4*c+1], s[4*c+2], s[4*c+3]
		state[4*c+0] = gmul(a0, 14) ^ gmul(a1, 11) ^ gmul(a2, 13) ^ gmul(a3, 9) ^ key[4*c+0]
		state[4*c+1] = gmul(a0, 9) ^ gmul(a1, 14) ^ gmul(a2, 11) ^ gmul(a3, 13) ^ key[4*c+1]
		state[4*c+2] = gmul(a0, 13) ^ gmul(a1, 9) ^ gmul(a2, 14) ^ gmul(a3, 11) ^ key[4*c+2]
		state[4*c+3] = gmul(a0, 11) ^ gmul(a1, 13) ^ gmul(a2, 9) ^ gmul(a3, 14) ^ key[4*c+3]
	}
}

// Hash computes the digest of input under seed for a kernel of the given
// width in bits (128, 256 or 512).
func Hash(width int, seed [16]byte, input []byte) (out [16]byte) {
	lanes := 8 * width / 128
	blockLen := 2 * chunkLen * lanes

	state := make([][16]byte, lanes)
	for i := range state {
		state[i] = seed
		state[i][0] ^= byte(i)
	}

	padded := make([]byte, (len(input)+blockLen-1)/blockLen*blockLen)
	copy(padded, input)

	for b := 0; b < len(padded); b += blockLen {
		for k := 0; k < 2*lanes; k++ {
			var chunk [16]byte
			copy(chunk[:], padded[b+chunkLen*k:])
			Dec(&state[k%lanes], &chunk)
		}
	}

	var length [16]byte
	binary.LittleEndian.PutUint64(length[:], uint64(len(input)))
	for i := range state {
		Dec(&state[i], &length)
	}

	for n := lanes; n > 1; n /= 2 {
		for i := 0; i < n/2; i++ {
			Dec(&state[i], &state[i+n/2])
		}
	}

	out = state[0]
	Dec(&out, &seed)
	for i := range finalize {
		Dec(&out, &finalize[i])
	}
	return out
}
