package utils

import (
	"encoding/binary"
)

// LoadWords reads the first 16 bytes of b as four little endian words.
func LoadWords(b []byte) (w [4]uint32) {
	_ = b[15]
	w[0] = binary.LittleEndian.Uint32(b[0:])
	w[1] = binary.LittleEndian.Uint32(b[4:])
	w[2] = binary.LittleEndian.Uint32(b[8:])
	w[3] = binary.LittleEndian.Uint32(b[12:])
	return w
}

func BytesToWords(bytes *[16]byte, words *[4]uint32) {
	*words = LoadWords(bytes[:])
}

func WordsToBytes(words *[4]uint32, bytes *[16]byte) {
	binary.LittleEndian.PutUint32(bytes[0:], words[0])
	binary.LittleEndian.PutUint32(bytes[4:], words[1])
	binary.LittleEndian.PutUint32(bytes[8:], words[2])
	binary.LittleEndian.PutUint32(bytes[12:], words[3])
}

// Uint64ToWords splits v into its low and high words.
func Uint64ToWords(v uint64) (lo, hi uint32) {
	return uint32(v), uint32(v >> 32)
}
