package meow

import (
	"encoding/binary"
	"fmt"
)

// Seed selects one function out of the family. Any value is valid.
type Seed [16]byte

// Seed64 zero extends v into a seed.
func Seed64(v uint64) (s Seed) {
	binary.LittleEndian.PutUint64(s[0:], v)
	return s
}

// Seed128 builds a seed from its low and high 64 bit halves.
func Seed128(lo, hi uint64) (s Seed) {
	binary.LittleEndian.PutUint64(s[0:], lo)
	binary.LittleEndian.PutUint64(s[8:], hi)
	return s
}

// SeedFromBytes zero extends b into a seed. It returns an error if b is
// longer than 16 bytes.
func SeedFromBytes(b []byte) (s Seed, err error) {
	if len(b) > len(s) {
		return s, fmt.Errorf("meow: seed too long: %d bytes", len(b))
	}
	copy(s[:], b)
	return s, nil
}
