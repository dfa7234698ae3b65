// Package smhasher adapts meow to the calling convention of hash quality
// test suites: a key, a 32 bit seed and an output buffer.
package smhasher

import (
	"github.com/zeebo/meow"
)

// Adapter hashes with a fixed implementation. The zero value uses the 128
// bit kernel.
type Adapter struct {
	Impl meow.Impl
}

func (a Adapter) sum(key []byte, seed uint32) meow.Digest {
	return a.Impl.Sum(meow.Seed64(uint64(seed)), key)
}

// Hash32 writes the low 4 bytes of the digest to out.
func (a Adapter) Hash32(key []byte, seed uint32, out []byte) {
	d := a.sum(key, seed)
	copy(out[:4], d[:4])
}

// Hash64 writes the low 8 bytes of the digest to out.
func (a Adapter) Hash64(key []byte, seed uint32, out []byte) {
	d := a.sum(key, seed)
	copy(out[:8], d[:8])
}

// Hash128 writes the full digest to out.
func (a Adapter) Hash128(key []byte, seed uint32, out []byte) {
	d := a.sum(key, seed)
	copy(out[:16], d[:])
}
