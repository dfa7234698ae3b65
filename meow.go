// Package meow computes a fast, non-cryptographic 128 bit fingerprint of a
// byte slice. It is built from AES decryption rounds run over many
// independent lanes and is meant for deduplication and integrity checks of
// large buffers, not for use against an adversary.
//
// The digest depends on the kernel width: the 128, 256 and 512 bit kernels
// compute different functions of the same input, so digests are only
// comparable when they come from the same width.
package meow

import (
	"unsafe"
)

// Sum returns the digest of data under seed using the process wide
// implementation returned by Active.
func Sum(seed Seed, data []byte) Digest {
	return Active().Sum(seed, data)
}

// SumPointer returns the digest of the n bytes starting at p using the
// process wide implementation.
//
// No validation is done. p must point to at least n readable bytes for the
// duration of the call; anything else is undefined behavior.
func SumPointer(seed Seed, p unsafe.Pointer, n int) Digest {
	return Active().SumPointer(seed, p, n)
}

// Equal reports whether two digests are identical in all 128 bits.
func Equal(a, b Digest) bool {
	return a == b
}
