package meow

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidDigest is returned when parsing a malformed digest string.
var ErrInvalidDigest = errors.New("meow: invalid digest")

// Size is the length of a Digest in bytes.
const Size = 16

// Digest is the 128 bit output of the hash in little endian byte order.
type Digest [Size]byte

// U32 returns the i'th 32 bit little endian word of the digest. Word 0 is
// the lowest order word. It panics if i is not in [0, 4).
func (d Digest) U32(i int) uint32 {
	return binary.LittleEndian.Uint32(d[4*i:])
}

// U64 returns the i'th 64 bit little endian word of the digest. It panics if
// i is not in [0, 2).
func (d Digest) U64(i int) uint64 {
	return binary.LittleEndian.Uint64(d[8*i:])
}

// U128 returns the digest as a low and high 64 bit word.
func (d Digest) U128() (lo, hi uint64) {
	return d.U64(0), d.U64(1)
}

// Equal reports whether d and o are the same digest.
func (d Digest) Equal(o Digest) bool {
	return d == o
}

// String formats the digest as four hyphen separated words, most
// significant first.
func (d Digest) String() string {
	return fmt.Sprintf("%08X-%08X-%08X-%08X", d.U32(3), d.U32(2), d.U32(1), d.U32(0))
}

func (d Digest) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Digest) UnmarshalText(text []byte) error {
	p, err := ParseDigest(string(text))
	if err != nil {
		return err
	}
	*d = p
	return nil
}

// ParseDigest parses the form produced by Digest.String. Hex digits may be
// in either case.
func ParseDigest(s string) (d Digest, err error) {
	if len(s) != 35 || s[8] != '-' || s[17] != '-' || s[26] != '-' {
		return d, fmt.Errorf("%w: %q", ErrInvalidDigest, s)
	}
	for i := 0; i < 4; i++ {
		part := s[9*i : 9*i+8]
		v, err := strconv.ParseUint(part, 16, 32)
		if err != nil {
			return Digest{}, fmt.Errorf("%w: %q", ErrInvalidDigest, s)
		}
		binary.LittleEndian.PutUint32(d[4*(3-i):], uint32(v))
	}
	return d, nil
}
