package kernel

import (
	"github.com/zeebo/meow/internal/alg/absorb"
	"github.com/zeebo/meow/internal/consts"
)

// The tail functions absorb the final partial block. rest is always shorter
// than a block; it is copied into a zeroed block sized array so the absorber
// never reads past the end of the caller's slice. An empty rest absorbs
// nothing.

func tail128(lanes *[consts.Lanes128][4]uint32, rest []byte) {
	if len(rest) == 0 {
		return
	}
	var buf [consts.Block128]byte
	copy(buf[:], rest)
	absorb.Absorb128(lanes, buf[:])
}

func tail256(lanes *[consts.Lanes256][4]uint32, rest []byte) {
	if len(rest) == 0 {
		return
	}
	var buf [consts.Block256]byte
	copy(buf[:], rest)
	absorb.Absorb256(lanes, buf[:])
}

func tail512(lanes *[consts.Lanes512][4]uint32, rest []byte) {
	if len(rest) == 0 {
		return
	}
	var buf [consts.Block512]byte
	copy(buf[:], rest)
	absorb.Absorb512(lanes, buf[:])
}
