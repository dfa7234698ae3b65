// Package kernel contains the width specialized meow kernels. Every kernel
// keeps its sub-lanes in a fixed array on the stack, feeds whole blocks
// straight from the caller's slice and copies only the final partial block.
package kernel

import (
	"github.com/zeebo/meow/internal/alg/absorb"
	"github.com/zeebo/meow/internal/alg/round/round_pure"
	"github.com/zeebo/meow/internal/consts"
	"github.com/zeebo/meow/internal/utils"
)

func initLanes(lanes [][4]uint32, seed *[4]uint32) {
	for i := range lanes {
		lanes[i] = *seed
		lanes[i][0] ^= uint32(i)
	}
}

// finalize mixes the length into every lane, folds the upper half of the
// lanes into the lower half until one is left, and runs the closing rounds.
func finalize(lanes [][4]uint32, seed *[4]uint32, length uint64) [4]uint32 {
	var l [4]uint32
	l[0], l[1] = utils.Uint64ToWords(length)
	for i := range lanes {
		round_pure.Dec(&lanes[i], &l)
	}

	for n := len(lanes); n > 1; n /= 2 {
		for i := 0; i < n/2; i++ {
			round_pure.Dec(&lanes[i], &lanes[i+n/2])
		}
	}

	x := lanes[0]
	round_pure.Dec(&x, seed)
	for i := range consts.Finalize {
		round_pure.Dec(&x, &consts.Finalize[i])
	}
	return x
}

// Hash128 runs 8 lanes, one per 128 bit register, over 256 byte blocks.
func Hash128(seed *[4]uint32, input []byte) [4]uint32 {
	var lanes [consts.Lanes128][4]uint32
	initLanes(lanes[:], seed)

	full := len(input) - len(input)%consts.Block128
	absorb.Absorb128(&lanes, input[:full])
	tail128(&lanes, input[full:])

	return finalize(lanes[:], seed, uint64(len(input)))
}

// Hash256 runs 16 lanes over 512 byte blocks, two per 256 bit register on
// VAES hardware and as two groups of eight otherwise.
func Hash256(seed *[4]uint32, input []byte) [4]uint32 {
	var lanes [consts.Lanes256][4]uint32
	initLanes(lanes[:], seed)

	full := len(input) - len(input)%consts.Block256
	absorb.Absorb256(&lanes, input[:full])
	tail256(&lanes, input[full:])

	return finalize(lanes[:], seed, uint64(len(input)))
}

// Hash512 runs 32 lanes over 1024 byte blocks, four per 512 bit register on
// AVX-512 VAES hardware and as four groups of eight otherwise.
func Hash512(seed *[4]uint32, input []byte) [4]uint32 {
	var lanes [consts.Lanes512][4]uint32
	initLanes(lanes[:], seed)

	full := len(input) - len(input)%consts.Block512
	absorb.Absorb512(&lanes, input[:full])
	tail512(&lanes, input[full:])

	return finalize(lanes[:], seed, uint64(len(input)))
}
