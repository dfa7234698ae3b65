package absorb

import (
	"github.com/zeebo/meow/internal/alg/absorb/absorb_aesni"
	"github.com/zeebo/meow/internal/alg/absorb/absorb_pure"
	"github.com/zeebo/meow/internal/alg/absorb/absorb_vaes256"
	"github.com/zeebo/meow/internal/alg/absorb/absorb_vaes512"
	"github.com/zeebo/meow/internal/consts"
)

// Absorb mixes every full block of input into one lane group, using AES-NI
// when the CPU has it.
func Absorb(lanes *[consts.GroupLanes][4]uint32, input []byte, group, blockLen int) {
	if consts.HasAES {
		absorb_aesni.Absorb(lanes, input, group, blockLen)
	} else {
		absorb_pure.Absorb(lanes, input, group, blockLen)
	}
}

func absorbGroups(lanes [][4]uint32, input []byte, blockLen int) {
	for g := 0; g < len(lanes)/consts.GroupLanes; g++ {
		Absorb((*[consts.GroupLanes][4]uint32)(lanes[consts.GroupLanes*g:]), input, g, blockLen)
	}
}

// Absorb128 mixes every full 256 byte block of input into 8 lanes.
func Absorb128(lanes *[consts.Lanes128][4]uint32, input []byte) {
	Absorb(lanes, input, 0, consts.Block128)
}

// Absorb256 mixes every full 512 byte block of input into 16 lanes, two per
// 256 bit register when the CPU has VAES.
func Absorb256(lanes *[consts.Lanes256][4]uint32, input []byte) {
	if consts.HasVAES256 {
		absorb_vaes256.Absorb(lanes, input)
	} else {
		absorbGroups(lanes[:], input, consts.Block256)
	}
}

// Absorb512 mixes every full 1024 byte block of input into 32 lanes, four
// per 512 bit register when the CPU has AVX-512 and VAES.
func Absorb512(lanes *[consts.Lanes512][4]uint32, input []byte) {
	if consts.HasVAES512 {
		absorb_vaes512.Absorb(lanes, input)
	} else {
		absorbGroups(lanes[:], input, consts.Block512)
	}
}
