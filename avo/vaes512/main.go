//go:generate go run . -out ../../internal/alg/absorb/absorb_vaes512/impl_amd64.s -stubs ../../internal/alg/absorb/absorb_vaes512/stub_amd64.go -pkg absorb_vaes512

package main

import (
	. "github.com/mmcloughlin/avo/build"
	. "github.com/mmcloughlin/avo/operand"
	. "github.com/mmcloughlin/avo/reg"
)

const (
	lanes    = 32
	perVec   = 4
	vecLen   = 16 * perVec
	halfLen  = 16 * lanes
	blockLen = 2 * halfLen
)

func main() {
	ConstraintExpr("amd64 && !purego")
	Absorb()
	Generate()
}

// Absorb emits absorbVAES512. The lanes are contiguous, so vector j holds
// lanes perVec*j through perVec*j+perVec-1 and its key is the matching
// vecLen bytes of each half of the block.
func Absorb() {
	TEXT("absorbVAES512", NOSPLIT, `func(
		lanes *[32][4]uint32,
		p *byte,
		blocks uint64,
	)`)
	Doc(
		"absorbVAES512 runs blocks blocks through 32 lanes, 4 per vector, with",
		"VAESDEC. Each block is read at p and p advances one block per iteration.",
	)
	Pragma("noescape")

	var (
		dst    = Mem{Base: Load(Param("lanes"), GP64())}
		p      = Load(Param("p"), GP64())
		blocks = Load(Param("blocks"), GP64())
	)

	state := make([]VecVirtual, lanes/perVec)
	for i := range state {
		state[i] = ZMM()
		VMOVDQU64(dst.Offset(vecLen*i), state[i])
	}

	TESTQ(blocks, blocks)
	JZ(LabelRef("done"))

	Label("loop")
	Comment("first half")
	decRound(state, Mem{Base: p})
	Comment("second half")
	decRound(state, Mem{Base: p, Disp: halfLen})
	ADDQ(U32(blockLen), p)
	DECQ(blocks)
	JNZ(LabelRef("loop"))

	Label("done")
	for i := range state {
		VMOVDQU64(state[i], dst.Offset(vecLen*i))
	}
	VZEROUPPER()
	RET()
}

func decRound(state []VecVirtual, src Mem) {
	keys := make([]VecVirtual, len(state))
	for i := range keys {
		keys[i] = ZMM()
		VMOVDQU64(src.Offset(vecLen*i), keys[i])
	}
	for i := range keys {
		VAESDEC(keys[i], state[i], state[i])
	}
}
