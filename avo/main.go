//go:generate go run . -out ../internal/alg/absorb/absorb_aesni/impl_amd64.s -stubs ../internal/alg/absorb/absorb_aesni/stub_amd64.go -pkg absorb_aesni

package main

import (
	. "github.com/mmcloughlin/avo/build"
	. "github.com/mmcloughlin/avo/operand"
	. "github.com/mmcloughlin/avo/reg"
)

const (
	groupLanes = 8
	chunkLen   = 16
)

func main() {
	ConstraintExpr("amd64 && !purego")
	Absorb()
	Generate()
}

func Absorb() {
	TEXT("absorbAESNI", NOSPLIT, `func(
		lanes *[8][4]uint32,
		p *byte,
		blocks uint64,
		stride uint64,
		half uint64,
	)`)
	Doc(
		"absorbAESNI runs blocks blocks through eight lanes with AESDEC. The first",
		"pass of each block reads 128 bytes at p, the second at p+half, and p",
		"advances by stride after every block.",
	)
	Pragma("noescape")

	var (
		lanes  = Mem{Base: Load(Param("lanes"), GP64())}
		lo     = Load(Param("p"), GP64())
		blocks = Load(Param("blocks"), GP64())
		stride = Load(Param("stride"), GP64())
		hi     = Load(Param("half"), GP64())
	)
	ADDQ(lo, hi)

	state := make([]VecVirtual, groupLanes)
	for i := range state {
		state[i] = XMM()
		MOVOU(lanes.Offset(chunkLen*i), state[i])
	}

	TESTQ(blocks, blocks)
	JZ(LabelRef("done"))

	Label("loop")
	Comment("first half")
	decRound(state, Mem{Base: lo})
	Comment("second half")
	decRound(state, Mem{Base: hi})
	ADDQ(stride, lo)
	ADDQ(stride, hi)
	DECQ(blocks)
	JNZ(LabelRef("loop"))

	Label("done")
	for i := range state {
		MOVOU(state[i], lanes.Offset(chunkLen*i))
	}
	RET()
}

// decRound loads one chunk per lane from src and applies a single
// decryption round to each lane keyed by its chunk.
func decRound(state []VecVirtual, src Mem) {
	keys := make([]VecVirtual, len(state))
	for i := range keys {
		keys[i] = XMM()
		MOVOU(src.Offset(chunkLen*i), keys[i])
	}
	for i := range keys {
		AESDEC(keys[i], state[i])
	}
}
