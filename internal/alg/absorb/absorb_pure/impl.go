package absorb_pure

import (
	"github.com/zeebo/meow/internal/alg/round/round_pure"
	"github.com/zeebo/meow/internal/consts"
	"github.com/zeebo/meow/internal/utils"
)

// Absorb runs every full block of input through one group of eight lanes.
// Group g reads bytes [128g, 128g+128) of each half of a blockLen sized
// block, so lane i of the group sees chunk 8g+i and then chunk S+8g+i.
// Trailing bytes short of a full block are ignored.
func Absorb(lanes *[8][4]uint32, input []byte, group, blockLen int) {
	half := blockLen / 2
	off := group * consts.GroupLen

	for ; len(input) >= blockLen; input = input[blockLen:] {
		lo := input[off : off+consts.GroupLen]
		hi := input[half+off : half+off+consts.GroupLen]

		for i := range lanes {
			k := utils.LoadWords(lo[consts.ChunkLen*i:])
			round_pure.Dec(&lanes[i], &k)
		}
		for i := range lanes {
			k := utils.LoadWords(hi[consts.ChunkLen*i:])
			round_pure.Dec(&lanes[i], &k)
		}
	}
}
