//go:build amd64 && !purego

package absorb_vaes512

import (
	"github.com/zeebo/meow/internal/consts"
)

// Absorb runs every full block of input through all 32 lanes. The caller
// must ensure the CPU supports AVX-512F and VAES.
func Absorb(lanes *[consts.Lanes512][4]uint32, input []byte) {
	blocks := len(input) / consts.Block512
	if blocks == 0 {
		return
	}
	absorbVAES512(lanes, &input[0], uint64(blocks))
}
