//go:build amd64 && !purego

package absorb_vaes256

import (
	"github.com/zeebo/meow/internal/consts"
)

// Absorb runs every full block of input through all 16 lanes. The caller
// must ensure the CPU supports AVX2 and VAES.
func Absorb(lanes *[consts.Lanes256][4]uint32, input []byte) {
	blocks := len(input) / consts.Block256
	if blocks == 0 {
		return
	}
	absorbVAES256(lanes, &input[0], uint64(blocks))
}
