//go:build amd64 && !purego

package absorb_aesni

import (
	"github.com/zeebo/meow/internal/consts"
)

// Absorb has the semantics of absorb_pure.Absorb. The caller must ensure
// the CPU supports AES-NI.
func Absorb(lanes *[8][4]uint32, input []byte, group, blockLen int) {
	blocks := len(input) / blockLen
	if blocks == 0 {
		return
	}
	absorbAESNI(lanes, &input[group*consts.GroupLen], uint64(blocks), uint64(blockLen), uint64(blockLen/2))
}
