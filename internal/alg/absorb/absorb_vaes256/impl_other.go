//go:build !amd64 || purego
// +build !amd64 purego

package absorb_vaes256

import (
	"github.com/zeebo/meow/internal/alg/absorb/absorb_pure"
	"github.com/zeebo/meow/internal/consts"
)

func Absorb(lanes *[consts.Lanes256][4]uint32, input []byte) {
	for g := 0; g < consts.Lanes256/consts.GroupLanes; g++ {
		group := (*[consts.GroupLanes][4]uint32)(lanes[consts.GroupLanes*g:])
		absorb_pure.Absorb(group, input, g, consts.Block256)
	}
}
