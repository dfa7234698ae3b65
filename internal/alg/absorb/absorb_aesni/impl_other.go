//go:build !amd64 || purego
// +build !amd64 purego

package absorb_aesni

import "github.com/zeebo/meow/internal/alg/absorb/absorb_pure"

func Absorb(lanes *[8][4]uint32, input []byte, group, blockLen int) {
	absorb_pure.Absorb(lanes, input, group, blockLen)
}
