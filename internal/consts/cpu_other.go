//go:build !amd64
// +build !amd64

package consts

const (
	HasAES     = false
	HasVAES256 = false
	HasVAES512 = false
)
