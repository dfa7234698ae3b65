package consts

import (
	"golang.org/x/sys/cpu"
)

var (
	HasAES = cpu.X86.HasAES

	// Note: x/sys/cpu only reports VAES alongside AVX-512 OS support, so the
	// 256 bit kernel is gated on the same condition as the 512 bit one.
	HasVAES256 = cpu.X86.HasAES && cpu.X86.HasAVX2 && cpu.X86.HasAVX512VAES
	HasVAES512 = cpu.X86.HasAES && cpu.X86.HasAVX512F && cpu.X86.HasAVX512VAES
)
