package bench

import (
	"github.com/klauspost/cpuid/v2"
)

// CPUInfo describes the host processor.
type CPUInfo struct {
	Brand    string
	Cores    int
	Hz       int64
	Features []string
}

// CPU reports the processor brand, frequency and the features relevant to
// the meow kernels.
func CPU() CPUInfo {
	info := CPUInfo{
		Brand: cpuid.CPU.BrandName,
		Cores: cpuid.CPU.PhysicalCores,
		Hz:    cpuid.CPU.Hz,
	}
	if info.Hz <= 0 {
		info.Hz = cpuid.CPU.BoostFreq
	}

	for _, f := range []struct {
		name string
		id   cpuid.FeatureID
	}{
		{"aes", cpuid.AESNI},
		{"avx2", cpuid.AVX2},
		{"avx512f", cpuid.AVX512F},
		{"vaes", cpuid.VAES},
		{"neon", cpuid.ASIMD},
		{"arm-aes", cpuid.AESARM},
	} {
		if cpuid.CPU.Supports(f.id) {
			info.Features = append(info.Features, f.name)
		}
	}
	return info
}
