// Package probe picks the widest kernel that runs correctly on this machine.
package probe

import (
	"bytes"
	"fmt"
	"log/slog"

	"github.com/zeebo/meow/internal/logging"
)

// bufLen is the size of the throwaway input each candidate hashes.
const bufLen = 64

// Candidate is one kernel offered to Select.
type Candidate struct {
	Name string

	// Gate reports whether the CPU has the features the kernel needs.
	// Candidates with a false gate are never run.
	Gate bool

	// Run hashes buf and returns the digest bytes.
	Run func(buf []byte) []byte
}

// Try calls fn and reports whether it returned without panicking. The panic
// value, if any, is returned as an error.
func Try(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("probe: panic: %v", r)
		}
	}()
	fn()
	return nil
}

// Select walks candidates in order, which callers arrange widest first, and
// returns the index of the first one whose gate is open, runs without
// panicking, and produces the same digest twice. If none qualify fallback is
// returned. A nil logger discards output.
func Select(log *slog.Logger, candidates []Candidate, fallback int) int {
	if log == nil {
		log = logging.Discard()
	}

	var buf [bufLen]byte
	for i := range buf {
		buf[i] = byte(i)
	}

	for i, c := range candidates {
		if !c.Gate {
			log.Debug("probe skipped", "kernel", c.Name, "reason", "cpu features")
			continue
		}

		var first, second []byte
		err := Try(func() {
			first = c.Run(buf[:])
			second = c.Run(buf[:])
		})
		if err != nil {
			log.Debug("probe failed", "kernel", c.Name, "error", err)
			continue
		}
		if !bytes.Equal(first, second) {
			log.Debug("probe failed", "kernel", c.Name, "reason", "nondeterministic")
			continue
		}

		log.Debug("probe selected", "kernel", c.Name)
		return i
	}

	log.Debug("probe fallback", "kernel", candidates[fallback].Name)
	return fallback
}
