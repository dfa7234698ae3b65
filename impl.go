package meow

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"sync"
	"unsafe"

	"github.com/zeebo/meow/internal/alg/kernel"
	"github.com/zeebo/meow/internal/consts"
	"github.com/zeebo/meow/internal/logging"
	"github.com/zeebo/meow/internal/probe"
	"github.com/zeebo/meow/internal/utils"
)

// ErrUnknownWidth is returned for a kernel width other than 128, 256 or 512.
var ErrUnknownWidth = errors.New("meow: unknown width")

// Width is the vector width in bits a kernel is specialized for.
type Width int

const (
	Width128 Width = 128
	Width256 Width = 256
	Width512 Width = 512
)

// ParseWidth parses "128", "256" or "512".
func ParseWidth(s string) (Width, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWidth, s)
	}
	w := Width(v)
	if !w.valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWidth, s)
	}
	return w, nil
}

func (w Width) valid() bool {
	return w == Width128 || w == Width256 || w == Width512
}

func (w Width) String() string { return strconv.Itoa(int(w)) + "-bit" }

// BlockSize returns the number of bytes the kernel consumes per block.
func (w Width) BlockSize() int {
	switch w {
	case Width256:
		return consts.Block256
	case Width512:
		return consts.Block512
	default:
		return consts.Block128
	}
}

// Impl is a chosen kernel. It is immutable and safe for concurrent use. The
// zero value uses the 128 bit kernel.
type Impl struct {
	width Width
}

// New returns the kernel for w without probing the CPU. Every width runs on
// every machine; the wider ones are only selected automatically when the CPU
// has wide AES units.
func New(w Width) (Impl, error) {
	if !w.valid() {
		return Impl{}, fmt.Errorf("%w: %d", ErrUnknownWidth, int(w))
	}
	return Impl{width: w}, nil
}

// Width returns the kernel width.
func (i Impl) Width() Width {
	if i.width == 0 {
		return Width128
	}
	return i.width
}

// Sum returns the digest of data under seed.
func (i Impl) Sum(seed Seed, data []byte) (d Digest) {
	var s, out [4]uint32
	utils.BytesToWords((*[16]byte)(&seed), &s)

	switch i.width {
	case Width256:
		out = kernel.Hash256(&s, data)
	case Width512:
		out = kernel.Hash512(&s, data)
	default:
		out = kernel.Hash128(&s, data)
	}

	utils.WordsToBytes(&out, (*[16]byte)(&d))
	return d
}

// SumPointer returns the digest of the n bytes starting at p.
//
// No validation is done. p must point to at least n readable bytes for the
// duration of the call; anything else is undefined behavior.
func (i Impl) SumPointer(seed Seed, p unsafe.Pointer, n int) Digest {
	if n == 0 {
		return i.Sum(seed, nil)
	}
	return i.Sum(seed, unsafe.Slice((*byte)(p), n))
}

// EnvWidth names the environment variable that caps automatic selection.
const EnvWidth = "MEOW_WIDTH"

type selectConfig struct {
	log      *slog.Logger
	maxWidth Width
}

// Option configures Select.
type Option func(*selectConfig)

// WithLogger sends probe diagnostics to log at debug level.
func WithLogger(log *slog.Logger) Option {
	return func(c *selectConfig) {
		if log != nil {
			c.log = log
		}
	}
}

// WithMaxWidth prevents Select from choosing a kernel wider than w.
func WithMaxWidth(w Width) Option {
	return func(c *selectConfig) { c.maxWidth = w }
}

// Select probes the CPU and returns the widest kernel that runs correctly,
// never wider than the MEOW_WIDTH environment variable or WithMaxWidth
// allow. The 128 bit kernel is always available.
func Select(opts ...Option) Impl {
	cfg := selectConfig{
		log:      logging.Discard(),
		maxWidth: Width512,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if env := os.Getenv(EnvWidth); env != "" {
		if w, err := ParseWidth(env); err != nil {
			cfg.log.Warn("ignoring environment", "name", EnvWidth, "error", err)
		} else if w < cfg.maxWidth {
			cfg.maxWidth = w
		}
	}

	widths := []Width{Width512, Width256, Width128}
	gates := []bool{consts.HasVAES512, consts.HasVAES256, true}

	var candidates []probe.Candidate
	for idx, w := range widths {
		impl := Impl{width: w}
		candidates = append(candidates, probe.Candidate{
			Name: w.String(),
			Gate: gates[idx] && w <= cfg.maxWidth,
			Run: func(buf []byte) []byte {
				d := impl.Sum(Seed{}, buf)
				return d[:]
			},
		})
	}

	chosen := probe.Select(cfg.log, candidates, len(candidates)-1)
	return Impl{width: widths[chosen]}
}

var (
	activeOnce sync.Once
	active     Impl
)

// SelectImplementation probes the CPU once per process and pins the result
// as the active implementation. Later calls return the pinned width. If
// Active or Sum ran first, the width they pinned is returned instead.
func SelectImplementation() Width {
	activeOnce.Do(func() { active = Select() })
	return active.Width()
}

// Active returns the process wide implementation. If SelectImplementation
// has not run yet, the 128 bit kernel is pinned.
func Active() Impl {
	activeOnce.Do(func() { active = Impl{width: Width128} })
	return active
}
