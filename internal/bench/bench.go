// Package bench measures hashing throughput across a ladder of input sizes,
// keeping the fastest run per size.
package bench

import (
	"context"
	"errors"
	"time"

	"github.com/zeebo/pcg"
)

// Options controls a benchmark run.
type Options struct {
	// MinTries is the least number of timed runs per size.
	MinTries int

	// Budget is how long a size keeps running after its last new best,
	// counted in time spent hashing.
	Budget time.Duration

	// MaxSize bounds the size ladder.
	MaxSize int64

	// Progress, if set, is called after each size completes.
	Progress func(Result)
}

// Result is the best observed run for one input size.
type Result struct {
	Size  int
	Best  time.Duration
	Tries int
}

// BytesPerNS returns the throughput of the best run.
func (r Result) BytesPerNS() float64 {
	if r.Best <= 0 {
		return 0
	}
	return float64(r.Size) / float64(r.Best.Nanoseconds())
}

// BytesPerCycle estimates throughput in bytes per clock cycle given the CPU
// frequency in Hz. It returns 0 when hz is unknown.
func (r Result) BytesPerCycle(hz int64) float64 {
	if hz <= 0 || r.Best <= 0 {
		return 0
	}
	cycles := r.Best.Seconds() * float64(hz)
	return float64(r.Size) / cycles
}

// Sizes returns 1, 7, 8, 15, 16, ... 1023, 1024 and then powers of two up
// to max.
func Sizes(max int64) []int {
	var sizes []int
	add := func(n int) bool {
		if int64(n) > max {
			return false
		}
		sizes = append(sizes, n)
		return true
	}

	if !add(1) {
		return sizes
	}
	for n := 8; n <= 1024; n *= 2 {
		if !add(n-1) || !add(n) {
			return sizes
		}
	}
	for n := 2048; ; n *= 2 {
		if !add(n) {
			return sizes
		}
	}
}

// Measure times hash on buf until at least minTries runs are done and
// budget worth of runs have passed without improving on the best.
func Measure(ctx context.Context, hash func([]byte), buf []byte, minTries int, budget time.Duration) (Result, error) {
	res := Result{Size: len(buf), Best: -1}

	var sinceBest time.Duration
	for res.Tries < minTries || sinceBest < budget {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		start := time.Now()
		hash(buf)
		took := time.Since(start)

		res.Tries++
		sinceBest += took
		if res.Best < 0 || took < res.Best {
			res.Best = took
			sinceBest = 0
		}
	}
	return res, nil
}

// Run measures hash at every size in the ladder.
func Run(ctx context.Context, hash func([]byte), opts Options) ([]Result, error) {
	if opts.MinTries < 1 {
		return nil, errors.New("bench: MinTries must be positive")
	}

	var results []Result
	for _, size := range Sizes(opts.MaxSize) {
		buf := make([]byte, size)
		fill(buf)

		res, err := Measure(ctx, hash, buf, opts.MinTries, opts.Budget)
		if err != nil {
			return results, err
		}
		results = append(results, res)
		if opts.Progress != nil {
			opts.Progress(res)
		}
	}
	return results, nil
}

func fill(buf []byte) {
	for i := range buf {
		buf[i] = byte(pcg.Uint32())
	}
}
