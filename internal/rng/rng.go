// Package rng provides unbiased bounded random integers over a pluggable source.
package rng

import (
	"log/slog"
	"sync"
)

// Rand draws bounded integers from a Source using rejection sampling.
type Rand struct {
	src    Source
	logger *slog.Logger

	warnOnce sync.Once
}

// New creates a Rand over src. A nil logger discards warnings.
func New(src Source, logger *slog.Logger) *Rand {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Rand{src: src, logger: logger}
}

// Uint32 returns a raw value. A failing source yields 0 so that callers
// keep progressing.
func (r *Rand) Uint32() uint32 {
	v, err := r.src.Uint32()
	if err != nil {
		r.warnOnce.Do(func() {
			r.logger.Warn("random source unavailable, falling back to 0", "error", err)
		})
		return 0
	}
	return v
}

// Uniform returns a value in [0, max) without modulo bias. Raw values at or
// above floor(2^32/max)*max are discarded. Returns 0 when max <= 1.
func (r *Rand) Uniform(max uint32) uint32 {
	if max <= 1 {
		return 0
	}
	limit := (uint64(1) << 32) / uint64(max) * uint64(max)
	for {
		v := r.Uint32()
		if uint64(v) < limit {
			return v % max
		}
	}
}

// UniformInclusive returns a value in [min, max]. Returns min when max <= min.
func (r *Rand) UniformInclusive(min, max uint32) uint32 {
	if max <= min {
		return min
	}
	return min + r.Uniform(max-min+1)
}
