// Package randrange draws pseudo-random integers from closed ranges.
//
// Both bounds are inclusive: Between(1, 100) yields values in [1, 100].
package randrange

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// ErrInvalidRange is returned when the lower bound exceeds the upper bound.
var ErrInvalidRange = errors.New("invalid range")

// Randomizer owns its generator; nothing here touches the math/rand globals.
type Randomizer struct {
	rnd *rand.Rand
}

// New returns a Randomizer seeded with seed. The same seed always produces
// the same sequence.
func New(seed int64) *Randomizer {
	return &Randomizer{
		rnd: rand.New(rand.NewSource(seed)),
	}
}

// NewFromTime initializes a Randomizer seeded from the wall clock.
func NewFromTime() *Randomizer {
	return New(time.Now().UnixNano())
}

// Between returns a pseudo-random int in [lo, hi].
func (r *Randomizer) Between(lo, hi int) (int, error) {
	if lo > hi {
		return 0, fmt.Errorf("%w: lower bound %d is greater than upper bound %d", ErrInvalidRange, lo, hi)
	}
	// Width in uint arithmetic is exact for any int size; only the full
	// 64-bit range wraps span to 0.
	span := uint64(uint(hi)-uint(lo)) + 1
	switch {
	case span == 0:
		// [math.MinInt64, math.MaxInt64]
		return int(r.rnd.Uint64()), nil
	case span <= math.MaxInt64:
		return lo + int(r.rnd.Int63n(int64(span))), nil
	}
	for {
		if v := r.rnd.Uint64(); v < span {
			return lo + int(v), nil
		}
	}
}

// In draws from rg.
func (r *Randomizer) In(rg Range) (int, error) {
	return r.Between(rg.Lower, rg.Upper)
}
