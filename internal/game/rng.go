package game

import (
	"math/rand"
	"time"
)

// Rand is the randomness seam for the reducer. Tests plug in a seeded
// source so shuffles and coin flips are reproducible.
type Rand interface {
	Intn(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// Clock returns the current time in unix milliseconds.
type Clock func() int64

func DefaultRand() Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func DefaultClock() int64 {
	return time.Now().UnixMilli()
}
