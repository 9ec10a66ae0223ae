package place

import "math/rand"

// === RunKey ===

// RunKey uniquely identifies a reproducible annealing run.
// Two runs with the same RunKey and identical inputs and schedule MUST
// produce bit-for-bit identical results.
type RunKey int64

// NewRunKey creates a RunKey from a seed value.
func NewRunKey(seed int64) RunKey {
	return RunKey(seed)
}

// NewRNG returns the single pseudo-random generator for a run.
//
// Every stochastic decision of the run (move selection, candidate
// coordinates, swap pairing, and Metropolis coin flips) draws from this one
// stream, in a fixed order. No other randomness source (wall clock, global
// rand) may influence a run.
//
// Thread-safety: NOT thread-safe. A run owns its generator and runs on a
// single goroutine; concurrent runs each call NewRNG on their own key.
func (k RunKey) NewRNG() *rand.Rand {
	return rand.New(rand.NewSource(int64(k)))
}
