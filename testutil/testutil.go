package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Bits returns n pseudo-random bits. Element i is bit index i.
func (r *RNG) Bits(n int) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]bool, n)
	for i := range out {
		out[i] = r.rand.Intn(2) == 1
	}
	return out
}

// BitString returns a pseudo-random string of n '0'/'1' characters.
func (r *RNG) BitString(n int) string {
	return FormatBits(r.Bits(n))
}

// Lengths returns num pseudo-random lengths in [0, maxLen], always including the
// byte-boundary edge cases 0, 1, 7, 8 and 9 when maxLen allows.
func (r *RNG) Lengths(num, maxLen int) []int {
	out := make([]int, 0, num+5)
	for _, n := range []int{0, 1, 7, 8, 9} {
		if n <= maxLen {
			out = append(out, n)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for range num {
		out = append(out, r.rand.Intn(maxLen+1))
	}
	return out
}

// FormatBits renders bits most significant first, so bits[len-1] is the first character.
func FormatBits(bits []bool) string {
	buf := make([]byte, len(bits))
	for i, b := range bits {
		c := byte('0')
		if b {
			c = '1'
		}
		buf[len(bits)-1-i] = c
	}
	return string(buf)
}
