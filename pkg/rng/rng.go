// Package rng is the single source of randomness for outcome logic.
//
// Two implementations exist: Crypto, backed by crypto/rand, for anything
// that adjudicates money (gambling, crime rolls, theft), and Seeded, backed
// by math/rand, for flavor-only picks and deterministic tests.
package rng

import (
	"crypto/rand"
	"math/big"
	mathrand "math/rand"
	"sync"
)

// RNG is the injectable random source used by all outcome logic.
type RNG interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// Intn returns a uniform value in [0, n). Panics if n <= 0.
	Intn(n int) int
	// Int63n returns a uniform value in [0, n). Panics if n <= 0.
	Int63n(n int64) int64
}

// Between returns a uniform value in [min, max]. If max <= min it returns min.
func Between(r RNG, min, max int64) int64 {
	if max <= min {
		return min
	}
	return min + r.Int63n(max-min+1)
}

// Chance performs a Bernoulli trial with probability p.
func Chance(r RNG, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.Float64() < p
}

const float64Bits = 53

// Crypto draws from crypto/rand. Safe for concurrent use.
type Crypto struct{}

func NewCrypto() Crypto { return Crypto{} }

func (Crypto) Int63n(n int64) int64 {
	if n <= 0 {
		panic("rng: Int63n with non-positive bound")
	}
	v, err := rand.Int(rand.Reader, big.NewInt(n))
	if err != nil {
		// crypto/rand.Reader failing means the platform entropy source is
		// broken; there is no safe fallback for monetary outcomes.
		panic("rng: crypto source unavailable: " + err.Error())
	}
	return v.Int64()
}

func (c Crypto) Intn(n int) int {
	return int(c.Int63n(int64(n)))
}

func (c Crypto) Float64() float64 {
	return float64(c.Int63n(1<<float64Bits)) / (1 << float64Bits)
}

// Seeded wraps math/rand behind a mutex so a single seeded stream can be
// shared across goroutines in tests.
type Seeded struct {
	mu sync.Mutex
	r  *mathrand.Rand
}

func NewSeeded(seed int64) *Seeded {
	return &Seeded{r: mathrand.New(mathrand.NewSource(seed))}
}

func (s *Seeded) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

func (s *Seeded) Intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Intn(n)
}

func (s *Seeded) Int63n(n int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Int63n(n)
}
