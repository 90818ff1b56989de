// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService wraps a seeded generator so that a whole run can be replayed
// from its seed.
type PRNGService struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNGService creates a generator. A seed of 0 takes the wall clock.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the effective seed.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn returns an int in [0, n). n <= 0 yields 0.
func (s *PRNGService) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.rng.Intn(n)
}

// Float64 returns a float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Between returns a float in [min, min+spread).
func (s *PRNGService) Between(min, spread float64) float64 {
	return min + s.rng.Float64()*spread
}

// Jitter returns a float in [base-variance, base+variance).
func (s *PRNGService) Jitter(base, variance float64) float64 {
	return base - variance + s.rng.Float64()*2*variance
}
