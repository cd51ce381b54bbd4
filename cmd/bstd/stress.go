package main

import (
	"log"
	"math"
	"math/rand"

	"github.com/Crossover-Compiler/Crossover-bstd-lib-sub000/decimal"
)

type stressCmd struct {
	Iterations int   `default:"100000" help:"Number of random additions."`
	Seed       int64 `default:"1" help:"Random seed."`
}

func randomNumber(rng *rand.Rand) decimal.Number {
	signed := rng.Intn(2) == 0

	return decimal.Number{
		Value:    uint64(rng.Int63n(10_000_000)),
		Scale:    uint64(rng.Intn(7)),
		Length:   uint8(rng.Intn(20)),
		Signed:   signed,
		Positive: !signed || rng.Intn(2) == 0,
	}
}

// stress adds random numbers and returns the number of results that differ
// from float64 addition by more than 1e-6.
func stress(rng *rand.Rand, iterations int) (failures int) {
	for i := 0; i < iterations; i++ {
		lhs := randomNumber(rng)
		rhs := randomNumber(rng)

		result := decimal.Add(lhs, rhs)

		want := lhs.Float64() + rhs.Float64()
		if math.Abs(result.Float64()-want) > 1e-6 ||
			result.Scale != max(lhs.Scale, rhs.Scale) ||
			result.Signed != rhs.Signed ||
			result.Length != rhs.Length {
			log.Printf("mismatch: %s + %s = %s, want %v", lhs, rhs, result, want)
			failures++
		}
	}

	return failures
}

func (c *stressCmd) Run() error {
	failures := stress(rand.New(rand.NewSource(c.Seed)), c.Iterations)
	if failures > 0 {
		return Error.New("%d of %d additions mismatched", failures, c.Iterations)
	}

	log.Printf("bstd: %d additions ok", c.Iterations)

	return nil
}
