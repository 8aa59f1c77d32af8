package gateway

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

const (
	ForceSuccess = "success"
	ForceFailed  = "failed"

	DefaultSuccessRate     = 70
	DefaultProcessingDelay = 500 * time.Millisecond
)

// Input carries the caller-provided simulator controls. With TestMode set the
// outcome is forced instead of drawn.
type Input struct {
	TestMode    bool   `json:"test_mode"`
	ForceResult string `json:"force_result"`
}

type Result struct {
	Success bool
}

// Simulator stands in for a real payment processor. Randomness is injected so
// settlement outcomes are replayable: production wiring seeds a fresh source,
// tests pass a seeded one.
type Simulator struct {
	mu          sync.Mutex
	rng         *rand.Rand
	successRate int
	delay       time.Duration
}

func NewSimulator(rng *rand.Rand, successRate int, delay time.Duration) *Simulator {
	return &Simulator{
		rng:         rng,
		successRate: successRate,
		delay:       delay,
	}
}

// Charge resolves a single settlement attempt to exactly one terminal
// outcome. The synthetic processing delay is bounded and context-aware.
func (s *Simulator) Charge(ctx context.Context, in Input) (Result, error) {
	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		case <-timer.C:
		}
	}

	if in.TestMode && in.ForceResult != "" {
		return Result{Success: in.ForceResult == ForceSuccess}, nil
	}

	return Result{Success: s.draw() <= s.successRate}, nil
}

func (s *Simulator) draw() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(100) + 1
}
