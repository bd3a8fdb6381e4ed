package scraper

import (
	"testing"
	"time"

	coreerrors "github.com/Christoph9211/video-recommender/core/errors"
)

func TestDelay_ExponentialValues(t *testing.T) {
	cfg := FetchConfig{
		Strategy:        BackoffExponential,
		BaseDelay:       1 * time.Second,
		DelayMultiplier: 2.0,
		MaxDelay:        10 * time.Second,
	}

	expected := []time.Duration{
		1 * time.Second,
		2 * time.Second,
		4 * time.Second,
		8 * time.Second,
		10 * time.Second, // capped
		10 * time.Second,
	}

	for i, want := range expected {
		attempt := i + 1
		got, err := cfg.Delay(attempt)
		if err != nil {
			t.Fatalf("Delay(%d) returned error: %v", attempt, err)
		}
		if got != want {
			t.Errorf("Delay(%d) = %v, want %v", attempt, got, want)
		}
	}
}

func TestDelay_LinearValues(t *testing.T) {
	cfg := FetchConfig{
		Strategy:        BackoffLinear,
		BaseDelay:       1 * time.Second,
		DelayMultiplier: 2.0,
		MaxDelay:        4 * time.Second,
	}

	expected := []time.Duration{
		1 * time.Second,
		2 * time.Second,
		3 * time.Second,
		4 * time.Second,
		4 * time.Second, // capped
	}

	for i, want := range expected {
		attempt := i + 1
		got, err := cfg.Delay(attempt)
		if err != nil {
			t.Fatalf("Delay(%d) returned error: %v", attempt, err)
		}
		if got != want {
			t.Errorf("Delay(%d) = %v, want %v", attempt, got, want)
		}
	}
}

func TestDelay_NonNegativeAndCapped(t *testing.T) {
	for _, strategy := range []BackoffStrategy{BackoffExponential, BackoffLinear} {
		cfg := FetchConfig{
			Strategy:        strategy,
			BaseDelay:       500 * time.Millisecond,
			DelayMultiplier: 3.0,
			MaxDelay:        7 * time.Second,
		}

		for attempt := 1; attempt <= 30; attempt++ {
			got, err := cfg.Delay(attempt)
			if err != nil {
				t.Fatalf("%s: Delay(%d) returned error: %v", strategy, attempt, err)
			}
			if got < 0 {
				t.Errorf("%s: Delay(%d) = %v, want non-negative", strategy, attempt, got)
			}
			if got > cfg.MaxDelay {
				t.Errorf("%s: Delay(%d) = %v, exceeds cap %v", strategy, attempt, got, cfg.MaxDelay)
			}
		}
	}
}

func TestDelay_ExponentialNonDecreasing(t *testing.T) {
	cfg := FetchConfig{
		Strategy:        BackoffExponential,
		BaseDelay:       250 * time.Millisecond,
		DelayMultiplier: 1.7,
		MaxDelay:        20 * time.Second,
	}

	previous := time.Duration(-1)
	for attempt := 1; attempt <= 25; attempt++ {
		got, err := cfg.Delay(attempt)
		if err != nil {
			t.Fatalf("Delay(%d) returned error: %v", attempt, err)
		}
		if got < previous {
			t.Errorf("Delay(%d) = %v, decreased from %v", attempt, got, previous)
		}
		previous = got
	}
}

func TestDelay_InvalidAttempt(t *testing.T) {
	cfg := DefaultFetchConfig()

	for _, attempt := range []int{0, -1, -100} {
		_, err := cfg.Delay(attempt)
		if err == nil {
			t.Errorf("Delay(%d) should return an error", attempt)
			continue
		}
		if !coreerrors.IsValidation(err) {
			t.Errorf("Delay(%d) error = %v, want a ValidationError", attempt, err)
		}
	}
}
