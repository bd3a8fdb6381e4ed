// ABOUTME: Backoff calculator maps an attempt number to an inter-attempt delay
// ABOUTME: Pure and deterministic; the orchestrator performs the actual sleeping

package scraper

import (
	"fmt"
	"math"
	"time"

	coreerrors "github.com/Christoph9211/video-recommender/core/errors"
)

// Delay returns the backoff delay to apply after the given failed
// attempt, before the retry that follows it. Attempt numbers are
// 1-indexed; no delay is ever applied before the first attempt.
//
// An attempt <= 0 indicates a caller bug and is reported as an error
// rather than being clamped.
func (c FetchConfig) Delay(attempt int) (time.Duration, error) {
	if attempt <= 0 {
		return 0, &coreerrors.ValidationError{
			Field:   "attempt",
			Message: fmt.Sprintf("must be 1-indexed, got %d", attempt),
		}
	}

	base := c.BaseDelay.Seconds()

	var delay float64
	switch c.Strategy {
	case BackoffLinear:
		delay = base * float64(attempt)
	default:
		delay = base * math.Pow(c.DelayMultiplier, float64(attempt-1))
	}

	if capped := c.MaxDelay.Seconds(); delay > capped {
		delay = capped
	}

	return time.Duration(delay * float64(time.Second)), nil
}
