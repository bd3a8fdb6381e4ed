// ABOUTME: FetchConfig describes the retry, backoff and identity-rotation policy
// ABOUTME: Validated eagerly at service construction; immutable afterwards

package scraper

import (
	"fmt"
	"time"

	coreerrors "github.com/Christoph9211/video-recommender/core/errors"
)

// BackoffStrategy selects how inter-attempt delays grow.
type BackoffStrategy string

const (
	// BackoffExponential grows the delay by DelayMultiplier per attempt
	BackoffExponential BackoffStrategy = "exponential"

	// BackoffLinear grows the delay by BaseDelay per attempt
	BackoffLinear BackoffStrategy = "linear"
)

// FetchConfig holds the retry policy for site fetches. A config is
// validated once when the scraper service is constructed and is not
// mutated afterwards.
type FetchConfig struct {
	// MaxAttempts is the total number of fetch attempts per site (>= 1)
	MaxAttempts int

	// Strategy selects the backoff curve between attempts
	Strategy BackoffStrategy

	// BaseDelay is the backoff starting point
	BaseDelay time.Duration

	// DelayMultiplier scales the exponential backoff curve (> 0)
	DelayMultiplier float64

	// MaxDelay caps the computed backoff delay (>= BaseDelay)
	MaxDelay time.Duration

	// AttemptTimeout is the deadline applied to each individual attempt
	AttemptTimeout time.Duration

	// RotateIdentities enables cycling through IdentityPool on retries
	RotateIdentities bool

	// DefaultIdentity is the identity used when rotation is disabled and
	// for the first attempt when it is enabled. Empty lets the transport
	// choose.
	DefaultIdentity string

	// IdentityPool is the ordered set of identities cycled through on
	// retries. Must be non-empty when RotateIdentities is set.
	IdentityPool []string
}

// DefaultFetchConfig returns the documented default retry policy.
func DefaultFetchConfig() FetchConfig {
	return FetchConfig{
		MaxAttempts:      3,
		Strategy:         BackoffExponential,
		BaseDelay:        1 * time.Second,
		DelayMultiplier:  2.0,
		MaxDelay:         10 * time.Second,
		AttemptTimeout:   20 * time.Second,
		RotateIdentities: true,
		DefaultIdentity:  "Mozilla/5.0 (compatible; VideoRecommender/1.0)",
		IdentityPool: []string{
			"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
			"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
			"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
		},
	}
}

// Validate checks the config for structural errors. It is called by
// NewService; a failing config never reaches the retry loop.
func (c FetchConfig) Validate() error {
	if c.MaxAttempts < 1 {
		return &coreerrors.ConfigurationError{
			Field:   "MaxAttempts",
			Message: fmt.Sprintf("must be at least 1, got %d", c.MaxAttempts),
		}
	}

	if c.Strategy != BackoffExponential && c.Strategy != BackoffLinear {
		return &coreerrors.ConfigurationError{
			Field:   "Strategy",
			Message: fmt.Sprintf("must be %q or %q, got %q", BackoffExponential, BackoffLinear, c.Strategy),
		}
	}

	if c.BaseDelay < 0 {
		return &coreerrors.ConfigurationError{
			Field:   "BaseDelay",
			Message: "cannot be negative",
		}
	}

	if c.DelayMultiplier <= 0 {
		return &coreerrors.ConfigurationError{
			Field:   "DelayMultiplier",
			Message: fmt.Sprintf("must be greater than zero, got %g", c.DelayMultiplier),
		}
	}

	if c.MaxDelay < c.BaseDelay {
		return &coreerrors.ConfigurationError{
			Field:   "MaxDelay",
			Message: "cannot be smaller than BaseDelay",
		}
	}

	if c.AttemptTimeout <= 0 {
		return &coreerrors.ConfigurationError{
			Field:   "AttemptTimeout",
			Message: "must be greater than zero",
		}
	}

	if c.RotateIdentities && len(c.IdentityPool) == 0 {
		return &coreerrors.ConfigurationError{
			Field:   "IdentityPool",
			Message: "cannot be empty when identity rotation is enabled",
		}
	}

	return nil
}
