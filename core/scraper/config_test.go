package scraper

import (
	"testing"
	"time"

	coreerrors "github.com/Christoph9211/video-recommender/core/errors"
	"github.com/Christoph9211/video-recommender/core/interfaces"
)

func TestFetchConfig_DefaultsAreValid(t *testing.T) {
	if err := DefaultFetchConfig().Validate(); err != nil {
		t.Errorf("default config failed validation: %v", err)
	}
}

func TestFetchConfig_ValidateRejectsInvalidValues(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*FetchConfig)
	}{
		{"zero attempts", func(c *FetchConfig) { c.MaxAttempts = 0 }},
		{"negative attempts", func(c *FetchConfig) { c.MaxAttempts = -2 }},
		{"unknown strategy", func(c *FetchConfig) { c.Strategy = "fibonacci" }},
		{"negative base delay", func(c *FetchConfig) { c.BaseDelay = -1 * time.Second }},
		{"zero multiplier", func(c *FetchConfig) { c.DelayMultiplier = 0 }},
		{"negative multiplier", func(c *FetchConfig) { c.DelayMultiplier = -1.5 }},
		{"cap below base", func(c *FetchConfig) { c.BaseDelay = 5 * time.Second; c.MaxDelay = 1 * time.Second }},
		{"zero attempt timeout", func(c *FetchConfig) { c.AttemptTimeout = 0 }},
		{"rotation with empty pool", func(c *FetchConfig) { c.RotateIdentities = true; c.IdentityPool = nil }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFetchConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate should return an error")
			}
			if !coreerrors.IsConfiguration(err) {
				t.Errorf("Validate returned %T, want *ConfigurationError", err)
			}
		})
	}
}

func TestNewService_FailsBeforeAnyFetch(t *testing.T) {
	cfg := DefaultFetchConfig()
	cfg.MaxAttempts = 0

	fetcher := &mockFetcher{}
	_, err := NewService(cfg, interfaces.Dependencies{Fetcher: fetcher}, 2)

	if err == nil {
		t.Fatal("NewService should reject an invalid config")
	}
	if !coreerrors.IsConfiguration(err) {
		t.Errorf("NewService returned %T, want *ConfigurationError", err)
	}
	if fetcher.callCount() != 0 {
		t.Errorf("fetcher was called %d times before validation failed", fetcher.callCount())
	}
}

func TestNewService_RequiresFetcher(t *testing.T) {
	_, err := NewService(DefaultFetchConfig(), interfaces.Dependencies{}, 2)

	if err == nil {
		t.Error("NewService should reject a missing fetcher")
	}
}

func TestNewService_RotationDisabledAllowsEmptyPool(t *testing.T) {
	cfg := DefaultFetchConfig()
	cfg.RotateIdentities = false
	cfg.IdentityPool = nil

	if _, err := NewService(cfg, interfaces.Dependencies{Fetcher: &mockFetcher{}}, 2); err != nil {
		t.Errorf("NewService returned error: %v", err)
	}
}
