// ABOUTME: Site fetch orchestrator drives the retry loop for a single site and query
// ABOUTME: Absorbs every fetch failure; its callers always receive a well-formed SiteResult

package scraper

import (
	"context"
	"time"

	"github.com/Christoph9211/video-recommender/core/domain"
	coreerrors "github.com/Christoph9211/video-recommender/core/errors"
	"github.com/Christoph9211/video-recommender/core/interfaces"
)

// outcomeKind classifies a single fetch attempt.
type outcomeKind int

const (
	outcomeSuccess outcomeKind = iota
	outcomeEmpty
	outcomeFailure
)

// attemptOutcome is produced once per attempt and never mutated. An
// empty listing without a transport error is deliberately kept distinct
// from a failure: bot-detecting sites return HTTP success with a
// placeholder page, and a purely error-driven retry would miss that
// class entirely. Both kinds trigger a retry.
type attemptOutcome struct {
	kind    outcomeKind
	records []domain.Record
	err     error
}

// siteOrchestrator executes up to MaxAttempts fetches of one logical
// (site, query) pair, applying backoff and identity rotation between
// attempts. It is constructed fresh per fetch, so the rotator state it
// owns is never shared across goroutines.
type siteOrchestrator struct {
	cfg     FetchConfig
	fetcher interfaces.PageFetcher
	logger  interfaces.Logger
	sleep   func(ctx context.Context, d time.Duration) error
}

// fetchSite runs the retry loop and returns the normalized rows.
// Failures never escape: exhausted retries and cancellation both yield
// an empty SiteResult. Only configuration errors are surfaced to the
// caller, and those are raised at service construction, not here.
func (o *siteOrchestrator) fetchSite(ctx context.Context, site, query string, maxResults int) domain.SiteResult {
	rotator := newIdentityRotator(o.cfg)

	// The first attempt goes out with the primary identity; the pool is
	// only cycled on retries, when the primary has already failed once.
	identity := o.cfg.DefaultIdentity

	for attempt := 1; attempt <= o.cfg.MaxAttempts; attempt++ {
		if ctx.Err() != nil {
			o.logger.Warn("Fetch aborted by caller", map[string]interface{}{
				"site":    site,
				"attempt": attempt,
			})
			return domain.SiteResult{}
		}

		o.logger.Debug("Fetch attempt", map[string]interface{}{
			"site":     site,
			"attempt":  attempt,
			"of":       o.cfg.MaxAttempts,
			"identity": identity,
		})

		outcome := o.attempt(ctx, site, query, maxResults, identity, attempt)

		switch outcome.kind {
		case outcomeSuccess:
			o.logger.Info("Fetched listing", map[string]interface{}{
				"site":    site,
				"rows":    len(outcome.records),
				"attempt": attempt,
			})
			return NormalizeRecords(outcome.records, site)

		case outcomeEmpty:
			o.logger.Warn("Attempt returned no rows", map[string]interface{}{
				"site":    site,
				"attempt": attempt,
			})

		case outcomeFailure:
			o.logger.Warn("Attempt failed", map[string]interface{}{
				"site":    site,
				"attempt": attempt,
				"error":   outcome.err.Error(),
			})
		}

		if attempt == o.cfg.MaxAttempts {
			break
		}

		delay, err := o.cfg.Delay(attempt)
		if err != nil {
			// Unreachable with a 1-indexed loop; treated as exhaustion.
			break
		}

		o.logger.Debug("Backing off before retry", map[string]interface{}{
			"site":  site,
			"delay": delay.String(),
		})

		if err := o.sleep(ctx, delay); err != nil {
			o.logger.Warn("Fetch aborted during backoff", map[string]interface{}{
				"site":    site,
				"attempt": attempt,
			})
			return domain.SiteResult{}
		}

		if o.cfg.RotateIdentities {
			identity = rotator.next()
		}
	}

	o.logger.Error("Retry attempts exhausted", map[string]interface{}{
		"site":     site,
		"query":    query,
		"attempts": o.cfg.MaxAttempts,
	})

	return domain.SiteResult{}
}

// attempt performs a single fetch with the per-attempt timeout and
// classifies its outcome. Failures carry the site and attempt number so
// log lines and wrapped causes stay attributable.
func (o *siteOrchestrator) attempt(ctx context.Context, site, query string, maxResults int, identity string, attempt int) attemptOutcome {
	attemptCtx, cancel := context.WithTimeout(ctx, o.cfg.AttemptTimeout)
	defer cancel()

	records, err := o.fetcher.FetchListing(attemptCtx, interfaces.FetchRequest{
		Site:       site,
		Query:      query,
		MaxResults: maxResults,
		Identity:   identity,
		Timeout:    o.cfg.AttemptTimeout,
	})

	if err != nil {
		return attemptOutcome{
			kind: outcomeFailure,
			err:  &coreerrors.FetchError{Site: site, Attempt: attempt, Cause: err},
		}
	}

	if len(records) == 0 {
		return attemptOutcome{kind: outcomeEmpty}
	}

	return attemptOutcome{kind: outcomeSuccess, records: records}
}

// sleepWithContext waits for the given duration unless the context is
// cancelled first.
func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
