// ABOUTME: Identity rotator cycles through the configured identity pool on retries
// ABOUTME: One rotator is owned by each orchestrator invocation, so no locking is needed

package scraper

// identityRotator hands out client identities for retry attempts. When
// rotation is enabled it walks the configured pool round-robin, wrapping
// around rather than exhausting. When disabled it always returns the
// fixed default identity (possibly empty, meaning the transport picks).
//
// A rotator is created fresh for every site fetch and never shared
// across goroutines; the cursor therefore needs no synchronization.
type identityRotator struct {
	enabled bool
	def     string
	pool    []string
	cursor  int
}

func newIdentityRotator(cfg FetchConfig) *identityRotator {
	return &identityRotator{
		enabled: cfg.RotateIdentities,
		def:     cfg.DefaultIdentity,
		pool:    cfg.IdentityPool,
	}
}

// next returns the identity for the next retry attempt.
func (r *identityRotator) next() string {
	if !r.enabled || len(r.pool) == 0 {
		return r.def
	}

	identity := r.pool[r.cursor]
	r.cursor = (r.cursor + 1) % len(r.pool)
	return identity
}
