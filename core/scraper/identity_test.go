package scraper

import "testing"

func TestIdentityRotator_RoundRobin(t *testing.T) {
	cfg := FetchConfig{
		RotateIdentities: true,
		DefaultIdentity:  "primary",
		IdentityPool:     []string{"agent-a", "agent-b", "agent-c"},
	}

	rotator := newIdentityRotator(cfg)

	expected := []string{"agent-a", "agent-b", "agent-c", "agent-a", "agent-b", "agent-c", "agent-a"}
	for i, want := range expected {
		if got := rotator.next(); got != want {
			t.Errorf("next() call %d = %q, want %q", i+1, got, want)
		}
	}
}

func TestIdentityRotator_DisabledReturnsDefault(t *testing.T) {
	cfg := FetchConfig{
		RotateIdentities: false,
		DefaultIdentity:  "primary",
		IdentityPool:     []string{"agent-a", "agent-b"},
	}

	rotator := newIdentityRotator(cfg)

	for i := 0; i < 5; i++ {
		if got := rotator.next(); got != "primary" {
			t.Errorf("next() call %d = %q, want %q", i+1, got, "primary")
		}
	}
}

func TestIdentityRotator_DisabledEmptyDefault(t *testing.T) {
	rotator := newIdentityRotator(FetchConfig{})

	// Empty identity means the transport chooses its own.
	if got := rotator.next(); got != "" {
		t.Errorf("next() = %q, want empty string", got)
	}
}
