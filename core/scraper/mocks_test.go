package scraper

import (
	"context"
	"sync"
	"time"

	"github.com/Christoph9211/video-recommender/core/domain"
	"github.com/Christoph9211/video-recommender/core/interfaces"
)

// mockFetcher is a mock implementation of the PageFetcher interface
type mockFetcher struct {
	mu        sync.Mutex
	calls     []interfaces.FetchRequest
	fetchFunc func(ctx context.Context, req interfaces.FetchRequest) ([]domain.Record, error)
}

func (m *mockFetcher) FetchListing(ctx context.Context, req interfaces.FetchRequest) ([]domain.Record, error) {
	m.mu.Lock()
	m.calls = append(m.calls, req)
	m.mu.Unlock()

	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, req)
	}
	return nil, nil
}

func (m *mockFetcher) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func (m *mockFetcher) identities() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := make([]string, 0, len(m.calls))
	for _, call := range m.calls {
		ids = append(ids, call.Identity)
	}
	return ids
}

// logEntry captures a single structured log emission
type logEntry struct {
	level  string
	msg    string
	fields map[string]interface{}
}

// mockLogger is a mock implementation of the Logger interface that
// records every emission for assertions
type mockLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (m *mockLogger) log(level, msg string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, logEntry{level: level, msg: msg, fields: fields})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) { m.log("debug", msg, fields) }
func (m *mockLogger) Info(msg string, fields map[string]interface{})  { m.log("info", msg, fields) }
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  { m.log("warn", msg, fields) }
func (m *mockLogger) Error(msg string, fields map[string]interface{}) { m.log("error", msg, fields) }

func (m *mockLogger) countLevel(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, entry := range m.entries {
		if entry.level == level {
			count++
		}
	}
	return count
}

// testConfig returns a small valid config suitable for fast tests
func testConfig() FetchConfig {
	cfg := DefaultFetchConfig()
	cfg.BaseDelay = 0
	cfg.MaxDelay = 0
	return cfg
}

// newTestService builds a service with the given fetcher, a recording
// logger and an instant sleep that counts invocations
func newTestService(t interface{ Fatalf(string, ...interface{}) }, cfg FetchConfig, fetcher *mockFetcher) (*Service, *mockLogger, *int) {
	logger := &mockLogger{}

	svc, err := NewService(cfg, interfaces.Dependencies{
		Fetcher: fetcher,
		Logger:  logger,
	}, 4)
	if err != nil {
		t.Fatalf("NewService returned error: %v", err)
	}

	sleeps := new(int)
	svc.sleep = func(ctx context.Context, d time.Duration) error {
		*sleeps++
		return nil
	}

	return svc, logger, sleeps
}
