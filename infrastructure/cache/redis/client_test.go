package redis

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/Christoph9211/video-recommender/core/domain"
	"github.com/Christoph9211/video-recommender/pkg/config"
)

// These are integration tests against a real Redis instance. They are
// skipped unless REDIS_TEST is set, matching how the cache is optional
// at runtime.

func newTestCache(t *testing.T) *RedisCache {
	t.Helper()

	if os.Getenv("REDIS_TEST") == "" {
		t.Skip("set REDIS_TEST=1 with a local Redis to run these tests")
	}

	cache, err := NewRedisCache(config.RedisConfig{Address: "localhost:6379"})
	if err != nil {
		t.Fatalf("NewRedisCache returned error: %v", err)
	}
	t.Cleanup(func() { cache.Close() })

	return cache
}

// listingPayload builds the JSON listing shape the fetch engines store.
func listingPayload(t *testing.T, site string) []byte {
	t.Helper()

	data, err := json.Marshal([]domain.Record{
		{"title": site + " first", "url": "https://" + site + ".example/video/1"},
		{"title": site + " second", "url": "https://" + site + ".example/video/2"},
	})
	if err != nil {
		t.Fatalf("failed to marshal listing: %v", err)
	}
	return data
}

func TestNewRedisCache_EmptyAddress(t *testing.T) {
	cache, err := NewRedisCache(config.RedisConfig{Address: ""})

	if err == nil {
		t.Error("NewRedisCache should return error for empty address")
	}
	if cache != nil {
		t.Error("NewRedisCache should return nil cache for invalid config")
	}
}

func TestRedisCache_RoundTripsListing(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	key := "listing:alpha:deep+sea"
	payload := listingPayload(t, "alpha")

	if err := cache.Set(ctx, key, payload, 1*time.Hour); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}
	defer cache.Delete(ctx, key)

	got, err := cache.Get(ctx, key)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}

	var records []domain.Record
	if err := json.Unmarshal(got, &records); err != nil {
		t.Fatalf("cached listing is not valid JSON: %v", err)
	}
	if len(records) != 2 || records[0]["title"] != "alpha first" {
		t.Errorf("cached listing = %v, want the stored records", records)
	}
}

func TestRedisCache_Get_MissingListing(t *testing.T) {
	cache := newTestCache(t)

	got, err := cache.Get(context.Background(), "listing:alpha:never-stored")

	if err == nil {
		t.Error("Get should return error for a missing listing")
	}
	if got != nil {
		t.Error("Get should return nil value for a missing listing")
	}
}

func TestRedisCache_Set_AppliesTTL(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	key := "listing:beta:short-lived"
	if err := cache.Set(ctx, key, listingPayload(t, "beta"), 100*time.Millisecond); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	time.Sleep(200 * time.Millisecond)

	if _, err := cache.Get(ctx, key); err == nil {
		t.Error("Get should return error after the listing expired")
	}
}

func TestRedisCache_Delete_RemovesListing(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	key := "listing:alpha:to-delete"
	if err := cache.Set(ctx, key, listingPayload(t, "alpha"), 1*time.Hour); err != nil {
		t.Fatalf("Set returned error: %v", err)
	}

	if err := cache.Delete(ctx, key); err != nil {
		t.Errorf("Delete returned error: %v", err)
	}

	if _, err := cache.Get(ctx, key); err == nil {
		t.Error("Get should return error for a deleted listing")
	}
}

func TestRedisCache_Delete_MissingKey(t *testing.T) {
	cache := newTestCache(t)

	if err := cache.Delete(context.Background(), "listing:alpha:absent"); err != nil {
		t.Errorf("Delete should return nil for a missing key, got: %v", err)
	}
}
