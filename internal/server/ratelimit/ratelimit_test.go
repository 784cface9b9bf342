package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time          { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(t *testing.T, cfg *Config) (*Limiter, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)}
	l := NewLimiter(cfg)
	l.now = clock.now
	t.Cleanup(l.Stop)
	return l, clock
}

func TestLimiter_BurstThenRefill(t *testing.T) {
	l, clock := newTestLimiter(t, &Config{
		Enabled: true,
		EndpointConfigs: []EndpointConfig{
			{Path: "/build", Method: "POST", Limit: 60, Window: time.Minute, Burst: 3},
		},
	})

	for i := 0; i < 3; i++ {
		allowed, info := l.Allow("10.0.0.1", "/build", "POST")
		require.True(t, allowed, "request %d", i)
		assert.Equal(t, 60, info.Limit)
		assert.Equal(t, 2-i, info.Remaining)
	}

	allowed, info := l.Allow("10.0.0.1", "/build", "POST")
	assert.False(t, allowed)
	assert.Greater(t, info.RetryAfter, time.Duration(0))

	// one token per second
	clock.advance(time.Second)
	allowed, _ = l.Allow("10.0.0.1", "/build", "POST")
	assert.True(t, allowed)
}

func TestLimiter_BucketsArePerClientAndEndpoint(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{
		Enabled: true,
		EndpointConfigs: []EndpointConfig{
			{Path: "/build", Method: "POST", Limit: 1, Window: time.Hour},
		},
		DefaultLimit:  10,
		DefaultWindow: time.Minute,
	})

	allowed, _ := l.Allow("a", "/build", "POST")
	assert.True(t, allowed)
	allowed, _ = l.Allow("a", "/build", "POST")
	assert.False(t, allowed)

	allowed, _ = l.Allow("b", "/build", "POST")
	assert.True(t, allowed, "other clients have their own bucket")
	allowed, _ = l.Allow("a", "/variants", "GET")
	assert.True(t, allowed, "other endpoints have their own bucket")
}

func TestLimiter_PrefixRouteSharesOneBucket(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{
		Enabled: true,
		EndpointConfigs: []EndpointConfig{
			{Path: "/documents/", Method: "GET", Limit: 60, Window: time.Hour, Burst: 2},
		},
		DefaultLimit:  2,
		DefaultWindow: time.Hour,
	})

	allowed, _ := l.Allow("a", "/documents/0b7c6f1e-0000-4000-8000-000000000001", "GET")
	assert.True(t, allowed)
	allowed, _ = l.Allow("a", "/documents/0b7c6f1e-0000-4000-8000-000000000002", "GET")
	assert.True(t, allowed)
	allowed, _ = l.Allow("a", "/documents/0b7c6f1e-0000-4000-8000-000000000003", "GET")
	assert.False(t, allowed, "a fresh id does not get a fresh bucket")

	allowed, _ = l.Allow("a", "/nope/1", "GET")
	assert.True(t, allowed)
	allowed, _ = l.Allow("a", "/nope/2", "GET")
	assert.True(t, allowed)
	allowed, _ = l.Allow("a", "/nope/3", "GET")
	assert.False(t, allowed, "unmatched paths share the default bucket")

	assert.Len(t, l.buckets, 2)
}

func TestLimiter_WhitelistBlacklistDisabled(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{
		Enabled:         true,
		Whitelist:       map[string]bool{"trusted": true},
		Blacklist:       map[string]bool{"blocked": true},
		EndpointConfigs: []EndpointConfig{{Path: "/build", Method: "POST", Limit: 1, Window: time.Hour}},
	})

	for i := 0; i < 5; i++ {
		allowed, _ := l.Allow("trusted", "/build", "POST")
		assert.True(t, allowed)
	}
	allowed, _ := l.Allow("blocked", "/health", "GET")
	assert.False(t, allowed)

	disabled, _ := newTestLimiter(t, &Config{Enabled: false})
	allowed, info := disabled.Allow("anyone", "/build", "POST")
	assert.True(t, allowed)
	assert.Zero(t, info.Limit)
}

func TestLimiter_HealthIsUnlimited(t *testing.T) {
	l, _ := newTestLimiter(t, &Config{Enabled: true, DefaultLimit: 1, DefaultWindow: time.Hour})

	for i := 0; i < 10; i++ {
		allowed, _ := l.Allow("c", "/health", "GET")
		assert.True(t, allowed)
	}
}

func TestLimiter_EvictIdle(t *testing.T) {
	l, clock := newTestLimiter(t, &Config{Enabled: true, DefaultLimit: 5, DefaultWindow: time.Minute})

	l.Allow("old", "/variants", "GET")
	clock.advance(2 * time.Hour)
	l.Allow("new", "/variants", "GET")

	l.evictIdle(clock.now().Add(-time.Hour))
	assert.Len(t, l.buckets, 1)
	assert.Contains(t, l.buckets, "new:*:GET")
}

func TestLimiter_StopTwice(t *testing.T) {
	l := NewLimiter(nil)
	l.Stop()
	assert.NotPanics(t, l.Stop)
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	tests := []struct {
		path, method string
		wantPath     string
		wantNil      bool
	}{
		{path: "/build", method: "POST", wantPath: "/build"},
		{path: "/documents", method: "GET", wantPath: "/documents"},
		{path: "/documents/0b5c", method: "GET", wantPath: "/documents/"},
		{path: "/build", method: "GET", wantNil: true},
		{path: "/variants", method: "GET", wantNil: true},
	}
	for _, tt := range tests {
		got := MatchEndpoint(tt.path, tt.method, configs)
		if tt.wantNil {
			assert.Nil(t, got, "%s %s", tt.method, tt.path)
			continue
		}
		require.NotNil(t, got, "%s %s", tt.method, tt.path)
		assert.Equal(t, tt.wantPath, got.Path)
	}

	health := MatchEndpoint("/health", "GET", configs)
	require.NotNil(t, health)
	assert.Zero(t, health.Limit)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("CV_RATE_LIMIT_DEFAULT_LIMIT", "42")
	t.Setenv("CV_RATE_LIMIT_WHITELIST", "127.0.0.1, ::1")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 42, cfg.DefaultLimit)
	assert.Equal(t, time.Minute, cfg.DefaultWindow)
	assert.True(t, cfg.Whitelist["::1"])
	assert.NotEmpty(t, cfg.EndpointConfigs)

	t.Setenv("CV_RATE_LIMIT_ENABLED", "false")
	assert.False(t, LoadConfig().Enabled)
}
