package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWindow(limit int, interval time.Duration) (*FixedWindow, *time.Time) {
	fw := &FixedWindow{
		windows: make(map[string]*window),
		cfg:     Config{Limit: limit, Interval: interval},
	}
	clock := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	fw.now = func() time.Time { return clock }
	return fw, &clock
}

func TestFixedWindowAllowsUpToLimit(t *testing.T) {
	fw, _ := newTestWindow(5, time.Minute)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		allowed, err := fw.Allow(ctx, "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should be allowed", i)
	}

	allowed, err := fw.Allow(ctx, "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, allowed, "request 6 within the window should be rejected")
}

func TestFixedWindowRejectDoesNotResetWindow(t *testing.T) {
	fw, clock := newTestWindow(2, time.Minute)
	ctx := context.Background()

	fw.Allow(ctx, "k")
	fw.Allow(ctx, "k")

	// Rejections spread over the window must not push the start forward
	for i := 0; i < 3; i++ {
		*clock = clock.Add(10 * time.Second)
		allowed, _ := fw.Allow(ctx, "k")
		assert.False(t, allowed)
	}

	// 60s after the first request the window has elapsed, despite rejections
	*clock = clock.Add(30 * time.Second)
	allowed, _ := fw.Allow(ctx, "k")
	assert.True(t, allowed, "request after the interval should start a fresh window")
}

func TestFixedWindowBoundaryRequestAdmitted(t *testing.T) {
	fw, clock := newTestWindow(1, time.Minute)
	ctx := context.Background()

	allowed, _ := fw.Allow(ctx, "k")
	require.True(t, allowed)
	allowed, _ = fw.Allow(ctx, "k")
	require.False(t, allowed)

	// Exactly at the boundary the request is admitted and counted as the
	// first of a new window
	*clock = clock.Add(time.Minute)
	allowed, _ = fw.Allow(ctx, "k")
	assert.True(t, allowed)

	allowed, _ = fw.Allow(ctx, "k")
	assert.False(t, allowed, "new window carries the same limit")
}

func TestFixedWindowKeysAreIndependent(t *testing.T) {
	fw, _ := newTestWindow(1, time.Minute)
	ctx := context.Background()

	allowed, _ := fw.Allow(ctx, "a")
	require.True(t, allowed)
	allowed, _ = fw.Allow(ctx, "a")
	require.False(t, allowed)

	allowed, _ = fw.Allow(ctx, "b")
	assert.True(t, allowed, "an exhausted key must not affect other keys")
}

func TestFixedWindowRemaining(t *testing.T) {
	fw, clock := newTestWindow(3, time.Minute)
	ctx := context.Background()

	assert.Equal(t, 3, fw.Remaining("k"))

	fw.Allow(ctx, "k")
	fw.Allow(ctx, "k")
	assert.Equal(t, 1, fw.Remaining("k"))

	fw.Allow(ctx, "k")
	fw.Allow(ctx, "k")
	assert.Equal(t, 0, fw.Remaining("k"))

	*clock = clock.Add(time.Minute)
	assert.Equal(t, 3, fw.Remaining("k"), "elapsed window counts as fresh")
}
