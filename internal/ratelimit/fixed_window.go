package ratelimit

import (
	"context"
	"sync"
	"time"
)

// FixedWindow is an in-memory fixed-window limiter.
//
// Each key gets a window anchored at its first request. Requests past the
// limit are rejected until the interval elapses; the rejection does not reset
// the window. A request arriving once the interval has elapsed always passes
// and is counted as the first of a fresh window, including when the previous
// window was exhausted.
//
// State lives in process memory only, so the guarantee is per instance.
// Use RedisWindow for multi-instance deployments.
type FixedWindow struct {
	mu      sync.Mutex
	windows map[string]*window
	cfg     Config
	now     func() time.Time
}

type window struct {
	count int
	start time.Time
}

// NewFixedWindow creates a new in-memory fixed-window limiter
func NewFixedWindow(cfg Config) *FixedWindow {
	fw := &FixedWindow{
		windows: make(map[string]*window),
		cfg:     cfg,
		now:     time.Now,
	}

	// Drop stale windows so the map does not grow with one entry per IP forever
	go fw.cleanup()

	return fw
}

// Allow implements Limiter. It never returns an error.
func (fw *FixedWindow) Allow(_ context.Context, key string) (bool, error) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	now := fw.now()
	w, exists := fw.windows[key]

	if !exists {
		fw.windows[key] = &window{count: 1, start: now}
		return true, nil
	}

	if now.Sub(w.start) >= fw.cfg.Interval {
		// Boundary request starts a fresh window and is always admitted
		w.count = 1
		w.start = now
		return true, nil
	}

	w.count++
	if w.count > fw.cfg.Limit {
		return false, nil
	}
	return true, nil
}

// Remaining returns how many requests the key has left in its current window
func (fw *FixedWindow) Remaining(key string) int {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	w, exists := fw.windows[key]
	if !exists || fw.now().Sub(w.start) >= fw.cfg.Interval {
		return fw.cfg.Limit
	}

	remaining := fw.cfg.Limit - w.count
	if remaining < 0 {
		return 0
	}
	return remaining
}

// cleanup removes expired windows periodically
func (fw *FixedWindow) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		fw.mu.Lock()
		now := fw.now()
		for key, w := range fw.windows {
			if now.Sub(w.start) >= fw.cfg.Interval {
				delete(fw.windows, key)
			}
		}
		fw.mu.Unlock()
	}
}
