package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// clientLog is the admitted-request history of one identity, oldest first.
type clientLog struct {
	mu      sync.Mutex
	stamps  []time.Time
	evicted bool
}

// prune drops every timestamp strictly older than cutoff. Callers hold mu.
func (c *clientLog) prune(cutoff time.Time) {
	i := 0
	for i < len(c.stamps) && c.stamps[i].Before(cutoff) {
		i++
	}
	if i == 0 {
		return
	}
	n := copy(c.stamps, c.stamps[i:])
	c.stamps = c.stamps[:n]
}

// SlidingWindow is an in-memory Limiter.
type SlidingWindow struct {
	maxRequests int
	window      time.Duration

	mu      sync.Mutex
	clients map[string]*clientLog
}

var _ Limiter = (*SlidingWindow)(nil)

// NewSlidingWindow creates a limiter admitting at most maxRequests per
// identity within any trailing window.
func NewSlidingWindow(maxRequests int, window time.Duration) (*SlidingWindow, error) {
	if maxRequests < 0 {
		return nil, fmt.Errorf("%w: max requests must not be negative, got %d", ErrInvalidLimit, maxRequests)
	}
	if window <= 0 {
		return nil, fmt.Errorf("%w: window must be positive, got %s", ErrInvalidLimit, window)
	}

	return &SlidingWindow{
		maxRequests: maxRequests,
		window:      window,
		clients:     make(map[string]*clientLog),
	}, nil
}

// MaxRequests returns the per-window budget.
func (s *SlidingWindow) MaxRequests() int { return s.maxRequests }

// Window returns the window length.
func (s *SlidingWindow) Window() time.Duration { return s.window }

// Allow reports whether a request from key at now is admitted, recording it
// if so.
func (s *SlidingWindow) Allow(key string, now time.Time) bool {
	cutoff := now.Add(-s.window)

	for {
		entry := s.entry(key)

		entry.mu.Lock()
		if entry.evicted {
			// Sweep removed this log after we looked it up.
			entry.mu.Unlock()
			continue
		}

		entry.prune(cutoff)
		if len(entry.stamps) >= s.maxRequests {
			entry.mu.Unlock()
			return false
		}
		entry.stamps = append(entry.stamps, now)
		entry.mu.Unlock()
		return true
	}
}

// Admit implements Limiter. It never returns an error.
func (s *SlidingWindow) Admit(_ context.Context, key string, now time.Time) (bool, error) {
	return s.Allow(key, now), nil
}

func (s *SlidingWindow) entry(key string) *clientLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.clients[key]
	if !ok {
		entry = &clientLog{}
		s.clients[key] = entry
	}
	return entry
}

// Sweep forgets identities with no requests inside the window ending at
// now and returns how many were removed.
func (s *SlidingWindow) Sweep(now time.Time) int {
	cutoff := now.Add(-s.window)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, entry := range s.clients {
		entry.mu.Lock()
		entry.prune(cutoff)
		if len(entry.stamps) == 0 {
			entry.evicted = true
			delete(s.clients, key)
			removed++
		}
		entry.mu.Unlock()
	}
	return removed
}

// Len returns the number of tracked identities.
func (s *SlidingWindow) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Run calls Sweep every interval until ctx is cancelled.
func (s *SlidingWindow) Run(ctx context.Context, interval time.Duration, now func() time.Time) {
	if interval <= 0 {
		return
	}
	if now == nil {
		now = time.Now
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(now())
		}
	}
}
