package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateStore is a token-bucket limiter cache keyed by client, with periodic
// cleanup of idle entries.
type RateStore struct {
	mu      sync.Mutex
	entries map[string]*rateEntry
	rps     rate.Limit
	burst   int
	idleTTL time.Duration
}

type rateEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func NewRateStore(rps float64, burst int) *RateStore {
	return &RateStore{
		entries: make(map[string]*rateEntry),
		rps:     rate.Limit(rps),
		burst:   burst,
		idleTTL: 15 * time.Minute,
	}
}

// Allow reports whether the client identified by key may proceed.
func (s *RateStore) Allow(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	e, ok := s.entries[key]
	if !ok {
		e = &rateEntry{lim: rate.NewLimiter(s.rps, s.burst)}
		s.entries[key] = e
	}
	e.lastSeen = now

	for k, v := range s.entries {
		if now.Sub(v.lastSeen) > s.idleTTL {
			delete(s.entries, k)
		}
	}

	return e.lim.Allow()
}

// LimitPerClient throttles requests per client IP. Used on the credential
// routes to slow down password guessing.
func LimitPerClient(store *RateStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !store.Allow(c.ClientIP()) {
			c.String(http.StatusTooManyRequests, "too many requests")
			c.Abort()
			return
		}
		c.Next()
	}
}
