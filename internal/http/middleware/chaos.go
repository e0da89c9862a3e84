package middleware

import (
	"math/rand"
	"net/http"
	"time"
)

// ChaosConfig tunes the simulated-network behavior. Zero values disable the
// corresponding effect, which is how tests get deterministic routing.
type ChaosConfig struct {
	FailureRate float64
	MinLatency  time.Duration
	MaxLatency  time.Duration
}

// Latency delays every request by a uniform random duration from
// [MinLatency, MaxLatency].
func Latency(cfg ChaosConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if delay := randomLatency(cfg); delay > 0 {
				timer := time.NewTimer(delay)
				defer timer.Stop()
				select {
				case <-r.Context().Done():
					return
				case <-timer.C:
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func randomLatency(cfg ChaosConfig) time.Duration {
	if cfg.MaxLatency <= 0 {
		return 0
	}
	spread := cfg.MaxLatency - cfg.MinLatency
	if spread <= 0 {
		return cfg.MinLatency
	}
	return cfg.MinLatency + time.Duration(rand.Int63n(int64(spread)))
}

// Flaky rolls the failure rate before invoking the handler and, when
// triggered, answers 500 without touching it: the store must be left
// exactly as it was so callers can exercise optimistic-update rollback.
func Flaky(rate float64, handler http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if rate > 0 && rand.Float64() < rate {
			writeErrorJSON(w, r, http.StatusInternalServerError, "simulated_failure", "Random write error")
			return
		}
		handler(w, r)
	}
}
