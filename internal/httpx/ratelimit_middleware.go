package httpx

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type clientBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware keeps one token bucket per client host. Buckets idle
// for longer than the sweep interval are dropped.
type RateLimitMiddleware struct {
	mu      sync.Mutex
	buckets map[string]*clientBucket
	limit   rate.Limit
	burst   int
	sweep   time.Duration
	log     logrus.FieldLogger

	stop     chan struct{}
	stopOnce sync.Once
}

func NewRateLimitMiddleware(rps float64, burst int, log logrus.FieldLogger) *RateLimitMiddleware {
	rl := &RateLimitMiddleware{
		buckets: make(map[string]*clientBucket),
		limit:   rate.Limit(rps),
		burst:   burst,
		sweep:   5 * time.Minute,
		log:     log,
		stop:    make(chan struct{}),
	}

	go rl.sweepLoop()
	return rl
}

// Stop ends the background sweep.
func (rl *RateLimitMiddleware) Stop() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *RateLimitMiddleware) sweepLoop() {
	ticker := time.NewTicker(rl.sweep)
	defer ticker.Stop()
	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			if n := rl.dropIdle(now); n > 0 {
				rl.log.WithField("clients", n).Debug("rate limit buckets dropped")
			}
		}
	}
}

func (rl *RateLimitMiddleware) dropIdle(now time.Time) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	n := 0
	for key, b := range rl.buckets {
		if now.Sub(b.lastSeen) > rl.sweep {
			delete(rl.buckets, key)
			n++
		}
	}
	return n
}

func (rl *RateLimitMiddleware) bucket(key string, now time.Time) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.buckets[key]
	if !ok {
		b = &clientBucket{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.buckets[key] = b
	}
	b.lastSeen = now
	return b.limiter
}

// clientKey is the first X-Forwarded-For hop when present, otherwise the
// remote host without its port, so reconnects share one bucket.
func clientKey(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

func (rl *RateLimitMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientKey(r)
		now := time.Now()

		res := rl.bucket(key, now).ReserveN(now, 1)
		if delay := res.DelayFrom(now); !res.OK() || delay > 0 {
			res.CancelAt(now)
			rl.log.WithFields(logrus.Fields{
				"client":     key,
				"path":       r.URL.Path,
				"request_id": RequestIDFrom(r),
			}).Warn("rate limit exceeded")

			w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds(delay)))
			JSONError(w, r, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "Too many requests", nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func retryAfterSeconds(d time.Duration) int {
	if d <= 0 || d == rate.InfDuration {
		return 1
	}
	return int(math.Ceil(d.Seconds()))
}
