package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gearbin/gearbin-backend/internal/metrics"
	"github.com/gearbin/gearbin-backend/pkg/ctxutil"
)

// Buckets untouched for this long are dropped by the sweeper.
const bucketIdleTTL = 10 * time.Minute

// RateLimiter keeps one token bucket per (group, client). A client is the
// authenticated user when there is one, otherwise the remote IP.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	now     func() time.Time
	metrics *metrics.Metrics
	stop    chan struct{}
}

// budget is a bucket's capacity and its refill speed in tokens per second.
type budget struct {
	capacity  float64
	perSecond float64
}

func perMinute(n int) budget {
	return budget{capacity: float64(n), perSecond: float64(n) / 60}
}

type bucket struct {
	tokens float64
	seen   time.Time
}

// take refills b up to now and consumes one token. When the bucket is
// empty it reports how long until the next token is available.
func (b *bucket) take(lim budget, now time.Time) (bool, time.Duration) {
	b.tokens = math.Min(lim.capacity, b.tokens+now.Sub(b.seen).Seconds()*lim.perSecond)
	b.seen = now
	if b.tokens >= 1 {
		b.tokens--
		return true, 0
	}
	wait := (1 - b.tokens) / lim.perSecond
	return false, time.Duration(wait * float64(time.Second))
}

// NewRateLimiter starts a limiter whose idle buckets are swept every
// sweepEvery. Call Stop on shutdown.
func NewRateLimiter(sweepEvery time.Duration, m *metrics.Metrics) *RateLimiter {
	rl := &RateLimiter{
		buckets: make(map[string]*bucket),
		now:     time.Now,
		metrics: m,
		stop:    make(chan struct{}),
	}
	go rl.sweepLoop(sweepEvery)
	return rl
}

// Stop terminates the sweeper.
func (rl *RateLimiter) Stop() {
	close(rl.stop)
}

// Limit returns middleware allowing maxPerMinute requests per client within
// group. Groups never share buckets.
func (rl *RateLimiter) Limit(group string, maxPerMinute int) Middleware {
	lim := perMinute(maxPerMinute)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ok, wait := rl.allow(group+"|"+clientKey(r), lim)
			if !ok {
				rl.metrics.RateLimitRejections.WithLabelValues(group).Inc()
				w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(wait.Seconds()))))
				writeError(w, http.StatusTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) allow(key string, lim budget) (bool, time.Duration) {
	now := rl.now()

	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, found := rl.buckets[key]
	if !found {
		b = &bucket{tokens: lim.capacity, seen: now}
		rl.buckets[key] = b
	}
	return b.take(lim, now)
}

func clientKey(r *http.Request) string {
	if userID, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
		return "user:" + userID.String()
	}
	if ip := ctxutil.ClientIPFromCtx(r.Context()); ip != "" {
		return "ip:" + ip
	}
	return "ip:" + remoteHost(r)
}

func (rl *RateLimiter) sweepLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.sweep()
		}
	}
}

func (rl *RateLimiter) sweep() {
	cutoff := rl.now().Add(-bucketIdleTTL)

	rl.mu.Lock()
	defer rl.mu.Unlock()

	for key, b := range rl.buckets {
		if b.seen.Before(cutoff) {
			delete(rl.buckets, key)
		}
	}
}
