package middleware

import (
	"daily/infras/metrics"
	"daily/shared"
	"daily/shared/constant"
	"daily/transport/http/response"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	cacheKeyRateLimit = "limiter"
	unknownUserAgent  = "unknown"

	// Above this many tracked clients the in-process limiter starts over.
	maxTrackedClients = 10000
)

// RateLimit counts requests per client (ip and user agent) over a fixed window.
// Redis backs the counter when configured; otherwise a token bucket per client
// is kept in process.
func (a *appMiddleware) RateLimit() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.config.App.RateLimiter.Enable {
				next.ServeHTTP(w, r)

				return
			}

			cacheKey := shared.BuildCacheKey(cacheKeyRateLimit, getClientIP(r), getUA(r))

			var allowed bool
			if a.useRedis() {
				allowed = a.allowRedis(w, r, cacheKey)
			} else {
				allowed = a.allowMemory(w, cacheKey)
			}

			if !allowed {
				metrics.RecordRateLimited()
				response.WithRequestLimitExceeded(w)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (a *appMiddleware) useRedis() bool {
	return a.cache != nil && a.config.App.RateLimiter.Backend != constant.RateLimiterBackendMemory
}

func (a *appMiddleware) allowRedis(w http.ResponseWriter, r *http.Request, key string) bool {
	maxReqs := a.config.App.RateLimiter.MaxRequests
	windowSecs := windowOrDefault(a.config.App.RateLimiter.WindowSeconds)

	count, _, err := a.cache.Increment(r.Context(), key, windowSecs)
	if err != nil {
		// cache outage must not take the API down
		log.Warn().Err(err).Str("key", key).Msg("rate limiter cache unavailable, allowing request")

		return true
	}

	setRateLimitHeaders(w, maxReqs, maxReqs-count, windowSecs)

	return count <= maxReqs
}

func (a *appMiddleware) allowMemory(w http.ResponseWriter, key string) bool {
	maxReqs := a.config.App.RateLimiter.MaxRequests

	limiter := a.limiter.get(key)
	allowed := limiter.Allow()

	setRateLimitHeaders(w, maxReqs, int(limiter.Tokens()), a.limiter.window)

	return allowed
}

func setRateLimitHeaders(w http.ResponseWriter, limit, remaining, window int) {
	w.Header().Set(constant.RequestHeaderRateLimit, strconv.Itoa(limit))
	w.Header().Set(constant.RequestHeaderRateLimitRemaining, strconv.Itoa(max(0, remaining)))
	w.Header().Set(constant.RequestHeaderRateLimitWindow, strconv.Itoa(window))
}

type memoryLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
	window   int
}

// newMemoryLimiter refills maxReqs tokens evenly over windowSecs.
func newMemoryLimiter(maxReqs, windowSecs int) *memoryLimiter {
	windowSecs = windowOrDefault(windowSecs)

	return &memoryLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(maxReqs) / float64(windowSecs)),
		burst:    maxReqs,
		window:   windowSecs,
	}
}

func (m *memoryLimiter) get(key string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	if limiter, ok := m.limiters[key]; ok {
		return limiter
	}

	if len(m.limiters) >= maxTrackedClients {
		m.limiters = make(map[string]*rate.Limiter)
	}

	limiter := rate.NewLimiter(m.limit, m.burst)
	m.limiters[key] = limiter

	return limiter
}

func windowOrDefault(windowSecs int) int {
	if windowSecs <= 0 {
		return 1
	}

	return windowSecs
}

func getUA(r *http.Request) string {
	ua := r.Header.Get(constant.RequestHeaderUserAgent)
	if ua == constant.Empty {
		ua = unknownUserAgent
	}

	return ua
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get(constant.RequestHeaderForwardedFor); xff != constant.Empty {
		// first hop is the client
		if commaIdx := strings.Index(xff, ","); commaIdx > 0 {
			return strings.TrimSpace(xff[:commaIdx])
		}

		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get(constant.RequestHeaderRealIP); xri != constant.Empty {
		return strings.TrimSpace(xri)
	}

	return r.RemoteAddr
}
