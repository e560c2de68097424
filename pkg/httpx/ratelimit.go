package httpx

import (
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/bartab-teams/pkg/slogx"
	"golang.org/x/time/rate"
)

// RateLimitConfig defines the rate limiting parameters.
type RateLimitConfig struct {
	// RequestsPerWindow is the number of requests allowed in the time window
	RequestsPerWindow int
	// Window is the time window for rate limiting
	Window time.Duration
	// Burst allows for temporary bursts above the rate limit
	Burst int
}

// Rate limit profiles. Each can be overridden with
// RATELIMIT_{PROFILE}_REQUESTS, RATELIMIT_{PROFILE}_WINDOW_SEC and
// RATELIMIT_{PROFILE}_BURST.
var (
	// StrictLimit guards invite lookup and redemption, where tokens could be
	// brute forced.
	StrictLimit = RateLimitConfig{RequestsPerWindow: 10, Window: time.Minute, Burst: 10}

	// ModerateLimit is for membership mutations.
	ModerateLimit = RateLimitConfig{RequestsPerWindow: 30, Window: time.Minute, Burst: 30}

	// LenientLimit is for authenticated reads.
	LenientLimit = RateLimitConfig{RequestsPerWindow: 120, Window: time.Minute, Burst: 120}

	// PublicLimit is for health and metrics endpoints.
	PublicLimit = RateLimitConfig{RequestsPerWindow: 1000, Window: time.Minute, Burst: 1000}
)

func init() {
	StrictLimit = ParseRateLimitFromEnv("STRICT", StrictLimit)
	ModerateLimit = ParseRateLimitFromEnv("MODERATE", ModerateLimit)
	LenientLimit = ParseRateLimitFromEnv("LENIENT", LenientLimit)
	PublicLimit = ParseRateLimitFromEnv("PUBLIC", PublicLimit)
}

// ParseRateLimitFromEnv reads RATELIMIT_{prefix}_{REQUESTS|WINDOW_SEC|BURST}.
// Missing, malformed or non-positive values keep the default.
func ParseRateLimitFromEnv(prefix string, defaultConfig RateLimitConfig) RateLimitConfig {
	config := defaultConfig

	if n, ok := positiveEnvInt("RATELIMIT_" + prefix + "_REQUESTS"); ok {
		config.RequestsPerWindow = n
	}
	if n, ok := positiveEnvInt("RATELIMIT_" + prefix + "_WINDOW_SEC"); ok {
		config.Window = time.Duration(n) * time.Second
	}
	if n, ok := positiveEnvInt("RATELIMIT_" + prefix + "_BURST"); ok {
		config.Burst = n
	}

	return config
}

func positiveEnvInt(key string) (int, bool) {
	val := os.Getenv(key)
	if val == "" {
		return 0, false
	}
	n, err := strconv.Atoi(val)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// KeyExtractor groups requests for rate limiting (IP, user id, ...).
type KeyExtractor func(*http.Request) string

// IPKeyExtractor extracts the client IP, honouring X-Forwarded-For and
// X-Real-IP for proxied requests.
func IPKeyExtractor(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return strings.TrimSpace(xri)
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// UserIDKeyExtractor returns the verified user id, or "" when unauthenticated.
func UserIDKeyExtractor(r *http.Request) string {
	userID, _ := UserIDFromContext(r.Context())
	return userID
}

// CompositeKeyExtractor joins the non-empty keys of several extractors.
func CompositeKeyExtractor(sep string, extractors ...KeyExtractor) KeyExtractor {
	return func(r *http.Request) string {
		var parts []string
		for _, extractor := range extractors {
			if key := extractor(r); key != "" {
				parts = append(parts, key)
			}
		}
		return strings.Join(parts, sep)
	}
}

// rateLimiter keeps one token bucket per key.
type rateLimiter struct {
	limiters sync.Map // map[string]*rate.Limiter
	rate     rate.Limit
	burst    int

	mu          sync.Mutex
	lastCleanup time.Time
}

func (rl *rateLimiter) getLimiter(key string) *rate.Limiter {
	if limiter, ok := rl.limiters.Load(key); ok {
		return limiter.(*rate.Limiter)
	}

	actual, _ := rl.limiters.LoadOrStore(key, rate.NewLimiter(rl.rate, rl.burst))
	rl.maybeCleanup()

	return actual.(*rate.Limiter)
}

// maybeCleanup drops idle limiters (full buckets) at most every five minutes
// so ephemeral keys don't accumulate.
func (rl *rateLimiter) maybeCleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if time.Since(rl.lastCleanup) < 5*time.Minute {
		return
	}
	rl.lastCleanup = time.Now()

	rl.limiters.Range(func(key, value any) bool {
		if value.(*rate.Limiter).Tokens() >= float64(rl.burst) {
			rl.limiters.Delete(key)
		}
		return true
	})
}

// RateLimitMiddleware limits requests per key. Requests whose key cannot be
// extracted are let through and logged.
func RateLimitMiddleware(config RateLimitConfig, keyExtractor KeyExtractor) Middleware {
	rl := &rateLimiter{
		rate:        rate.Limit(float64(config.RequestsPerWindow) / config.Window.Seconds()),
		burst:       config.Burst,
		lastCleanup: time.Now(),
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := slogx.FromContext(r.Context())

			key := keyExtractor(r)
			if key == "" {
				log.Warn("rate limit: unable to extract key, allowing request")
				next.ServeHTTP(w, r)
				return
			}

			limiter := rl.getLimiter(key)
			if limiter.Allow() {
				next.ServeHTTP(w, r)
				return
			}

			reservation := limiter.Reserve()
			retryAfter := max(int(reservation.Delay().Seconds()), 1)
			reservation.Cancel()

			w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(config.RequestsPerWindow))
			w.Header().Set("X-RateLimit-Window", config.Window.String())

			log.Warn("rate limit exceeded",
				"key", key,
				"endpoint", r.URL.Path,
				"retry_after", retryAfter,
			)

			WriteError(w, http.StatusTooManyRequests, "rate_limit_exceeded", "Too many requests. Please try again later.")
		})
	}
}

// RateLimitByIP limits by client IP only.
func RateLimitByIP(config RateLimitConfig) Middleware {
	return RateLimitMiddleware(config, IPKeyExtractor)
}

// RateLimitByUser limits by verified user id plus IP. Must run after
// AuthnMiddleware.
func RateLimitByUser(config RateLimitConfig) Middleware {
	return RateLimitMiddleware(config, CompositeKeyExtractor(":",
		UserIDKeyExtractor,
		IPKeyExtractor,
	))
}
