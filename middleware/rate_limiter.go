package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/config"
	"github.com/BinaryBaker2025/Bethany-Blooms-Website-sub002/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// visitorIdleTTL is how long an idle client keeps its bucket.
const visitorIdleTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// rateLimiterStore holds one token bucket per client IP.
type rateLimiterStore struct {
	visitors  map[string]*visitor
	perMin    int
	lastSweep time.Time
	now       func() time.Time
	mu        sync.Mutex
}

func newRateLimiterStore(perMin int) *rateLimiterStore {
	if perMin <= 0 {
		perMin = 100
	}
	return &rateLimiterStore{
		visitors: make(map[string]*visitor),
		perMin:   perMin,
		now:      time.Now,
	}
}

// getLimiter returns the bucket for ip, creating it on first sight. Buckets idle
// for longer than visitorIdleTTL are swept at most once a minute.
func (s *rateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.lastSweep) > time.Minute {
		for key, v := range s.visitors {
			if now.Sub(v.lastSeen) > visitorIdleTTL {
				delete(s.visitors, key)
			}
		}
		s.lastSweep = now
	}

	v, exists := s.visitors[ip]
	if !exists {
		// perMin per minute, bursting up to a full minute's allowance
		v = &visitor{limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(s.perMin)), s.perMin)}
		s.visitors[ip] = v
	}
	v.lastSeen = now
	return v.limiter
}

func (s *rateLimiterStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.visitors)
}

// RateLimitMiddleware limits requests per client IP to MAX_REQUESTS_PER_MIN.
func RateLimitMiddleware() gin.HandlerFunc {
	return rateLimit(newRateLimiterStore(config.AppConfig.MaxRequestsPerMin))
}

func rateLimit(store *rateLimiterStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := getClientIP(c)
		if !store.getLimiter(ip).Allow() {
			utils.GetLogger().Warn("Rate limit exceeded", zap.String("ip", ip), zap.String("path", c.FullPath()))
			c.Header("Retry-After", strconv.Itoa(int(time.Minute.Seconds())/store.perMin+1))
			utils.JSONCodeError(c, http.StatusTooManyRequests, "rateLimited", "Rate limit exceeded. Try again later.", "")
			return
		}
		c.Next()
	}
}
