package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter ограничивает частоту запросов по клиенту. Лимит фиксированный
// для всей поверхности API: limit запросов за window на один адрес.
type RateLimiter struct {
	limit  rate.Limit
	burst  int
	ttl    time.Duration
	mu     sync.Mutex
	byAddr map[string]*clientLimiter
	stopCh chan struct{}
}

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// NewRateLimiter создает лимитер на limit запросов за window и запускает
// фоновую чистку неактивных записей.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		limit:  rate.Limit(float64(limit) / window.Seconds()),
		burst:  limit,
		ttl:    10 * window,
		byAddr: make(map[string]*clientLimiter),
		stopCh: make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

func (rl *RateLimiter) Stop() {
	close(rl.stopCh)
}

func (rl *RateLimiter) Middleware() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}

			if !rl.getOrCreate(host).Allow() {
				writeError(w, "Слишком много запросов, попробуйте позже", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) getOrCreate(addr string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if cl, exists := rl.byAddr[addr]; exists {
		cl.lastAccess = time.Now()
		return cl.limiter
	}

	limiter := rate.NewLimiter(rl.limit, rl.burst)
	rl.byAddr[addr] = &clientLimiter{
		limiter:    limiter,
		lastAccess: time.Now(),
	}

	return limiter
}

func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopCh:
			return
		}
	}
}

func (rl *RateLimiter) cleanup() {
	now := time.Now()

	rl.mu.Lock()
	for addr, cl := range rl.byAddr {
		if now.Sub(cl.lastAccess) > rl.ttl {
			delete(rl.byAddr, addr)
		}
	}
	rl.mu.Unlock()
}
