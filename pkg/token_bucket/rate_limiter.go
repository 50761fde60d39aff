package token_bucket

import (
	"sync"
	"time"
)

// Limiter решает, принимать ли очередной запрос.
type Limiter interface {
	Allow() bool
}

// TokenBucket — классический token bucket: ведро ёмкостью capacity
// пополняется со скоростью refillRate токенов в секунду, запрос
// обслуживается, только если в ведре есть токен.
type TokenBucket struct {
	capacity   int
	tokens     int
	refillRate float64
	lastRefill time.Time
	mu         sync.Mutex
}

func NewTokenBucket(capacity int, refillRate float64) *TokenBucket {
	return &TokenBucket{
		capacity:   capacity,
		tokens:     capacity,
		refillRate: refillRate,
		lastRefill: time.Now(),
	}
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens > 0 {
		t.tokens--
		return true
	}

	return false
}

// refill добавляет накопившиеся токены. lastRefill сдвигается только при
// фактическом пополнении, иначе дробные остатки терялись бы при частых
// вызовах.
func (t *TokenBucket) refill() {
	elapsed := time.Since(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	tokensToAdd := int(elapsed * t.refillRate)
	if tokensToAdd == 0 {
		return
	}

	t.tokens += tokensToAdd
	if t.tokens > t.capacity {
		t.tokens = t.capacity
	}
	t.lastRefill = time.Now()
}
