package middleware

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/yourusername/trivia-bank/internal/config"
)

const (
	defaultMaxRequests = 100
	defaultWindow      = time.Minute
	redisCallTimeout   = 2 * time.Second
)

// RateLimiter ограничивает число запросов клиента к группе маршрутов
// фиксированным окном: счетчик в Redis живет ровно одно окно.
type RateLimiter struct {
	client      redis.UniversalClient
	group       string
	maxRequests int
	window      time.Duration
}

// NewRateLimiter создает ограничитель для группы маршрутов (например "api").
// Нулевые значения конфигурации заменяются на 100 запросов в минуту.
func NewRateLimiter(client redis.UniversalClient, group string, cfg config.RateLimitConfig) *RateLimiter {
	rl := &RateLimiter{
		client:      client,
		group:       group,
		maxRequests: cfg.MaxRequests,
		window:      time.Duration(cfg.WindowSec) * time.Second,
	}
	if rl.maxRequests <= 0 {
		rl.maxRequests = defaultMaxRequests
	}
	if rl.window <= 0 {
		rl.window = defaultWindow
	}
	return rl
}

// key - счетчик клиента внутри группы
func (rl *RateLimiter) key(clientIP string) string {
	return "trivia:ratelimit:" + rl.group + ":" + clientIP
}

// hit учитывает запрос и возвращает число запросов в текущем окне и время до его конца
func (rl *RateLimiter) hit(ctx context.Context, key string) (int64, time.Duration, error) {
	var count *redis.IntCmd
	var ttl *redis.DurationCmd
	_, err := rl.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		count = pipe.Incr(ctx, key)
		ttl = pipe.TTL(ctx, key)
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	reset := ttl.Val()
	if reset <= 0 {
		// Новое окно: у ключа еще нет срока жизни
		if err := rl.client.Expire(ctx, key, rl.window).Err(); err != nil {
			log.Printf("[RateLimiter] Не удалось задать TTL для %s: %v", key, err)
		}
		reset = rl.window
	}
	return count.Val(), reset, nil
}

// Middleware возвращает gin middleware. Недоступный Redis запросы не блокирует.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), redisCallTimeout)
		defer cancel()

		clientIP := c.ClientIP()
		count, reset, err := rl.hit(ctx, rl.key(clientIP))
		if err != nil {
			log.Printf("[RateLimiter] Redis недоступен, запрос пропущен (группа %s): %v", rl.group, err)
			c.Next()
			return
		}

		remaining := int64(rl.maxRequests) - count
		if remaining < 0 {
			remaining = 0
		}
		resetSec := strconv.Itoa(int(reset.Round(time.Second).Seconds()))
		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.maxRequests))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(remaining, 10))
		c.Header("X-RateLimit-Reset", resetSec)

		if count > int64(rl.maxRequests) {
			log.Printf("[RateLimiter] Превышен лимит: группа=%s ip=%s запросов=%d лимит=%d",
				rl.group, clientIP, count, rl.maxRequests)
			c.Header("Retry-After", resetSec)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Too many requests."})
			return
		}

		c.Next()
	}
}
