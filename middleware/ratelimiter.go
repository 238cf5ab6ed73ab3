package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

// RateLimit builds a per-IP limiter from a rate string like "100-M".
// With a Redis client the counters are shared across instances; without
// one it falls back to an in-process store.
func RateLimit(rate string, rdb *redis.Client) gin.HandlerFunc {
	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		log.Fatalf("invalid rate %q: %v", rate, err)
	}

	var store limiter.Store
	if rdb != nil {
		store, err = sredis.NewStoreWithOptions(rdb, limiter.StoreOptions{
			Prefix: "studio-backend:ratelimit",
		})
		if err != nil {
			log.Printf("redis limiter store unavailable, using memory store: %v", err)
			store = memory.NewStore()
		}
	} else {
		store = memory.NewStore()
	}

	return mgin.NewMiddleware(
		limiter.New(store, parsed),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Quá nhiều yêu cầu. Vui lòng thử lại sau.",
			})
		}),
	)
}
