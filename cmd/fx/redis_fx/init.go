package redis_fx

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"sakay/internal/infra"
)

var Module = fx.Provide(provideRedis)

// provideRedis may return nil; consumers treat that as caching disabled.
func provideRedis() *redis.Client {
	return infra.InitRedis()
}
