package lookup

import (
	"github.com/redis/go-redis/v9"
	"github.com/smallbiznis/snackcat/internal/config"
	"github.com/smallbiznis/snackcat/internal/lookup/domain"
	"github.com/smallbiznis/snackcat/internal/lookup/provider"
	"github.com/smallbiznis/snackcat/internal/lookup/service"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("lookup.service",
	fx.Provide(provideProvider),
	fx.Provide(provideCache),
	fx.Provide(service.New),
)

// provideProvider picks the external HTTP provider when a base URL is
// configured and falls back to the built-in static table otherwise.
func provideProvider(cfg config.Config, log *zap.Logger) domain.Provider {
	if cfg.Lookup.BaseURL != "" {
		return provider.NewUPC(cfg.Lookup, log)
	}
	return provider.NewStatic()
}

func provideCache(cfg config.Config, log *zap.Logger) *redis.Client {
	if cfg.Lookup.CacheURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(cfg.Lookup.CacheURL)
	if err != nil {
		log.Warn("invalid lookup cache url, caching disabled", zap.Error(err))
		return nil
	}
	return redis.NewClient(opts)
}
