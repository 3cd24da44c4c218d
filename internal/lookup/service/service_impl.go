package service

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/smallbiznis/snackcat/internal/config"
	"github.com/smallbiznis/snackcat/internal/lookup/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Config   config.Config
	Log      *zap.Logger
	Provider domain.Provider
	Cache    *redis.Client `optional:"true"`
}

type Service struct {
	cfg      config.LookupConfig
	log      *zap.Logger
	provider domain.Provider
	cache    *redis.Client
}

func New(p Params) domain.Service {
	return &Service{
		cfg:      p.Config.Lookup,
		log:      p.Log.Named("lookup.service"),
		provider: p.Provider,
		cache:    p.Cache,
	}
}

// Lookup resolves a product code through the provider, with a
// read-through cache for found results. Blank codes are a caller
// error and never reach the provider.
func (s *Service) Lookup(ctx context.Context, code string) (*domain.Result, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domain.ErrMissingCode
	}

	if cached := s.fromCache(ctx, code); cached != nil {
		return cached, nil
	}

	result, err := s.provider.Lookup(ctx, code)
	if err != nil {
		return nil, err
	}

	if result.Found {
		s.store(ctx, code, result)
	}

	return result, nil
}

func cacheKey(code string) string {
	return "lookup:upc:" + code
}

func (s *Service) fromCache(ctx context.Context, code string) *domain.Result {
	if s.cache == nil {
		return nil
	}

	raw, err := s.cache.Get(ctx, cacheKey(code)).Bytes()
	if err != nil {
		if err != redis.Nil {
			s.log.Warn("lookup cache read failed", zap.Error(err))
		}
		return nil
	}

	var result domain.Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil
	}
	return &result
}

func (s *Service) store(ctx context.Context, code string, result *domain.Result) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cacheKey(code), raw, s.cfg.CacheTTL).Err(); err != nil {
		s.log.Warn("lookup cache write failed", zap.Error(err))
	}
}
