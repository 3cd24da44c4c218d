package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/snackcat/internal/config"
	lookupdomain "github.com/smallbiznis/snackcat/internal/lookup/domain"
	obslogger "github.com/smallbiznis/snackcat/internal/observability/logger"
	obsmetrics "github.com/smallbiznis/snackcat/internal/observability/metrics"
	obstracing "github.com/smallbiznis/snackcat/internal/observability/tracing"
	snackdomain "github.com/smallbiznis/snackcat/internal/snack/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(func(s *Server) { s.RegisterAPIRoutes() }),
	fx.Invoke(run),
)

func NewEngine(reg *prometheus.Registry, httpMetrics *obsmetrics.HTTPMetrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obslogger.GinMiddleware())
	r.Use(obstracing.GinMiddleware())
	r.Use(obsmetrics.GinMiddleware(httpMetrics))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	return r
}

type Server struct {
	engine    *gin.Engine
	cfg       config.Config
	log       *zap.Logger
	snackSvc  snackdomain.Service
	lookupSvc lookupdomain.Service
}

type Params struct {
	fx.In

	Engine    *gin.Engine
	Config    config.Config
	Log       *zap.Logger
	SnackSvc  snackdomain.Service
	LookupSvc lookupdomain.Service
}

func NewServer(p Params) *Server {
	return &Server{
		engine:    p.Engine,
		cfg:       p.Config,
		log:       p.Log.Named("http.server"),
		snackSvc:  p.SnackSvc,
		lookupSvc: p.LookupSvc,
	}
}

func (s *Server) RegisterAPIRoutes() {
	api := s.engine.Group("/api")

	api.POST("/snacks", s.CreateSnack)
	api.GET("/snacks", s.ListSnacks)
	api.GET("/snacks/:id", s.GetSnackByID)
	api.PATCH("/snacks/:id", s.UpdateSnackRating)

	api.POST("/barcode-lookup", s.BarcodeLookup)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
