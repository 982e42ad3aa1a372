package server

import (
	"context"
	"net/http"
	"time"

	"github.com/campusmart/campusmart/internal/config"
	syncdomain "github.com/campusmart/campusmart/internal/sync/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	fx.Provide(NewEngine),
	fx.Provide(NewServer),
	fx.Invoke(registerRoutes),
	fx.Invoke(run),
)

func NewEngine(cfg config.Config, log *zap.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger(log))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

type ServerParams struct {
	fx.In

	Engine  *gin.Engine
	Cfg     config.Config
	DB      *gorm.DB
	Log     *zap.Logger
	SyncSvc syncdomain.Service
	Runs    syncdomain.RunRepository
}

type Server struct {
	engine  *gin.Engine
	cfg     config.Config
	db      *gorm.DB
	log     *zap.Logger
	syncSvc syncdomain.Service
	runs    syncdomain.RunRepository
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:  p.Engine,
		cfg:     p.Cfg,
		db:      p.DB,
		log:     p.Log.Named("http"),
		syncSvc: p.SyncSvc,
		runs:    p.Runs,
	}
}

func registerRoutes(s *Server) {
	admin := s.engine.Group("/admin", s.adminAuth())
	admin.POST("/sync", s.handleSyncAll)
	admin.POST("/sync/payments", s.handleSyncPayments)
	admin.POST("/sync/payouts", s.handleSyncPayouts)
	admin.GET("/sync/runs", s.handleListRuns)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
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

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	log = log.Named("http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
