package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gearshare/internal/config"
	"gearshare/internal/database"
	"gearshare/internal/middleware"
	"gearshare/internal/modules/auth"
	"gearshare/internal/modules/equipment"
	"gearshare/internal/modules/notify"
	"gearshare/internal/modules/report"
	"gearshare/internal/modules/reservation"
	"gearshare/internal/modules/review"
	jwtsvc "gearshare/internal/pkg/jwt"
	"gearshare/internal/pkg/logger"
	"gearshare/internal/repository"
	"gearshare/internal/repository/gormstore"
	"gearshare/internal/repository/pgxstore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Connect(cfg.DatabaseURL, zl)
	if err != nil {
		zl.Fatal("database connection failed", zap.Error(err))
	}
	if err := database.Migrate(db); err != nil {
		zl.Fatal("migration failed", zap.Error(err))
	}

	var store repository.Store
	switch cfg.StoreDriver {
	case config.DriverPgx:
		pool, err := database.OpenPool(ctx, cfg.DatabaseURL, cfg.MaxConns)
		if err != nil {
			zl.Fatal("pgx pool failed", zap.Error(err))
		}
		defer pool.Close()
		store = pgxstore.New(pool)
	default:
		store = gormstore.New(db)
	}
	zl.Info("store ready", zap.String("driver", cfg.StoreDriver))

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	hub := notify.NewHub(zl)
	defer hub.Close()

	authHandler := auth.NewHandler(auth.NewService(store, j, zl))
	equipmentHandler := equipment.NewHandler(equipment.NewService(store, zl))
	reservationHandler := reservation.NewHandler(reservation.NewService(store, hub, zl))
	reviewHandler := review.NewHandler(review.NewService(store, hub, zl))
	reportHandler := report.NewHandler(report.NewService(store, zl))
	notifyHandler := notify.NewHandler(hub, j, zl)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(middleware.RequestLogger(zl))
	r.Use(middleware.CORS(cfg.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	notifyHandler.RegisterRoutes(r)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.Principal(j))
	{
		authHandler.RegisterPublicRoutes(v1)
		equipmentHandler.RegisterRoutes(v1)
		reservationHandler.RegisterRoutes(v1)
		reviewHandler.RegisterRoutes(v1)
		reportHandler.RegisterRoutes(v1)
	}

	protected := v1.Group("")
	protected.Use(middleware.JWTAuth(j))
	authHandler.RegisterProtectedRoutes(protected)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("shutdown failed", zap.Error(err))
	}
}
