package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"gorm.io/gorm"
	"liyu1981.xyz/aquarium-service/pkg/aqua"
	"liyu1981.xyz/aquarium-service/pkg/common"
	"liyu1981.xyz/aquarium-service/pkg/config"
	"liyu1981.xyz/aquarium-service/pkg/db"
	aquaGrpc "liyu1981.xyz/aquarium-service/pkg/grpc"
	aquaHttp "liyu1981.xyz/aquarium-service/pkg/http"
)

const (
	shutdownTimeout     = 20 * time.Second
	grpcHealthFrequency = 15 * time.Second
)

func main() {
	loaded, err := config.LoadDotEnv()
	if err != nil {
		log.Fatal(err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := common.GetLogger()
	defer func() { _ = logger.Sync() }()
	if loaded {
		logger.Info("Loaded .env")
	}

	var dialector gorm.Dialector
	switch cfg.DBType {
	case config.DBTypeFile:
		dialector = db.UseSqliteFileDialector(cfg.DBPath)
	default:
		dialector = db.UseMemorySqliteDialector()
	}
	dbInstance, err := db.Open(dialector)
	if err != nil {
		logger.Fatal("Failed to open store", zap.String("db_type", string(cfg.DBType)), zap.Error(err))
	}

	aquaCore := (&aqua.Aqua{
		Db:           *dbInstance,
		OrphanPolicy: cfg.OrphanPolicy,
		SessionTTL:   cfg.SessionTTL,
	}).WithDefaultServices()

	if cfg.DemoUser != "" {
		if err := aquaCore.Auth.SeedUser(cfg.DemoUser, cfg.DemoPassword); err != nil {
			logger.Fatal("Failed to seed demo user", zap.Error(err))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var janitorDone <-chan struct{}
	if cfg.SessionTTL > 0 {
		janitor := &aqua.SessionJanitor{Auth: aquaCore.Auth, Interval: cfg.SessionPurgeInterval}
		janitorDone = janitor.Start(ctx)
	}

	newLimiterStore := func() *aqua.RateLimiterStore {
		if !cfg.RateLimited {
			return nil
		}
		return aqua.NewRateLimiterStore(cfg.DefaultRate, cfg.DefaultBurst)
	}

	var grpcServer *aquaGrpc.AquaServer
	var grpcSrv *grpc.Server
	var grpcErrCh chan error
	if cfg.GrpcHostPort != "" {
		grpcServer = aquaGrpc.NewAquaServer(aquaCore, newLimiterStore())
		grpcSrv = grpcServer.NewServer()
		grpcServer.WatchHealth(ctx, grpcHealthFrequency)

		listener, err := net.Listen("tcp", cfg.GrpcHostPort)
		if err != nil {
			logger.Fatal("Failed to listen for gRPC", zap.String("addr", cfg.GrpcHostPort), zap.Error(err))
		}

		grpcErrCh = make(chan error, 1)
		go func() {
			logger.Info("Starting gRPC server on " + cfg.GrpcHostPort)
			grpcErrCh <- grpcSrv.Serve(listener)
		}()
	}

	gin.SetMode(gin.ReleaseMode)
	if common.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	}

	rs := &aquaHttp.RestfulServer{
		Server:           gin.New(),
		Aqua:             aquaCore,
		RateLimiterStore: newLimiterStore(),
		RequireAuth:      cfg.RequireAuth,
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.Bool("rate_limited", cfg.RateLimited),
		zap.Float64("default_rate", float64(cfg.DefaultRate)),
		zap.Int("default_burst", cfg.DefaultBurst),
		zap.Bool("require_auth", cfg.RequireAuth),
		zap.String("orphan_fish", string(cfg.OrphanPolicy)),
		zap.Duration("session_ttl", cfg.SessionTTL))

	srv := &http.Server{
		Addr:              cfg.HttpHostPort(),
		Handler:           rs.Server,
		IdleTimeout:       30 * time.Second,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      10 * time.Second,
	}

	httpErrCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server on " + srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			httpErrCh <- err
			return
		}
		httpErrCh <- nil
	}()

	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received, shutting down")
	case err := <-httpErrCh:
		logger.Error("http server failed to serve", zap.Error(err))
	case err := <-grpcErrCh:
		logger.Error("grpc server failed to serve", zap.Error(err))
	}
	stop()

	if grpcServer != nil {
		grpcServer.Shutdown()
		grpcSrv.GracefulStop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("Graceful shutdown failed, forcing close", zap.Error(err))
		_ = srv.Close()
	}

	if janitorDone != nil {
		<-janitorDone
	}

	if err := dbInstance.Close(); err != nil {
		logger.Warn("Store close failed", zap.Error(err))
	}

	logger.Info("Shutdown complete")
}
