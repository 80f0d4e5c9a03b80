// @title           GymTech Dashboard
// @version         1.0
// @description     Role-gated web dashboard for the GymTech backend.
// @BasePath        /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gymtech/dashboard/internal/api"
	"github.com/gymtech/dashboard/internal/core/service"
	"github.com/gymtech/dashboard/internal/gateway"
	"github.com/gymtech/dashboard/internal/infrastructure/config"
	mongodb "github.com/gymtech/dashboard/internal/infrastructure/db/mongo"
	redisdb "github.com/gymtech/dashboard/internal/infrastructure/db/redis"
	"github.com/gymtech/dashboard/pkg/logger"

	_ "github.com/gymtech/dashboard/docs"
)

func main() {
	cfg := config.Load()

	logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	log := logger.Get()

	if cfg.SessionSecret == "" {
		log.Fatal().Msg("SESSION_SECRET is required")
	}

	ctx := context.Background()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	sessionStore := redisdb.NewSessionStore(rdb)
	chatStore := mongodb.NewChatHistoryRepository(db)

	gw := gateway.New(cfg.Gateway.BaseURL, cfg.Gateway.Timeout, &gateway.StoreTokenSource{Store: sessionStore}, log)
	sessions := service.NewSessionService(gw.Auth, sessionStore, cfg.SessionSecret, cfg.SessionTTL, log)

	e, err := api.NewRouter(api.Deps{
		Sessions:   sessions,
		Gateway:    gw,
		Chats:      chatStore,
		Mongo:      db,
		Redis:      rdb,
		SessionTTL: cfg.SessionTTL,
		Log:        log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("router setup failed")
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("gateway", cfg.Gateway.BaseURL).Msg("dashboard listening")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
