package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/bazarhub/marketplace-api/internal/api"
	"github.com/bazarhub/marketplace-api/internal/infrastructure/config"
	mongorepo "github.com/bazarhub/marketplace-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/bazarhub/marketplace-api/internal/infrastructure/db/redis"
	"github.com/bazarhub/marketplace-api/internal/infrastructure/queue"
	"github.com/bazarhub/marketplace-api/pkg/logger"
)

// @title        Marketplace API
// @version      1.0
// @description  Account, listing and moderation backend for the marketplace.
// @BasePath     /
func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongorepo.Connect(ctx, mongorepo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := mongorepo.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := mongorepo.NewAdminRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("admin index creation failed")
	}

	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()

	auditWriter := queue.NewAuditWriter(0, mongorepo.NewAuditRepository(db), log)
	auditWriter.Start(ctx)

	e := api.NewRouter(cfg, db, rdb, auditWriter, log)

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutdown signal received")
		if err := e.Shutdown(context.Background()); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting marketplace api")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Info().Err(err).Msg("server stopped")
	}
}
