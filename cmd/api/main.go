package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/facetime/facetime-api/internal/api"
	"github.com/facetime/facetime-api/internal/api/handler"
	"github.com/facetime/facetime-api/internal/core/security"
	"github.com/facetime/facetime-api/internal/core/service"
	mongodb "github.com/facetime/facetime-api/internal/infrastructure/db/mongo"
	redisdb "github.com/facetime/facetime-api/internal/infrastructure/db/redis"
	"github.com/facetime/facetime-api/internal/pkg/config"
	"github.com/facetime/facetime-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title                       Facetime API
// @version                     1.0
// @description                 Account signup and login, product catalog and my page for the facetime skin-care app.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "facetime-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("connect mongo")
	}
	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("connect redis")
	}

	accounts := mongodb.NewAccountRepository(db)
	products := mongodb.NewProductRepository(db)
	if err := mongodb.EnsureIndexes(ctx, accounts, products); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes")
	}

	codec, err := security.NewJWTCodec(security.TokenConfig{
		Secret:    []byte(cfg.Auth.JWTSecret),
		TTL:       cfg.Auth.TokenTTL,
		ClockSkew: cfg.Auth.ClockSkew,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("token codec")
	}

	authService, err := service.NewAuthService(accounts, security.NewBcryptHasher(cfg.Auth.BcryptCost), codec, log.With().Str("component", "auth").Logger())
	if err != nil {
		log.Fatal().Err(err).Msg("auth service")
	}
	productService := service.NewProductService(
		products,
		redisdb.NewProductCache(rdb, cfg.Catalog.CacheTTL),
		log.With().Str("component", "catalog").Logger(),
	)

	e := api.NewRouter(api.Dependencies{
		Auth:     authService,
		Resolver: authService,
		Products: productService,
		Profiles: service.NewProfileService(accounts),
		HealthChecks: map[string]handler.HealthCheck{
			"mongodb": handler.MongoCheck(db),
			"redis":   handler.RedisCheck(rdb),
		},
		PublicPaths: cfg.HTTP.PublicPaths,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		Logger:      log,
	})

	go func() {
		addr := net.JoinHostPort("", cfg.Port)
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("starting facetime-api")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close")
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect")
	}
	log.Info().Msg("stopped")
}
