// Package server assembles the application and runs the HTTP listener.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/app/controllers"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/app/repositories"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/app/routes"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/app/services"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/config"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/auth"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/cache"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/database"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/logger"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/metrics"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/middleware"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/reqid"
	"github.com/IAmGigabyteSpeed/simple-e-commerceapi/pkg/router"
)

const shutdownTimeout = 10 * time.Second

// Start connects the backing services, wires the application together and
// serves HTTP until SIGINT/SIGTERM.
func Start(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		client.Disconnect(dctx) //nolint:errcheck
	}()
	db := client.Database(cfg.MongoDB)

	var sinks []slog.Handler
	if cfg.LogToMongo {
		sink := logger.NewMongoSink(db.Collection("logs"))
		defer sink.Close()
		sinks = append(sinks, sink)
	}
	logger.Setup(cfg.Production(), sinks...)

	// Redis is optional. Without it the cache degrades to a pass-through
	// and every catalogue read hits mongo.
	redis, err := cache.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		logger.Warn("redis unavailable, catalogue caching disabled", "addr", cfg.RedisAddr, "error", err)
	}
	defer redis.Close()

	r := NewHandler(cfg, db, redis)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", cfg.Addr(), "env", cfg.AppEnv)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

// NewHandler builds the fully wired router over the given database and
// cache. Split out from Start so commands and tests can mount the same
// surface without a listener.
func NewHandler(cfg *config.Config, db *mongo.Database, redis *cache.Cache) *router.Router {
	tokens := auth.NewTokenService(cfg.JWTSecret)

	users := repositories.NewMongoUserRepository(db)
	categories := repositories.NewMongoCategoryRepository(db)
	products := repositories.NewMongoProductRepository(db)
	transactions := repositories.NewMongoTransactionRepository(db)

	authSvc := services.NewAuthService(users, tokens)
	catalogSvc := services.NewCatalogService(categories, products, redis)
	transSvc := services.NewTransactionService(transactions, products, users)

	r := router.New()
	r.Use(
		metrics.Middleware(),
		reqid.Middleware(),
		middleware.Recovery,
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
	)

	routes.Register(r, routes.Controllers{
		Auth:         controllers.NewAuthController(authSvc),
		User:         controllers.NewUserController(authSvc),
		Category:     controllers.NewCategoryController(catalogSvc),
		Product:      controllers.NewProductController(catalogSvc),
		Transaction:  controllers.NewTransactionController(transSvc),
		TokenService: tokens,
	})
	return r
}
