// @title                       DevConnector API
// @version                     1.0
// @description                 Posts and developer profiles backed by MongoDB.
// @host                        localhost:5000
// @BasePath                    /api
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        x-auth-token

package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	_ "devconnector/docs"

	"devconnector/bootstrap"
	"devconnector/config"
	"devconnector/database"
	"devconnector/internal/controllers"
	"devconnector/internal/jwtutil"
	"devconnector/internal/logger"
	"devconnector/internal/metrics"
	"devconnector/internal/middleware"
	"devconnector/internal/repository"
	"devconnector/internal/routes"
	"devconnector/internal/services"
)

func main() {
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zl.Sync()

	if err := run(cfg, zl); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config.Config, zl *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	client, err := database.ConnectMongo(connectCtx, cfg.MongoURI)
	cancel()
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(dctx)
	}()
	zl.Info("connected to MongoDB", zap.String("db", cfg.MongoDB))

	db := client.Database(cfg.MongoDB)
	ictx, cancel := context.WithTimeout(ctx, 30*time.Second)
	err = bootstrap.EnsureIndexes(ictx, db)
	cancel()
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	app, cleanup := newApp(cfg, zl, db, reg)
	defer cleanup()

	errCh := make(chan error, 1)
	go func() {
		zl.Info("listening", zap.String("port", cfg.Port))
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zl.Info("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(sctx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}

// newApp wires repositories, services and routes onto a Fiber app.
func newApp(cfg config.Config, zl *zap.Logger, db *mongo.Database, reg *prometheus.Registry) (*fiber.App, func()) {
	collector := metrics.NewCollector(reg)
	tokens := jwtutil.NewManager(cfg.JWTSecret, cfg.JWTTTL, zl.Named("jwt"))

	users := repository.NewMongoUserRepo(db)
	posts := repository.NewMongoPostRepo(db)
	profiles := repository.NewMongoProfileRepo(db)

	postSvc := services.NewPostService(users, posts, zl.Named("posts"), collector)
	profileSvc := services.NewProfileService(profiles, zl.Named("profiles"), collector)
	authSvc := services.NewAuthService(users, tokens, zl.Named("auth"), collector)

	limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  rate.Limit(cfg.RateLimitRPS),
		Burst: cfg.RateLimitBurst,
	}, zl.Named("ratelimit"))

	app := fiber.New(fiber.Config{
		AppName:      "devconnector",
		ErrorHandler: middleware.ErrorHandler(zl),
	})
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.RequestLogger(zl, collector))
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, x-auth-token",
	}))

	app.Get("/docs/*", swagger.HandlerDefault)
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/metrics", metrics.Handler(reg))

	api := app.Group("/api", limiter.Middleware())
	routes.AuthRoutes(api, controllers.NewAuthHandler(authSvc, cfg.RequestTimeout), tokens)
	routes.PostRoutes(api, controllers.NewPostHandler(postSvc, cfg.RequestTimeout), tokens)
	routes.ProfileRoutes(api, controllers.NewProfileHandler(profileSvc, cfg.RequestTimeout), tokens)

	return app, limiter.Stop
}
