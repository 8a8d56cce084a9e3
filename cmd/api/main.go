package main

import (
	"context"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"recipeshare/internal/config"
	"recipeshare/internal/database"
	"recipeshare/internal/database/migration"
	handlers "recipeshare/internal/http/handler"
	"recipeshare/internal/http/middleware"
	"recipeshare/internal/logging"
	"recipeshare/internal/oauth"
	"recipeshare/internal/otel"
	"recipeshare/internal/repository/postgres"
	"recipeshare/internal/service"
	"recipeshare/internal/storage"
)

func fatal(err error, msg string) {
	logging.Error(err, map[string]any{"msg": msg})
	os.Exit(1)
}

// @title Recipe Share API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		loc = time.UTC
	}
	logging.Setup(os.Stdout, loc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx)
	if err != nil {
		fatal(err, "tracing_init_failed")
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		fatal(err, "db_connect_failed")
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, cfg.Database.Host); err != nil {
		fatal(err, "db_migration_failed")
	}

	store, err := storage.New(ctx, cfg.Storage)
	if err != nil {
		fatal(err, "storage_init_failed")
	}

	media := service.NewMediaService(store)
	users := service.NewUserService(postgres.NewUserPostgres(db), media)
	svcs := handlers.Services{
		Users:        users,
		Follows:      service.NewFollowService(users, postgres.NewFollowPostgres(db)),
		Recipes:      service.NewRecipeService(postgres.NewRecipePostgres(db)),
		CookingPlans: service.NewCookingPlanService(postgres.NewCookingPlanPostgres(db), media),
		Media:        media,
		OAuth:        oauth.Setup(cfg.OAuth),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    cfg.HTTP.BodyLimitMB * 1024 * 1024,
	})

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		fatal(err, "metrics_init_failed")
	}

	app.Use(recover.New())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// otelfiber measures len(Body()), which would buffer streamed uploads
	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return strings.Contains(c.Path(), "/uploads/")
	})))
	// inside the span so access logs carry trace_id
	app.Use(middleware.Logger())
	app.Use(metrics.Handler())
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(cfg.HTTP.AllowedOrigins, ","),
		// credentials cannot be combined with a wildcard origin
		AllowCredentials: !slices.Contains(cfg.HTTP.AllowedOrigins, "*"),
	}))
	if cfg.HTTP.RateLimitPerSecond > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.HTTP.RateLimitPerSecond,
			Expiration: time.Second,
			LimitReached: func(c *fiber.Ctx) error {
				return fiber.ErrTooManyRequests
			},
		}))
	}

	handlers.RegisterRoutes(app, db, svcs)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})))

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", handlers.SwaggerUI(cfg.AppHost))

	addr := ":" + cfg.Port
	listenErr := make(chan error, 1)
	go func() { listenErr <- app.Listen(addr) }()

	select {
	case err := <-listenErr:
		if err != nil {
			fatal(err, "server_failed")
		}
	case <-ctx.Done():
	}

	logging.Info(map[string]any{"msg": "server_shutting_down"})
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logging.Error(err, map[string]any{"msg": "server_shutdown_failed"})
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logging.Error(err, map[string]any{"msg": "tracing_shutdown_failed"})
	}
}
