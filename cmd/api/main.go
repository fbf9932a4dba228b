package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/hishamq/yawmi/docs"
	"github.com/hishamq/yawmi/internal/aiscan"
	"github.com/hishamq/yawmi/internal/auth"
	"github.com/hishamq/yawmi/internal/config"
	"github.com/hishamq/yawmi/internal/database"
	"github.com/hishamq/yawmi/internal/finance"
	"github.com/hishamq/yawmi/internal/grocery"
	"github.com/hishamq/yawmi/internal/prayer"
	"github.com/hishamq/yawmi/internal/schedule"
	"github.com/hishamq/yawmi/internal/splitbill"
	"github.com/hishamq/yawmi/internal/task"
	"github.com/hishamq/yawmi/internal/user"
	"github.com/hishamq/yawmi/pkg/logging"
	mw "github.com/hishamq/yawmi/pkg/middleware"
)

// @title           Yawmi API
// @version         1.0
// @description     Backend for the Yawmi daily productivity app: schedule, tasks, grocery, finance, prayer times and bill splitting.
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	logging.Setup()

	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	slog.Info("connected to database")

	// Redis is optional; prayer lookups just skip the cache without it
	var cache *redis.Client
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, DB: cfg.RedisDB})
	pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		slog.Warn("redis unavailable, caching disabled", "error", err)
	} else {
		cache = rdb
	}
	cancel()

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL)

	// User feature
	userRepo := user.NewRepository(db)
	userService := user.NewService(userRepo, jwtManager)
	userHandler := user.NewHandler(userService)

	// Schedule feature
	scheduleRepo := schedule.NewRepository(db)
	scheduleService := schedule.NewService(scheduleRepo)
	scheduleHandler := schedule.NewHandler(scheduleService)

	// Split bill feature
	splitbillRepo := splitbill.NewRepository(db)
	splitbillService := splitbill.NewService(splitbillRepo)
	splitbillHandler := splitbill.NewHandler(splitbillService)

	// Receipt scan feature
	scanClient := aiscan.NewClient(cfg.AIBaseURL, cfg.AIAPIKey, cfg.AIModel)
	scanService := aiscan.NewService(scanClient)
	scanHandler := aiscan.NewHandler(scanService)

	// Task feature
	taskRepo := task.NewRepository(db)
	taskService := task.NewService(taskRepo)
	taskHandler := task.NewHandler(taskService)

	// Grocery feature
	groceryRepo := grocery.NewRepository(db)
	groceryService := grocery.NewService(groceryRepo)
	groceryHandler := grocery.NewHandler(groceryService)

	// Finance feature
	financeRepo := finance.NewRepository(db)
	financeService := finance.NewService(financeRepo)
	financeHandler := finance.NewHandler(financeService)

	// Prayer times feature
	prayerClient := prayer.NewClient(cfg.PrayerAPIURL)
	prayerService := prayer.NewService(prayerClient, cache)
	prayerHandler := prayer.NewHandler(prayerService)

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(mw.Metrics)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Mount("/auth", userHandler.AuthRoutes())
		r.Mount("/splitbills/shared", splitbillHandler.SharedRoutes())

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(mw.Auth(jwtManager))

			r.Mount("/users", userHandler.Routes())
			r.Mount("/schedule", scheduleHandler.Routes())
			r.Mount("/tasks", taskHandler.Routes())
			r.Mount("/grocery", groceryHandler.Routes())
			r.Mount("/finance", financeHandler.Routes())
			r.Mount("/prayer", prayerHandler.Routes())

			r.Route("/splitbills", func(r chi.Router) {
				r.Post("/scan", scanHandler.Scan)
				r.Mount("/", splitbillHandler.Routes())
			})
		})
	})

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	slog.Info("server starting", "port", port)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
