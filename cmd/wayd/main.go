package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Pranav-Patel-123/WaY-scrapping/internal/config"
	logpkg "github.com/Pranav-Patel-123/WaY-scrapping/internal/logger"
	"github.com/Pranav-Patel-123/WaY-scrapping/internal/metrics"
	chiTransport "github.com/Pranav-Patel-123/WaY-scrapping/internal/transport/chi"
	"github.com/Pranav-Patel-123/WaY-scrapping/internal/transport/gemini"
	"github.com/Pranav-Patel-123/WaY-scrapping/internal/transport/serpapi"
	ytTransport "github.com/Pranav-Patel-123/WaY-scrapping/internal/transport/youtube"
	healthuc "github.com/Pranav-Patel-123/WaY-scrapping/internal/usecase/health"
	routeuc "github.com/Pranav-Patel-123/WaY-scrapping/internal/usecase/route"
	"github.com/Pranav-Patel-123/WaY-scrapping/internal/version"
)

func main() {
	// .env is optional; real deployments set variables in the environment.
	_ = godotenv.Load()

	env := config.GetEnv()

	cfg, err := config.Load(env)
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(env, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Starting query router API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("classifier_model", cfg.Classifier.Model),
	)

	// Register routing metrics explicitly (no init())
	metrics.RegisterRoutingMetrics()

	// Build providers — composition root
	classifier := gemini.NewClassifier(&gemini.Config{
		APIKey:  cfg.Classifier.APIKey,
		BaseURL: cfg.Classifier.BaseURL,
		Model:   cfg.Classifier.Model,
		Logger:  logger,
	})

	routeSvc := routeuc.New(classifier, logger)

	// Provider credentials are optional: an attached provider with no key would
	// fail every request, so unconfigured ones are simply not attached.
	// Pass via WithX only when built — a typed nil pointer wrapped in the
	// interface would not compare equal to nil inside the service.
	if cfg.Providers.SerpAPI.APIKey != "" {
		serp := serpapi.NewClient(&serpapi.Config{
			APIKey:  cfg.Providers.SerpAPI.APIKey,
			BaseURL: cfg.Providers.SerpAPI.BaseURL,
			Logger:  logger,
		})
		routeSvc.WithGeneral(serp)
		logger.Info("General video search provider attached")
	} else {
		logger.Warn("SERPAPI key not set, general video search disabled")
	}

	if cfg.Providers.YouTube.APIKey != "" {
		ytClient, err := ytTransport.NewClient(context.Background(), &ytTransport.Config{
			APIKey: cfg.Providers.YouTube.APIKey,
			Logger: logger,
		})
		if err != nil {
			logger.Fatal("Failed to create YouTube client", zap.Error(err))
		}
		routeSvc.WithPlatform(ytClient)
		logger.Info("Native video platform provider attached")
	} else {
		logger.Warn("YouTube API key not set, platform branch will use the fallback engine")
	}

	// Health service
	healthSvc := healthuc.New(classifier)

	// Create chi server
	server := chiTransport.NewServer(routeSvc, healthSvc, logger)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(corsMiddleware(cfg.HTTP.CORSOrigins))
	r.Use(metrics.Middleware())
	server.RegisterRoutes(r)

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.HTTP.ReadTimeoutSec) * time.Second,
		WriteTimeout: time.Duration(cfg.HTTP.WriteTimeoutSec) * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("Received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.ShutdownSec)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// corsMiddleware allows browser clients to call the API directly.
func corsMiddleware(origins []string) func(next http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})
}

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]string{
						"code":    "internal_error",
						"message": "internal error",
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// wideEventMiddleware emits a canonical log line per request and propagates X-Request-ID.
func wideEventMiddleware(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// chi.middleware.RequestID already placed request_id in context
			requestID := chiMiddleware.GetReqID(r.Context())

			// Set X-Request-ID in response header
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			// Per-request logger with request_id
			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line — one line per request
			reqLogger.Info("http_request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("latency", time.Since(start)),
				zap.String("ip", r.RemoteAddr),
				zap.Int64("content_length", r.ContentLength),
				zap.String("user_agent", r.UserAgent()),
				zap.Int("response_bytes", ww.BytesWritten()),
			)
		})
	}
}
