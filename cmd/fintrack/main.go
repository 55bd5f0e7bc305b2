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
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kailas-cloud/fintrack/internal/auth"
	"github.com/kailas-cloud/fintrack/internal/config"
	dbRedis "github.com/kailas-cloud/fintrack/internal/db/redis"
	logpkg "github.com/kailas-cloud/fintrack/internal/logger"
	"github.com/kailas-cloud/fintrack/internal/metrics"
	expenserepo "github.com/kailas-cloud/fintrack/internal/repository/expense"
	goalrepo "github.com/kailas-cloud/fintrack/internal/repository/goal"
	userrepo "github.com/kailas-cloud/fintrack/internal/repository/user"
	chiTransport "github.com/kailas-cloud/fintrack/internal/transport/chi"
	openaiLLM "github.com/kailas-cloud/fintrack/internal/transport/openai"
	assistantuc "github.com/kailas-cloud/fintrack/internal/usecase/assistant"
	expenseuc "github.com/kailas-cloud/fintrack/internal/usecase/expense"
	goaluc "github.com/kailas-cloud/fintrack/internal/usecase/goal"
	healthuc "github.com/kailas-cloud/fintrack/internal/usecase/health"
	quotauc "github.com/kailas-cloud/fintrack/internal/usecase/quota"
	"github.com/kailas-cloud/fintrack/internal/version"
)

func main() {
	// Optional .env for local runs; real env vars win.
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

	logger.Info("Starting fintrack API server",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("env", env),
		zap.Int("http_port", cfg.HTTP.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Strings("db_addrs", cfg.Database.Addrs),
		zap.String("llm_model", cfg.LLM.Model),
	)

	// rueidis speaks to both Redis and Valkey; the driver name is informational.
	store, err := dbRedis.NewStore(dbRedis.Config{
		Addrs:    cfg.Database.Addrs,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		DB:       cfg.Database.DB,
	})
	if err != nil {
		logger.Fatal("Failed to create database store", zap.Error(err))
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.WaitForReady(ctx, time.Duration(cfg.Database.ReadinessTimeout)*time.Second); err != nil {
		logger.Fatal("Database not ready", zap.Error(err))
	}
	logger.Info("Connected to database")

	// Register metrics explicitly (no init())
	metrics.RegisterLLMMetrics()
	metrics.RegisterQuotaMetrics()

	llm := openaiLLM.NewClient(&openaiLLM.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		ReportModel: cfg.LLM.ReportModel,
		MaxTokens:   cfg.LLM.MaxTokens,
		Temperature: cfg.LLM.Temperature,
		Logger:      logger,
	})

	// Repositories
	users := userrepo.New(store).WithPrefix(cfg.Storage.KeyPrefix)
	expenses := expenserepo.New(store).WithPrefix(cfg.Storage.KeyPrefix)
	goals := goalrepo.New(store).WithPrefix(cfg.Storage.KeyPrefix)

	// Use cases
	gate := quotauc.New(users, cfg.Quota.FreeMonthlyLimit, logger)
	assistantSvc := assistantuc.New(llm, expenses, goals, gate, logger).
		WithLimits(assistantuc.Limits{
			ChatExpenses:   cfg.Assistant.ChatExpenses,
			ReportRecent:   cfg.Assistant.ReportRecent,
			ReportMonths:   cfg.Assistant.ReportMonths,
			ReportExpenses: cfg.Assistant.ReportExpenses,
		}).
		WithChargeOnFailure(cfg.Quota.ChargeOnFailure)
	expenseSvc := expenseuc.New(expenses)
	goalSvc := goaluc.New(goals)
	healthSvc := healthuc.New(store, llm)

	server := chiTransport.NewServer(gate, assistantSvc, expenseSvc, goalSvc, healthSvc, logger)
	verifier := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.Issuer)

	r := chi.NewRouter()
	r.Use(jsonRecoverer(logger))
	r.Use(chiMiddleware.RequestID)
	r.Use(wideEventMiddleware(logger))
	r.Use(chiTransport.BearerAuthMiddleware(verifier))
	r.Use(metrics.Middleware())
	chiTransport.HandlerWithOptions(server, chiTransport.ChiServerOptions{
		BaseRouter: r,
	})

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

// jsonRecoverer is a recovery middleware that returns JSON instead of a plain text stacktrace.
func jsonRecoverer(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					if rvr == http.ErrAbortHandler {
						panic(rvr)
					}
					logger.Error("panic recovered",
						zap.Any("panic", rvr),
						zap.String("path", r.URL.Path),
						zap.Stack("stacktrace"),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(chiTransport.ErrorResponse{
						Code:    chiTransport.ErrorResponseCodeInternalError,
						Message: "internal error",
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
			if requestID != "" {
				w.Header().Set("X-Request-ID", requestID)
			}

			reqLogger := logger.With(zap.String("request_id", requestID))
			ctx := logpkg.ContextWithLogger(r.Context(), reqLogger)

			// WrapResponseWriter keeps http.Flusher, which the chat stream needs.
			ww := chiMiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			// Canonical log line, one per request
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
