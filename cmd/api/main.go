package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookbrowser/internal/book"
	"bookbrowser/internal/catalog"
	"bookbrowser/internal/config"
	"bookbrowser/internal/httpx"
	"bookbrowser/internal/platform/logger"
	"bookbrowser/internal/session"

	"github.com/sirupsen/logrus"
)

func main() {
	config.LoadEnvFiles()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		logrus.Fatalf("logger: %v", err)
	}

	dataset, err := book.LoadDataset(cfg.BooksFile)
	if err != nil {
		log.Fatalf("cannot load dataset: %v", err)
	}
	log.WithField("books", dataset.Len()).Info("dataset loaded")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessionService := session.NewService(session.NewMemoryRepo(cfg.SessionTTL), dataset, log)
	go sessionService.RunJanitor(ctx, time.Minute)

	rateLimiter := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst, log)
	defer rateLimiter.Stop()

	handler := newRouter(dataset, sessionService, cfg, log, rateLimiter)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("shutdown")
		}
	}()

	log.Infof("Starting server on %s", cfg.Addr)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
	log.Info("server stopped")
}

func newRouter(dataset book.Dataset, sessions *session.Service, cfg config.Config, log logrus.FieldLogger, rl *httpx.RateLimitMiddleware) http.Handler {
	catalogHandler := catalog.NewHTTPHandler(dataset)
	sessionHandler := session.NewHTTPHandler(sessions)

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.HandleFunc("GET /v1/catalog/options", catalogHandler.Options)
	router.HandleFunc("GET /v1/catalog/books", catalogHandler.Browse)

	router.HandleFunc("POST /v1/sessions", sessionHandler.Create)
	router.HandleFunc("GET /v1/sessions/{id}", sessionHandler.Get)
	router.HandleFunc("DELETE /v1/sessions/{id}", sessionHandler.Delete)
	router.HandleFunc("POST /v1/sessions/{id}/actions", sessionHandler.Dispatch)

	return httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(log),
		httpx.RecoveryMiddleware(log),
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.CORSMiddleware(cfg.CORSOrigins),
		httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes),
		rl.Middleware,
	)
}
