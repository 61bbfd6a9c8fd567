// Command server exposes morphkit as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/decode?tag=<tag>
//	GET  /api/compare?tag1=<tag>&tag2=<tag>
//	POST /api/parse            body: {"transcript":"...","lang":"greek","reference":{...}}
//	GET  /api/analyse?word=<word>[&lang=greek|latin][&ref_tag=<tag>][&ref_lemma=<lemma>]
//	POST /api/analyse/batch    body: {"words":[...],"lang":"greek","reference":{...}}
//	GET  /api/health
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/cours-de-latin/morphkit"
	"github.com/cours-de-latin/morphkit/internal/config"
	"github.com/cours-de-latin/morphkit/internal/logger"
	"github.com/cours-de-latin/morphkit/internal/morpheus"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Log)

	cmp, err := loadComparator(cfg.Similarity, log)
	if err != nil {
		return err
	}
	analyzer, err := morphkit.New(morphkit.WithLogger(log), morphkit.WithComparator(cmp))
	if err != nil {
		return err
	}
	client, err := morpheus.New(cfg.Morpheus, morpheus.WithLogger(log))
	if err != nil {
		return err
	}

	s := &server{analyzer: analyzer, fetcher: client, batch: cfg.Batch, log: log}
	httpSrv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      s.handler(cfg.CORS),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening",
			slog.String("addr", httpSrv.Addr),
			slog.String("morpheus", cfg.Morpheus.Endpoint),
		)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// handler wraps the routes in the middleware stack.
func (s *server) handler(corsCfg config.CORSConfig) http.Handler {
	return chain(s.routes(),
		withRecovery(s.log),
		withRequestID,
		withLogging(s.log),
		withCORS(corsCfg),
	)
}

// loadComparator uses the similarity file when one is configured and the
// built-in tables otherwise.
func loadComparator(cfg config.SimilarityConfig, log *slog.Logger) (*morphkit.Comparator, error) {
	if cfg.Path == "" {
		return morphkit.NewComparator(nil, morphkit.WithCompareLogger(log))
	}
	f, err := os.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("similarity: %w", err)
	}
	defer f.Close()

	sim, err := morphkit.LoadConfig(f)
	if err != nil {
		return nil, fmt.Errorf("similarity %s: %w", cfg.Path, err)
	}
	log.Info("similarity tables loaded", slog.String("path", cfg.Path), slog.Int("version", sim.Version()))
	return morphkit.NewComparator(sim, morphkit.WithCompareLogger(log))
}
