// Package main は codevision-kit の HTTP サーバーのエントリーポイントです。
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/shouni/codevision-kit/internal/config"
	"github.com/shouni/codevision-kit/internal/server"
	"github.com/shouni/codevision-kit/pkg/composer"
	"github.com/shouni/codevision-kit/pkg/generator"
	"github.com/shouni/codevision-kit/pkg/logger"
	"github.com/shouni/codevision-kit/pkg/pipeline"
	"github.com/shouni/codevision-kit/pkg/router"
	"github.com/shouni/codevision-kit/pkg/tracer"
)

// ビルド時に注入
var Version = "dev"

const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		logger.Default().Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// .env は任意
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("設定の読み込みに失敗しました: %w", err)
	}

	logger.Init(cfg.Observability.Logging.Level, cfg.Observability.Logging.Format)
	log := logger.Default()
	log.Info("starting codevision-kit", "version", Version, "env", cfg.App.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := tracer.Init(ctx, tracer.Config{
		ServiceName: cfg.App.Name,
		Endpoint:    cfg.Observability.Tracing.Endpoint,
		SampleRate:  cfg.Observability.Tracing.SampleRate,
		Enabled:     cfg.Observability.Tracing.Enabled,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Error("failed to shutdown tracer", "error", err)
		}
	}()

	factory := generator.NewGenAIModelFactory()
	defaultModel, err := generator.NewDefaultModel(ctx, factory, cfg.Gemini.APIKey)
	if err != nil {
		return err
	}
	opts := generator.DefaultOptions()
	opts.CompressImages = cfg.Gemini.CompressImages
	opts.CompressionQuality = cfg.Gemini.CompressionQuality
	if cfg.Gemini.CompressThresholdKB > 0 {
		opts.CompressThresholdBytes = cfg.Gemini.CompressThresholdKB << 10
	}
	gen, err := generator.NewGeminiGenerator(defaultModel, factory, cfg.Gemini.Model, opts)
	if err != nil {
		return err
	}
	log.Info("gemini generator ready", "model", gen.ModelName(), "default_key", defaultModel != nil)

	svc, err := pipeline.NewService(composer.New(), gen, router.New(), cfg.Gemini.MaxImages)
	if err != nil {
		return err
	}

	r, err := server.New(cfg, svc, func() bool { return defaultModel != nil })
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Server.HTTP.Addr(),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.HTTP.ReadTimeout,
		WriteTimeout: cfg.Server.HTTP.WriteTimeout,
		IdleTimeout:  cfg.Server.HTTP.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("server exited")
	return nil
}
