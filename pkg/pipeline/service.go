// Package pipeline は入力の組み立て・モデル呼び出し・表示方針の決定を 1 回の同期処理として実行します。
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/shouni/codevision-kit/pkg/domain"
	"github.com/shouni/codevision-kit/pkg/generator"
	"github.com/shouni/codevision-kit/pkg/logger"
	"github.com/shouni/codevision-kit/pkg/metrics"
	"github.com/shouni/codevision-kit/pkg/router"
	"github.com/shouni/codevision-kit/pkg/tracer"
)

// RequestComposer はユーザー入力から GenerationRequest を組み立てます。
type RequestComposer interface {
	Compose(in domain.ComposeInput) (*domain.GenerationRequest, error)
}

// ResponseRouter はモデル出力の表示方針を決めます。
type ResponseRouter interface {
	Route(result domain.GenerationResult) domain.Presentation
}

// Outcome は 1 回の生成の結果です。
type Outcome struct {
	Result       domain.GenerationResult
	Presentation domain.Presentation
	ImageCount   int
}

// Service は RequestComposer → ContentGenerator → ResponseRouter を順に実行します。
// 状態を持たないため、複数のリクエストから同時に呼び出せます。
type Service struct {
	composer  RequestComposer
	generator generator.ContentGenerator
	router    ResponseRouter
	maxImages int
}

// NewService は依存関係を注入して Service を初期化します。
// maxImages が 0 以下の場合、画像枚数は制限しません。
func NewService(composer RequestComposer, gen generator.ContentGenerator, rt ResponseRouter, maxImages int) (*Service, error) {
	if composer == nil {
		return nil, fmt.Errorf("composer (RequestComposer) is required")
	}
	if gen == nil {
		return nil, fmt.Errorf("generator (ContentGenerator) is required")
	}
	if rt == nil {
		return nil, fmt.Errorf("router (ResponseRouter) is required")
	}
	return &Service{
		composer:  composer,
		generator: gen,
		router:    rt,
		maxImages: maxImages,
	}, nil
}

// Run は 1 回分の生成を実行します。
// 入力エラーの場合はモデルを呼び出しません。
func (s *Service) Run(ctx context.Context, in domain.ComposeInput) (*Outcome, error) {
	useCase := in.UseCase.String()
	ctx = logger.WithContext(ctx, logger.UseCaseKey, useCase)
	ctx, span := tracer.Start(ctx, "pipeline.Run")
	defer span.End()
	span.SetAttributes(
		attribute.String("codevision.use_case", useCase),
		attribute.Int("codevision.image_count", len(in.Images)),
	)

	log := logger.FromContext(ctx)

	out, err := s.run(ctx, in)
	metrics.GenerationTotal.WithLabelValues(useCase, statusOf(err)).Inc()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Warn("生成に失敗しました", "error", err)
		return nil, err
	}

	log.Info("生成が完了しました",
		"target", out.Result.Target,
		"language", out.Presentation.LanguageTag,
		"filename", out.Presentation.SuggestedFilename,
	)
	return out, nil
}

func (s *Service) run(ctx context.Context, in domain.ComposeInput) (*Outcome, error) {
	if s.maxImages > 0 && len(in.Images) > s.maxImages {
		return nil, fmt.Errorf("%w: at most %d images are allowed, got %d", domain.ErrInvalidInput, s.maxImages, len(in.Images))
	}

	req, err := s.composer.Compose(in)
	if err != nil {
		return nil, fmt.Errorf("リクエストの組み立てに失敗しました: %w", err)
	}

	useCase := req.UseCase.String()
	metrics.GenerationImages.WithLabelValues(useCase).Observe(float64(len(req.Images)))

	start := time.Now()
	res, err := s.generator.Generate(ctx, req)
	metrics.GenerationDuration.WithLabelValues(useCase).Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, fmt.Errorf("コード生成に失敗しました: %w", err)
	}
	if res == nil {
		return nil, fmt.Errorf("%w: generator returned no result", domain.ErrExternalService)
	}
	metrics.GenerationOutputChars.WithLabelValues(useCase).Observe(float64(len(res.Text)))

	// 表示方針は組み立て時のターゲットで決める
	result := domain.GenerationResult{
		UseCase: req.UseCase,
		Target:  req.Target,
		Text:    res.Text,
	}
	p := s.router.Route(result)
	if p.RenderAsCode && p.LanguageTag == router.FallbackLanguage {
		metrics.FallbackRoutesTotal.WithLabelValues(useCase).Inc()
	}

	return &Outcome{
		Result:       result,
		Presentation: p,
		ImageCount:   len(req.Images),
	}, nil
}

func statusOf(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, domain.ErrExternalService):
		return "external_error"
	default:
		return "error"
	}
}
