package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/shouni/codevision-kit/pkg/domain"
	"github.com/shouni/codevision-kit/pkg/logger"
)

// GeminiGenerator は組み立て済みのリクエストを Gemini に送り、テキストを受け取るジェネレーターです。
type GeminiGenerator struct {
	model     ContentModel
	factory   ModelFactory
	modelName string
	opts      Options
}

// NewGeminiGenerator は GeminiGenerator を初期化します。
// model は nil を許容しますが、その場合はリクエストごとの API キー指定と factory が必要です。
func NewGeminiGenerator(model ContentModel, factory ModelFactory, modelName string, opts Options) (*GeminiGenerator, error) {
	if model == nil && factory == nil {
		return nil, fmt.Errorf("model (ContentModel) or factory (ModelFactory) is required")
	}
	if modelName == "" {
		return nil, fmt.Errorf("modelName is required")
	}

	return &GeminiGenerator{
		model:     model,
		factory:   factory,
		modelName: modelName,
		opts:      opts.normalized(),
	}, nil
}

// ModelName は呼び出し先のモデル名を返します。
func (g *GeminiGenerator) ModelName() string {
	return g.modelName
}

// Generate はリクエストを 1 回だけモデルに送ります。再試行はしません。
func (g *GeminiGenerator) Generate(ctx context.Context, req *domain.GenerationRequest) (*domain.GenerationResult, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: generation request is nil", domain.ErrInvalidInput)
	}

	model, err := g.resolveModel(ctx)
	if err != nil {
		return nil, err
	}

	contents, err := g.buildContents(ctx, req)
	if err != nil {
		return nil, err
	}

	log := logger.FromContext(ctx)
	log.Info("Gemini生成リクエスト送信",
		"model", g.modelName,
		"use_case", req.UseCase.String(),
		"image_count", len(req.Images),
	)
	start := time.Now()

	resp, err := model.GenerateContent(ctx, g.modelName, contents, buildConfig(req))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrExternalService, err)
	}

	text, err := parseText(ctx, resp)
	if err != nil {
		return nil, err
	}

	log.Info("Gemini生成完了",
		"model", g.modelName,
		"use_case", req.UseCase.String(),
		"duration", time.Since(start),
		"chars", len(text),
	)

	return &domain.GenerationResult{
		UseCase: req.UseCase,
		Target:  req.Target,
		Text:    text,
	}, nil
}
