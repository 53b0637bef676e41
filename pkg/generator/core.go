package generator

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/shouni/codevision-kit/pkg/domain"
	"github.com/shouni/codevision-kit/pkg/logger"
)

// NewGenAIModelFactory は genai.Client を生成する ModelFactory を返します。
// バックエンドは Gemini API 固定です。
func NewGenAIModelFactory() ModelFactory {
	return func(ctx context.Context, apiKey string) (ContentModel, error) {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("genaiクライアントの作成に失敗しました: %w", err)
		}
		return client.Models, nil
	}
}

// NewDefaultModel は設定ファイルの API キーで既定の ContentModel を作ります。
// キーが空の場合は nil を返し、リクエストごとのキー指定を必須にします。
func NewDefaultModel(ctx context.Context, factory ModelFactory, apiKey string) (ContentModel, error) {
	if factory == nil {
		return nil, fmt.Errorf("factory (ModelFactory) is required")
	}
	if apiKey == "" {
		logger.FromContext(ctx).Warn("Gemini APIキーが未設定です。リクエストごとのキー指定が必要になります")
		return nil, nil
	}
	return factory(ctx, apiKey)
}

// resolveModel はリクエストに使う ContentModel を決めます。
// コンテキストに API キーがあればそれを優先し、なければ既定のモデルを使います。
func (g *GeminiGenerator) resolveModel(ctx context.Context) (ContentModel, error) {
	if key, ok := APIKeyFromContext(ctx); ok {
		if g.factory == nil {
			return nil, fmt.Errorf("%w: per-request API key is not supported", domain.ErrInvalidInput)
		}
		logger.FromContext(ctx).Debug("リクエスト指定のAPIキーを使用します", "key", maskKey(key))
		m, err := g.factory(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrExternalService, err)
		}
		return m, nil
	}

	if g.model == nil {
		return nil, fmt.Errorf("%w: Gemini API key is not configured", domain.ErrInvalidInput)
	}
	return g.model, nil
}
