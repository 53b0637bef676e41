package generator

import (
	"context"
	"strings"
)

type apiKeyContextKey struct{}

// WithAPIKey はリクエスト単位の API キーをコンテキストに載せます。
// 空文字の場合は ctx をそのまま返します。
func WithAPIKey(ctx context.Context, apiKey string) context.Context {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return ctx
	}
	return context.WithValue(ctx, apiKeyContextKey{}, apiKey)
}

// APIKeyFromContext はコンテキストに載った API キーを返します。
func APIKeyFromContext(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(apiKeyContextKey{}).(string)
	return key, ok && key != ""
}

// maskKey はログ出力用に API キーの末尾 4 文字だけを残します。
func maskKey(key string) string {
	if len(key) <= 4 {
		return "****"
	}
	return "****" + key[len(key)-4:]
}
