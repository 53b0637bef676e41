// Package logger は slog ベースの構造化ログを提供します。
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ContextKey は context からログ属性を取り出すためのキー型です。
type ContextKey string

const (
	RequestIDKey ContextKey = "request_id"
	TraceIDKey   ContextKey = "trace_id"
	SpanIDKey    ContextKey = "span_id"
	UseCaseKey   ContextKey = "use_case"
)

// FromContext が属性として付与するキー（順序固定）
var contextKeys = []ContextKey{RequestIDKey, TraceIDKey, SpanIDKey, UseCaseKey}

var defaultLogger *slog.Logger

// Init は標準出力向けのロガーを作成し、slog のデフォルトに設定します。
func Init(level string, format string) {
	defaultLogger = New(os.Stdout, level, format)
	slog.SetDefault(defaultLogger)
}

// New は指定された出力先・レベル・形式でロガーを作成します。
// format が "json" 以外の場合はテキスト形式になります。
func New(w io.Writer, level string, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(level),
		AddSource: true,
	}

	var handler slog.Handler
	if strings.ToLower(format) == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Default は初期化済みのロガーを返します。未初期化なら slog.Default を使います。
func Default() *slog.Logger {
	if defaultLogger == nil {
		return slog.Default()
	}
	return defaultLogger
}

// FromContext は context に載ったリクエスト情報を属性に持つロガーを返します。
func FromContext(ctx context.Context) *slog.Logger {
	l := Default()
	for _, key := range contextKeys {
		if v := ctx.Value(key); v != nil {
			l = l.With(string(key), v)
		}
	}
	return l
}

// WithContext はログ属性を context に載せます。
func WithContext(ctx context.Context, key ContextKey, value any) context.Context {
	return context.WithValue(ctx, key, value)
}

// Error はエラーを属性に含めて ERROR レベルで記録します。
func Error(ctx context.Context, msg string, err error, args ...any) {
	if err != nil {
		args = append(args, "error", err.Error())
	}
	FromContext(ctx).Error(msg, args...)
}
