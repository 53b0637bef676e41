package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// APIKeyHeader はリクエスト単位で Gemini の API キーを指定するヘッダーです。
const APIKeyHeader = "X-Gemini-API-Key"

// CORS はクロスオリジン設定のミドルウェアです。origins が空なら全許可です。
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", RequestIDHeader, APIKeyHeader},
		ExposeHeaders: []string{RequestIDHeader, TraceIDHeader, "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}

	if len(origins) == 0 || containsWildcard(origins) {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}

func containsWildcard(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}
