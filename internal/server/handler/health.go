package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shouni/codevision-kit/internal/server/dto"
)

// HealthHandler はヘルスチェックのハンドラです。
type HealthHandler struct {
	// ready は既定の API キーでモデルを呼べる状態かどうかを返します。
	ready func() bool
}

func NewHealthHandler(ready func() bool) *HealthHandler {
	return &HealthHandler{ready: ready}
}

// Health はプロセスが応答できることだけを返します。
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// Ready は既定のモデルクライアントが設定済みかどうかを返します。
// 未設定でもリクエストごとのキー指定で生成はできますが、ready にはしません。
func (h *HealthHandler) Ready(c *gin.Context) {
	if h.ready == nil || !h.ready() {
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{
			Status: "not_ready",
			Checks: map[string]string{"gemini": "api key not configured"},
		})
		return
	}
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status: "ok",
		Checks: map[string]string{"gemini": "ok"},
	})
}
