// Package dto は HTTP 層のレスポンス形式を定義します。
package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response は成功時の共通レスポンスです。
type Response[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
	TraceID string `json:"trace_id,omitempty"`
}

// ErrorDetail はエラーの分類と補足です。
type ErrorDetail struct {
	ErrorCode string `json:"error_code,omitempty"`
	Details   string `json:"details,omitempty"`
}

// ErrorResponse は失敗時の共通レスポンスです。
type ErrorResponse struct {
	Code    int          `json:"code"`
	Message string       `json:"message"`
	Error   *ErrorDetail `json:"error,omitempty"`
	TraceID string       `json:"trace_id,omitempty"`
}

// エラーコード
const (
	CodeInvalidInput    = "invalid_input"
	CodeExternalService = "external_service"
	CodeTooLarge        = "payload_too_large"
	CodeInternal        = "internal_error"
)

// Success は 200 で data を返します。
func Success[T any](c *gin.Context, data T) {
	c.JSON(http.StatusOK, Response[T]{
		Code:    http.StatusOK,
		Message: "success",
		Data:    data,
		TraceID: c.GetString("trace_id"),
	})
}

// Error は status とメッセージでエラーを返し、以降のハンドラを中断します。
func Error(c *gin.Context, status int, errorCode, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Code:    status,
		Message: message,
		Error:   &ErrorDetail{ErrorCode: errorCode},
		TraceID: c.GetString("trace_id"),
	})
}

// GenerateResponse は生成 API の data 部です。
type GenerateResponse struct {
	UseCase      string `json:"use_case"`
	Text         string `json:"text"`
	RenderAsCode bool   `json:"render_as_code"`
	Language     string `json:"language"`
	Filename     string `json:"filename"`
	ImageCount   int    `json:"image_count"`
}

// HealthResponse はヘルスチェックの応答です。
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}
