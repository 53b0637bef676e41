package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shouni/codevision-kit/internal/server/dto"
	"github.com/shouni/codevision-kit/pkg/domain"
	"github.com/shouni/codevision-kit/pkg/logger"
)

var errPayloadTooLarge = errors.New("request body too large")

// writeError はエラーを分類して共通エラーレスポンスを返します。
// 入力エラーは 400、モデル側の失敗は 502 で、どちらもメッセージはそのまま返します。
func writeError(c *gin.Context, err error) {
	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.Is(err, errPayloadTooLarge), errors.As(err, &maxBytesErr):
		dto.Error(c, http.StatusRequestEntityTooLarge, dto.CodeTooLarge, err.Error())
	case errors.Is(err, domain.ErrInvalidInput):
		dto.Error(c, http.StatusBadRequest, dto.CodeInvalidInput, err.Error())
	case errors.Is(err, domain.ErrExternalService):
		dto.Error(c, http.StatusBadGateway, dto.CodeExternalService, err.Error())
	default:
		logger.Error(c.Request.Context(), "unexpected error", err, "path", c.FullPath())
		dto.Error(c, http.StatusInternalServerError, dto.CodeInternal, "internal server error")
	}
}
