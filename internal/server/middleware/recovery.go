package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/shouni/codevision-kit/internal/server/dto"
	"github.com/shouni/codevision-kit/pkg/logger"
)

// Recovery はパニックを回復し、500 の共通エラーを返します。
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error(c.Request.Context(), "panic recovered",
					fmt.Errorf("%v", r),
					"stack", string(debug.Stack()),
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
				)
				dto.Error(c, http.StatusInternalServerError, dto.CodeInternal, "internal server error")
			}
		}()

		c.Next()
	}
}
