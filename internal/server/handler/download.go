package handler

import (
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shouni/codevision-kit/pkg/domain"
)

const fallbackFilename = "generated_output.txt"

type downloadForm struct {
	Text     string `form:"text"`
	Filename string `form:"filename"`
}

// Download は POST /v1/download を処理します。
// 生成テキストをそのまま text/plain の添付ファイルとして返し、アーカイブは作りません。
func Download(c *gin.Context) {
	var form downloadForm
	if err := c.ShouldBind(&form); err != nil {
		writeError(c, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err))
		return
	}
	if form.Text == "" {
		writeError(c, fmt.Errorf("%w: text is required", domain.ErrInvalidInput))
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, sanitizeFilename(form.Filename)))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(form.Text))
}

// sanitizeFilename はパス区切りを除き、英数字と . _ - 以外を _ に置き換えます。
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(strings.TrimSpace(name))

	var sb strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			sb.WriteRune(r)
		default:
			sb.WriteRune('_')
		}
	}

	cleaned := strings.Trim(sb.String(), ".")
	if cleaned == "" || strings.Trim(cleaned, "_") == "" {
		return fallbackFilename
	}
	return cleaned
}
