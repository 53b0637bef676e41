package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDownload(t *testing.T) {
	engine := newTestEngine()
	engine.POST("/v1/download", Download)

	post := func(values url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/download", strings.NewReader(values.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return serve(engine, req)
	}

	t.Run("テキストを添付ファイルとして返す", func(t *testing.T) {
		rec := post(url.Values{"text": {"PK not really a zip"}, "filename": {"complete_app.zip"}})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="complete_app.zip"`, rec.Header().Get("Content-Disposition"))
		assert.Equal(t, "PK not really a zip", rec.Body.String())
	})

	t.Run("ファイル名は無害化する", func(t *testing.T) {
		rec := post(url.Values{"text": {"x"}, "filename": {"../../etc/passwd"}})
		assert.Equal(t, `attachment; filename="passwd"`, rec.Header().Get("Content-Disposition"))
	})

	t.Run("テキストが空なら400", func(t *testing.T) {
		rec := post(url.Values{"filename": {"a.txt"}})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"generated_code.jsx":     "generated_code.jsx",
		"refactored_code.md":     "refactored_code.md",
		"../../etc/passwd":       "passwd",
		`..\..\windows\evil.bat`: "evil.bat",
		"my file?.py":            "my_file_.py",
		`quote".html`:            "quote_.html",
		"":                       fallbackFilename,
		"..":                     fallbackFilename,
		"???":                    fallbackFilename,
		".hidden":                "hidden",
	}
	for in, want := range tests {
		assert.Equal(t, want, sanitizeFilename(in), "input %q", in)
	}
}
