package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/shouni/codevision-kit/pkg/domain"
	"github.com/shouni/codevision-kit/pkg/generator"
	"github.com/shouni/codevision-kit/pkg/pipeline"
)

// --- Mocks ---

type mockRunner struct {
	calls   int
	lastIn  domain.ComposeInput
	lastKey string
	out     *pipeline.Outcome
	err     error
}

func (m *mockRunner) Run(ctx context.Context, in domain.ComposeInput) (*pipeline.Outcome, error) {
	m.calls++
	m.lastIn = in
	m.lastKey, _ = generator.APIKeyFromContext(ctx)
	if m.err != nil {
		return nil, m.err
	}
	return m.out, nil
}

// --- Helpers ---

var pngHeader = []byte("\x89PNG\r\n\x1a\n")

func pngFile(payload string) []byte {
	return append(append([]byte{}, pngHeader...), payload...)
}

type filePart struct {
	name string
	data []byte
}

// multipartBody はフォーム値と images ファイルからマルチパートのボディを作ります。
func multipartBody(t *testing.T, fields map[string][]string, files ...filePart) (*bytes.Buffer, string) {
	t.Helper()
	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	for key, values := range fields {
		for _, v := range values {
			require.NoError(t, w.WriteField(key, v))
		}
	}
	for _, f := range files {
		fw, err := w.CreateFormFile("images", f.name)
		require.NoError(t, err)
		_, err = fw.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return body, w.FormDataContentType()
}

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func serve(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}
