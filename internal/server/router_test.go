package server

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shouni/codevision-kit/internal/config"
	"github.com/shouni/codevision-kit/internal/server/dto"
	"github.com/shouni/codevision-kit/internal/server/middleware"
	"github.com/shouni/codevision-kit/pkg/composer"
	"github.com/shouni/codevision-kit/pkg/domain"
	"github.com/shouni/codevision-kit/pkg/generator"
	"github.com/shouni/codevision-kit/pkg/pipeline"
	"github.com/shouni/codevision-kit/pkg/router"
)

// fakeGenerator はモデルの代わりに固定テキストを返します。
type fakeGenerator struct {
	lastReq *domain.GenerationRequest
	lastKey string
}

func (f *fakeGenerator) Generate(ctx context.Context, req *domain.GenerationRequest) (*domain.GenerationResult, error) {
	f.lastReq = req
	f.lastKey, _ = generator.APIKeyFromContext(ctx)
	return &domain.GenerationResult{UseCase: req.UseCase, Target: req.Target, Text: "st.title('Weather')"}, nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Name: "codevision-kit", Env: "test"},
		Server: config.ServerConfig{HTTP: config.HTTPServerConfig{
			Host: "127.0.0.1", Port: 8080, MaxUploadMB: 8,
		}},
		Gemini: config.GeminiConfig{Model: "gemini-2.5-flash", CompressionQuality: 75},
		Observability: config.ObservabilityConfig{
			Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
		},
		Security: config.SecurityConfig{CORS: config.CORSConfig{AllowedOrigins: []string{"*"}}},
	}
}

func newTestRouter(t *testing.T, gen generator.ContentGenerator) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, err := pipeline.NewService(composer.New(), gen, router.New(), 10)
	require.NoError(t, err)

	r, err := New(testConfig(), svc, func() bool { return true })
	require.NoError(t, err)
	return r.Engine()
}

func TestNew_Validation(t *testing.T) {
	_, err := New(nil, &pipeline.Service{}, nil)
	assert.Error(t, err)
	_, err = New(testConfig(), nil, nil)
	assert.Error(t, err)
}

func TestRouter_Endpoints(t *testing.T) {
	engine := newTestRouter(t, &fakeGenerator{})

	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/health", http.StatusOK, `"status":"ok"`},
		{"/ready", http.StatusOK, `"gemini":"ok"`},
		{"/v1/catalog", http.StatusOK, `"frameworks"`},
		{"/v1/examples", http.StatusOK, `"doc_samples"`},
		{"/", http.StatusOK, "<!DOCTYPE html>"},
		{"/metrics", http.StatusOK, "codevision_http_requests_total"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.NotEmpty(t, rec.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestRouter_GenerateEndToEnd(t *testing.T) {
	gen := &fakeGenerator{}
	engine := newTestRouter(t, gen)

	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("text", "OpenWeatherMap API documentation"))
	require.NoError(t, w.WriteField("target", "Web App (Streamlit)"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/generate/doc-to-app", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set(middleware.APIKeyHeader, "AIza-user")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp dto.Response[dto.GenerateResponse]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "doc-to-app", resp.Data.UseCase)
	assert.Equal(t, "python", resp.Data.Language)
	assert.Equal(t, "generated_app.py", resp.Data.Filename)
	assert.True(t, resp.Data.RenderAsCode)

	require.NotNil(t, gen.lastReq)
	assert.True(t, strings.Contains(gen.lastReq.Instruction, "DOCUMENTATION:\nOpenWeatherMap API documentation"))
	assert.Equal(t, "AIza-user", gen.lastKey)
}

func TestRouter_GenerateMissingImage(t *testing.T) {
	engine := newTestRouter(t, &fakeGenerator{})

	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("target", "React"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/generate/image-to-code", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "requires at least one image")
}

func TestRouter_DocToAppIgnoresUploadedImages(t *testing.T) {
	gen := &fakeGenerator{}
	engine := newTestRouter(t, gen)

	var img bytes.Buffer
	require.NoError(t, png.Encode(&img, image.NewRGBA(image.Rect(0, 0, 4, 4))))

	body := new(bytes.Buffer)
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("text", "GET /weather?q={city}"))
	part, err := w.CreateFormFile("images", "diagram.png")
	require.NoError(t, err)
	_, err = part.Write(img.Bytes())
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/generate/doc-to-app", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp dto.Response[dto.GenerateResponse]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Zero(t, resp.Data.ImageCount)
	require.NotNil(t, gen.lastReq)
	assert.Empty(t, gen.lastReq.Images)
}
