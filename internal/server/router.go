// Package server は gin による HTTP サーバーのルーティングを提供します。
package server

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shouni/codevision-kit/internal/config"
	"github.com/shouni/codevision-kit/internal/server/handler"
	"github.com/shouni/codevision-kit/internal/server/middleware"
)

// Router は HTTP ルーターです。
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	runner handler.Runner
	ready  func() bool
}

// New はミドルウェアとルートを設定した Router を作成します。
func New(cfg *config.Config, runner handler.Runner, ready func() bool) (*Router, error) {
	if cfg == nil {
		return nil, fmt.Errorf("cfg is required")
	}
	if runner == nil {
		return nil, fmt.Errorf("runner (handler.Runner) is required")
	}

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	tmpl, err := handler.Templates()
	if err != nil {
		return nil, fmt.Errorf("テンプレートの読み込みに失敗しました: %w", err)
	}
	engine.SetHTMLTemplate(tmpl)
	engine.MaxMultipartMemory = cfg.Server.HTTP.MaxUploadMB << 20

	r := &Router{
		engine: engine,
		cfg:    cfg,
		runner: runner,
		ready:  ready,
	}
	r.setupMiddleware()
	r.setupRoutes()
	return r, nil
}

// Engine は gin.Engine を返します。
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.CORS(r.cfg.Security.CORS.AllowedOrigins))

	if r.cfg.Observability.Tracing.Enabled {
		r.engine.Use(middleware.Trace(r.cfg.App.Name))
		r.engine.Use(middleware.TraceContext())
	}

	if r.cfg.Observability.Metrics.Enabled {
		r.engine.Use(middleware.Metrics())
	}
}

func (r *Router) setupRoutes() {
	health := handler.NewHealthHandler(r.ready)
	r.engine.GET("/health", health.Health)
	r.engine.GET("/ready", health.Ready)

	if r.cfg.Observability.Metrics.Enabled {
		r.engine.GET(r.cfg.Observability.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	ui := handler.NewUIHandler(r.cfg.App.Name)
	r.engine.GET("/", ui.Index)

	catalog := handler.NewCatalogHandler()
	generate := handler.NewGenerateHandler(r.runner, r.cfg.Server.HTTP.MaxUploadMB<<20)

	v1 := r.engine.Group("/v1")
	{
		v1.GET("/catalog", catalog.Catalog)
		v1.GET("/examples", catalog.Examples)
		v1.POST("/generate/:usecase", generate.Generate)
		v1.POST("/download", handler.Download)
	}
}
