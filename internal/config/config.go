// Package config はアプリケーション設定の構造体と読み込み処理を提供します。
package config

import (
	"fmt"
	"time"
)

// Config はアプリケーション全体の設定です。
type Config struct {
	App           AppConfig           `yaml:"app" mapstructure:"app"`
	Server        ServerConfig        `yaml:"server" mapstructure:"server"`
	Gemini        GeminiConfig        `yaml:"gemini" mapstructure:"gemini"`
	Observability ObservabilityConfig `yaml:"observability" mapstructure:"observability"`
	Security      SecurityConfig      `yaml:"security" mapstructure:"security"`
}

type AppConfig struct {
	Name string `yaml:"name" mapstructure:"name"`
	Env  string `yaml:"env" mapstructure:"env"`
}

type ServerConfig struct {
	HTTP HTTPServerConfig `yaml:"http" mapstructure:"http"`
}

type HTTPServerConfig struct {
	Host         string        `yaml:"host" mapstructure:"host"`
	Port         int           `yaml:"port" mapstructure:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" mapstructure:"idle_timeout"`
	// MaxUploadMB はマルチパートフォーム全体の上限です。
	MaxUploadMB int64 `yaml:"max_upload_mb" mapstructure:"max_upload_mb"`
}

// Addr は listen アドレスを返します。
func (c HTTPServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GeminiConfig はモデル呼び出しの設定です。
type GeminiConfig struct {
	// APIKey が空の場合、リクエストごとのキー指定が必須になります。
	APIKey              string `yaml:"api_key" mapstructure:"api_key"`
	Model               string `yaml:"model" mapstructure:"model"`
	CompressImages      bool   `yaml:"compress_images" mapstructure:"compress_images"`
	CompressionQuality  int    `yaml:"compression_quality" mapstructure:"compression_quality"`
	CompressThresholdKB int    `yaml:"compress_threshold_kb" mapstructure:"compress_threshold_kb"`
	MaxImages           int    `yaml:"max_images" mapstructure:"max_images"`
}

type ObservabilityConfig struct {
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
	Tracing TracingConfig `yaml:"tracing" mapstructure:"tracing"`
	Metrics MetricsConfig `yaml:"metrics" mapstructure:"metrics"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

type TracingConfig struct {
	Enabled    bool    `yaml:"enabled" mapstructure:"enabled"`
	Endpoint   string  `yaml:"endpoint" mapstructure:"endpoint"`
	SampleRate float64 `yaml:"sample_rate" mapstructure:"sample_rate"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Path    string `yaml:"path" mapstructure:"path"`
}

type SecurityConfig struct {
	CORS CORSConfig `yaml:"cors" mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins" mapstructure:"allowed_origins"`
}

// Validate は起動に必要な値が揃っているかを検査します。
func (c *Config) Validate() error {
	if c.Server.HTTP.Port <= 0 || c.Server.HTTP.Port > 65535 {
		return fmt.Errorf("server.http.port が不正です: %d", c.Server.HTTP.Port)
	}
	if c.Server.HTTP.MaxUploadMB <= 0 {
		return fmt.Errorf("server.http.max_upload_mb は 1 以上が必要です: %d", c.Server.HTTP.MaxUploadMB)
	}
	if c.Gemini.Model == "" {
		return fmt.Errorf("gemini.model は必須です")
	}
	if c.Gemini.CompressionQuality < 1 || c.Gemini.CompressionQuality > 100 {
		return fmt.Errorf("gemini.compression_quality は 1〜100 で指定してください: %d", c.Gemini.CompressionQuality)
	}
	if c.Gemini.MaxImages < 0 {
		return fmt.Errorf("gemini.max_images は 0 以上が必要です: %d", c.Gemini.MaxImages)
	}
	return nil
}
