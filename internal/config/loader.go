package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

// DefaultPath は Load が読む設定ファイルです。
const DefaultPath = "configs/config.yaml"

// Load は既定の設定ファイル（任意）と環境変数から設定を読み込みます。
func Load() (*Config, error) {
	return LoadFrom(DefaultPath, true)
}

// LoadFrom は path の YAML を読み込み、環境変数で上書きします。
// 優先度は 環境変数 > 設定ファイル > 既定値 です。
func LoadFrom(path string, optional bool) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	if err := loadConfigFile(v, path, optional); err != nil {
		return nil, err
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	// 一般的な変数名でも API キーを受け付ける
	if err := v.BindEnv("gemini.api_key", "GEMINI_API_KEY", "GOOGLE_API_KEY"); err != nil {
		return nil, fmt.Errorf("環境変数のバインドに失敗しました: %w", err)
	}

	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("設定の展開に失敗しました: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadConfigFile はファイルを読み、${VAR:default} を展開してから viper に渡します。
func loadConfigFile(v *viper.Viper, path string, optional bool) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if optional && os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("設定ファイル %s の読み込みに失敗しました: %w", path, err)
	}

	if err := v.ReadConfig(strings.NewReader(expandEnv(string(content)))); err != nil {
		return fmt.Errorf("設定ファイル %s の解析に失敗しました: %w", path, err)
	}
	return nil
}

var envPattern = regexp.MustCompile(`\${(\w+)(:([^}]*))?}`)

// expandEnv は ${VAR} / ${VAR:default} を環境変数で置き換えます。
// 未定義で既定値もない場合は元の文字列を残します。
func expandEnv(s string) string {
	return envPattern.ReplaceAllStringFunc(s, func(match string) string {
		sub := envPattern.FindStringSubmatch(match)
		if val, ok := os.LookupEnv(sub[1]); ok {
			return val
		}
		if sub[2] != "" {
			return sub[3]
		}
		return match
	})
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "codevision-kit")
	v.SetDefault("app.env", "development")

	v.SetDefault("server.http.host", "0.0.0.0")
	v.SetDefault("server.http.port", 8080)
	v.SetDefault("server.http.read_timeout", "30s")
	// モデル呼び出しを含むため長めに取る
	v.SetDefault("server.http.write_timeout", "180s")
	v.SetDefault("server.http.idle_timeout", "120s")
	v.SetDefault("server.http.max_upload_mb", 32)

	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("gemini.compress_images", true)
	v.SetDefault("gemini.compression_quality", 75)
	v.SetDefault("gemini.compress_threshold_kb", 1024)
	v.SetDefault("gemini.max_images", 10)

	v.SetDefault("observability.logging.level", "info")
	v.SetDefault("observability.logging.format", "json")
	v.SetDefault("observability.tracing.enabled", false)
	v.SetDefault("observability.tracing.endpoint", "localhost:4317")
	v.SetDefault("observability.tracing.sample_rate", 1.0)
	v.SetDefault("observability.metrics.enabled", true)
	v.SetDefault("observability.metrics.path", "/metrics")

	v.SetDefault("security.cors.allowed_origins", []string{"*"})
}
