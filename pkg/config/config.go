package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config groups the application configuration (read via Viper from env vars
// and optionally from a .env / config file).
type Config struct {
	App    AppConfig
	Log    LogConfig
	Store  StoreConfig
	Export ExportConfig
	Layout LayoutConfig
}

// AppConfig is the general application configuration.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig sets the minimum logging level.
type LogConfig struct {
	Level string // trace, debug, info, warn, error
}

// StoreConfig locates the single persisted key-value file backing the
// document/party store.
type StoreConfig struct {
	Path string
}

// ExportConfig selects the PDF export strategy.
type ExportConfig struct {
	Strategy    string // "vector" (canonical) or "raster" (fidelity fallback)
	RasterScale int    // raster capture multiplier, 4 or higher
	OutputDir   string // where the CLI writes exported files
}

// LayoutConfig carries the default branding for rendered documents.
type LayoutConfig struct {
	AccentColor string // hex, e.g. #00B050
}

// Load reads the configuration from environment variables (and optionally
// from a file). Env vars win. Expected names: APP_ENV, LOG_LEVEL, STORE_PATH,
// EXPORT_STRATEGY, EXPORT_RASTER_SCALE, EXPORT_OUTPUT_DIR, LAYOUT_ACCENT_COLOR.
func Load() (*Config, error) {
	v := viper.New()

	// Optional config file (.env in the working directory).
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // missing file is fine

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Env:  v.GetString("APP_ENV"),
			Name: v.GetString("APP_NAME"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Store: StoreConfig{
			Path: v.GetString("STORE_PATH"),
		},
		Export: ExportConfig{
			Strategy:    v.GetString("EXPORT_STRATEGY"),
			RasterScale: v.GetInt("EXPORT_RASTER_SCALE"),
			OutputDir:   v.GetString("EXPORT_OUTPUT_DIR"),
		},
		Layout: LayoutConfig{
			AccentColor: v.GetString("LAYOUT_ACCENT_COLOR"),
		},
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "billdoc")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("STORE_PATH", "billdoc.json")
	v.SetDefault("EXPORT_STRATEGY", "vector")
	v.SetDefault("EXPORT_RASTER_SCALE", 4)
	v.SetDefault("EXPORT_OUTPUT_DIR", ".")
	v.SetDefault("LAYOUT_ACCENT_COLOR", "#00B050")
}
