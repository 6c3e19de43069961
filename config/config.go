package config

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime parameters, read from environment variables.
// WS_PASSWORD gates every route and WS_SECRET_KEY keys the session cookie
// encryption; both defaults are placeholders and must be overridden in any
// real deployment.
type Config struct {
	Port string `envconfig:"PORT" default:"8080"`

	ServicePassword string `envconfig:"WS_PASSWORD" default:"wiener123"`
	SecretKey       string `envconfig:"WS_SECRET_KEY" default:"change-me-please"`

	DataDir   string `envconfig:"WS_DATA_DIR" default:"data"`
	ImagesDir string `envconfig:"WS_IMAGES_DIR" default:"static/images"`
	ViewsDir  string `envconfig:"WS_VIEWS_DIR" default:"./views"`

	// Bounds multipart uploads; Fiber's default would be 4 MB.
	BodyLimitMB int `envconfig:"BODY_LIMIT_MB" default:"8"`

	LoginRateMax           int `envconfig:"LOGIN_RATE_MAX" default:"10"`
	LoginRateWindowSeconds int `envconfig:"LOGIN_RATE_WINDOW_SECONDS" default:"60"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

// DBPath returns the location of the SQLite store file.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "repuestos.db")
}

// ExcelPath returns the fixed location of the master spreadsheet.
func (c *Config) ExcelPath() string {
	return filepath.Join(c.DataDir, "repuestos_master.xlsx")
}

// Load reads the configuration from the environment, honoring a .env file
// when present.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var c Config
	err := envconfig.Process("", &c)
	return &c, err
}
