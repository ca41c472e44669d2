// Package config carga la configuración desde variables de entorno
// (y un .env opcional) usando koanf, y la valida con validator.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Carga .env (si existe) antes de leer el entorno.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	DefaultPort            = "3000"
	DefaultSQLitePath      = "/tmp/test.db"
	DefaultAppName         = "petcare-api"
	DefaultReadTimeout     = 5 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
)

// Config es la configuración de runtime. Las claves koanf son los nombres
// de las variables de entorno en minúscula (PORT -> port).
type Config struct {
	Port string `koanf:"port" validate:"required,numeric"`

	// Si DatabaseURL está vacío se usa SQLite en SQLitePath.
	DatabaseURL string `koanf:"database_url"`
	SQLitePath  string `koanf:"sqlite_path" validate:"required"`

	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format" validate:"omitempty,oneof=text json"`
	AppName   string `koanf:"app_name"`

	CORSAllowedOrigins string `koanf:"cors_allowed_origins"`

	ReadTimeout     time.Duration `koanf:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `koanf:"write_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// Load lee el entorno del proceso. Las variables vacías se ignoran y
// quedan los defaults.
func Load() (*Config, error) {
	return load(env.ProviderWithValue("", ".", func(key, value string) (string, any) {
		if strings.TrimSpace(value) == "" {
			return "", nil
		}
		return strings.ToLower(key), value
	}))
}

func load(provider koanf.Provider) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(provider, nil); err != nil {
		return nil, fmt.Errorf("config: load env: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.applyDefaults()

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config: validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.Port) == "" {
		c.Port = DefaultPort
	}
	if strings.TrimSpace(c.SQLitePath) == "" {
		c.SQLitePath = DefaultSQLitePath
	}
	if strings.TrimSpace(c.AppName) == "" {
		c.AppName = DefaultAppName
	}
	if strings.TrimSpace(c.CORSAllowedOrigins) == "" {
		c.CORSAllowedOrigins = "*"
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = DefaultReadTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = DefaultWriteTimeout
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = DefaultShutdownTimeout
	}
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

// UsesPostgres indica si hay DATABASE_URL configurada.
func (c *Config) UsesPostgres() bool {
	return strings.TrimSpace(c.DatabaseURL) != ""
}

// AllowedOrigins separa CORS_ALLOWED_ORIGINS por comas.
func (c *Config) AllowedOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
