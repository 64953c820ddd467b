package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config concentra toda la configuración del servicio.
// Todo viene de env vars (o .env en dev); sin flags.
type Config struct {
	Port string `mapstructure:"PORT"`
	Env  string `mapstructure:"ENV"`

	// Opcional: si viene, el store de citas usa Postgres. Si no, in-memory.
	DBDSN string `mapstructure:"DB_DSN"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// Servicio remoto del concierge (opaco). Si falta la API key,
	// el adapter queda sin configurar y la inicialización falla de forma controlada.
	AssistantBaseURL string `mapstructure:"ASSISTANT_BASE_URL"`
	AssistantAPIKey  string `mapstructure:"ASSISTANT_API_KEY"`
	AssistantModel   string `mapstructure:"ASSISTANT_MODEL"`
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("ASSISTANT_BASE_URL", "https://generativelanguage.googleapis.com")
	v.SetDefault("ASSISTANT_MODEL", "gemini-2.5-flash")

	// Bind explícito para que Unmarshal levante las env vars
	for _, key := range []string{
		"PORT", "ENV", "DB_DSN",
		"LOG_LEVEL", "LOG_FORMAT",
		"ASSISTANT_BASE_URL", "ASSISTANT_API_KEY", "ASSISTANT_MODEL",
	} {
		_ = v.BindEnv(key)
	}

	// .env es opcional
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	cfg.Port = strings.TrimSpace(cfg.Port)
	if cfg.Port == "" {
		return nil, fmt.Errorf("config: PORT is required")
	}

	return cfg, nil
}

func (c *Config) IsDev() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), "development")
}
