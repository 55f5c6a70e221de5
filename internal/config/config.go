package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v10"
)

// Backends soportados para guardar las preferencias de categorias.
const (
	PreferenceStorePostgres = "postgres"
	PreferenceStoreRedis    = "redis"
	PreferenceStoreMemory   = "memory"
)

// Config centraliza la configuración del servicio.
type Config struct {
	HTTPPort            string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL         string `env:"DATABASE_URL"`
	RedisAddr           string `env:"REDIS_ADDR"`
	RedisPassword       string `env:"REDIS_PASSWORD"`
	RedisDB             int    `env:"REDIS_DB" envDefault:"0"`
	JWTSecret           string `env:"JWT_SECRET,required,notEmpty"`
	JWTAccessTTLMinutes int    `env:"JWT_ACCESS_TTL_MINUTES" envDefault:"60"`
	CatalogFile         string `env:"CATALOG_FILE"`
	PreferenceStore     string `env:"PREFERENCE_STORE" envDefault:"postgres"`
	MoodRateLimitHourly int    `env:"MOOD_RATE_LIMIT_PER_HOUR" envDefault:"30"`
	NotifyChannelPrefix string `env:"NOTIFY_CHANNEL_PREFIX" envDefault:"prefs:"`
}

// LoadConfig carga la configuración desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate revisa combinaciones que env no puede expresar con tags.
func (c *Config) validate() error {
	c.PreferenceStore = strings.ToLower(strings.TrimSpace(c.PreferenceStore))
	switch c.PreferenceStore {
	case PreferenceStorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for preference store %q", c.PreferenceStore)
		}
	case PreferenceStoreRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required for preference store %q", c.PreferenceStore)
		}
	case PreferenceStoreMemory:
	default:
		return fmt.Errorf("unknown preference store %q", c.PreferenceStore)
	}
	return nil
}
