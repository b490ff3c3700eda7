// Package config loads service settings from configs/config.yml and
// TEMPCONV_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "TEMPCONV"

type Config struct {
	Port    string        `mapstructure:"port"`
	Log     LogConfig     `mapstructure:"log"`
	History HistoryConfig `mapstructure:"history"`
	DB      DBConfig      `mapstructure:"db"`
	WS      WSConfig      `mapstructure:"ws"`
	CORS    CORSConfig    `mapstructure:"cors"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// HistoryConfig selects the history backend: "memory" or "sqlite".
type HistoryConfig struct {
	Backend string `mapstructure:"backend"`
}

// DBConfig is only used by the sqlite backend. The default keeps the
// database in memory.
type DBConfig struct {
	Path string `mapstructure:"path"`
}

type WSConfig struct {
	PingPeriod time.Duration `mapstructure:"ping_period"`
}

// CORSConfig lists browser origins allowed to call the API. "*" allows all.
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("history.backend", "sqlite")
	v.SetDefault("db.path", ":memory:")
	v.SetDefault("ws.ping_period", 54*time.Second)
	v.SetDefault("cors.allow_origins", []string{"*"})
}

// Load reads config.yml from the given directories (first match wins). A
// missing file is not an error; defaults and env vars still apply.
func Load(paths ...string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	c.History.Backend = strings.ToLower(strings.TrimSpace(c.History.Backend))
	switch c.History.Backend {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("invalid history.backend %q: must be memory or sqlite", c.History.Backend)
	}
	if c.WS.PingPeriod <= 0 {
		return fmt.Errorf("invalid ws.ping_period %s: must be positive", c.WS.PingPeriod)
	}
	return nil
}
