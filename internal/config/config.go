package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds the server's runtime settings.
type Config struct {
	// ListenAddr is the address the websocket server binds to.
	ListenAddr string `mapstructure:"listen_addr"`

	// TickInterval is the delay between execution-turn resolution steps.
	TickInterval time.Duration `mapstructure:"tick_interval"`

	// WeightsFile optionally overrides the built-in draw weights with a
	// YAML file. Empty means use the catalog defaults.
	WeightsFile string `mapstructure:"weights_file"`

	// LogLevel sets the zap log level: debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
}

// Load reads configuration from an optional file plus SPELLDESK_* environment
// variables. An empty path skips the file and uses defaults and environment
// only.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("tick_interval", "3s")
	v.SetDefault("weights_file", "")
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("SPELLDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.TickInterval <= 0 {
		return Config{}, fmt.Errorf("tick_interval must be positive, got %s", cfg.TickInterval)
	}
	return cfg, nil
}
