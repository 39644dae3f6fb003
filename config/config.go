package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "SMARTIMMO"

type Config struct {
	API     APIConfig
	AI      AIConfig
	Toast   ToastConfig
	LogPath string
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type AIConfig struct {
	Endpoint string
	Timeout  time.Duration
}

// ToastConfig holds how long confirmations (Short) and errors (Long) stay visible
type ToastConfig struct {
	Short time.Duration
	Long  time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "http://localhost:8000/api/v1")
	v.SetDefault("api.timeout", 15*time.Second)
	v.SetDefault("ai.endpoint", "http://localhost:8000/api/v1/ai/query")
	v.SetDefault("ai.timeout", 60*time.Second)
	v.SetDefault("log.path", "smartimmo.log")
	v.SetDefault("toast.short", 2*time.Second)
	v.SetDefault("toast.long", 3*time.Second)
}

// Load reads .env, then the YAML file at path (or smartimmo.yaml in the
// working directory when path is empty), then SMARTIMMO_* overrides.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("smartimmo")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := &Config{
		API: APIConfig{
			BaseURL: strings.TrimRight(v.GetString("api.base_url"), "/"),
			Timeout: v.GetDuration("api.timeout"),
		},
		AI: AIConfig{
			Endpoint: v.GetString("ai.endpoint"),
			Timeout:  v.GetDuration("ai.timeout"),
		},
		Toast: ToastConfig{
			Short: v.GetDuration("toast.short"),
			Long:  v.GetDuration("toast.long"),
		},
		LogPath: v.GetString("log.path"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if err := checkURL("api.base_url", c.API.BaseURL); err != nil {
		return err
	}
	if err := checkURL("ai.endpoint", c.AI.Endpoint); err != nil {
		return err
	}
	if c.API.Timeout <= 0 || c.AI.Timeout <= 0 {
		return fmt.Errorf("timeouts must be positive (api=%s, ai=%s)", c.API.Timeout, c.AI.Timeout)
	}
	if c.Toast.Short <= 0 || c.Toast.Long <= 0 {
		return fmt.Errorf("toast durations must be positive (short=%s, long=%s)", c.Toast.Short, c.Toast.Long)
	}
	return nil
}

func checkURL(key, raw string) error {
	if raw == "" {
		return fmt.Errorf("%s is required", key)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s must be an absolute URL, got %q", key, raw)
	}
	return nil
}
