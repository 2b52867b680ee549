package config

import (
	"fmt"
	"os"
	"time"

	"github.com/nikolayk812/storefront-cart/internal/domain"
	"golang.org/x/text/currency"
)

type Config struct {
	HTTPAddr        string
	LogMode         string
	DatabaseURL     string
	RedisAddr       string
	RedisPassword   string
	SessionTTL      time.Duration
	ToastTTL        time.Duration
	SweepInterval   time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	DecrementPolicy domain.DecrementPolicy
	Currency        currency.Unit
	SecureCookies   bool
}

// Load reads the configuration from the environment. Empty DatabaseURL and
// RedisAddr select the in-memory catalog and notification queue.
func Load() (*Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (*Config, error) {
	env := func(key, def string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		HTTPAddr:      env("HTTP_ADDR", ":8080"),
		LogMode:       env("LOG_MODE", "dev"),
		DatabaseURL:   getenv("DATABASE_URL"),
		RedisAddr:     getenv("REDIS_ADDR"),
		RedisPassword: getenv("REDIS_PASSWORD"),
	}

	var err error
	durations := []struct {
		key string
		def string
		dst *time.Duration
	}{
		{"SESSION_TTL", "30m", &cfg.SessionTTL},
		{"TOAST_TTL", "1m", &cfg.ToastTTL},
		{"SWEEP_INTERVAL", "1m", &cfg.SweepInterval},
		{"REQUEST_TIMEOUT", "30s", &cfg.RequestTimeout},
		{"SHUTDOWN_TIMEOUT", "10s", &cfg.ShutdownTimeout},
	}
	for _, d := range durations {
		*d.dst, err = time.ParseDuration(env(d.key, d.def))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", d.key, err)
		}
		if *d.dst <= 0 {
			return nil, fmt.Errorf("%s must be positive", d.key)
		}
	}

	cfg.DecrementPolicy, err = domain.ParseDecrementPolicy(env("DECREMENT_POLICY", string(domain.FloorAtOne)))
	if err != nil {
		return nil, fmt.Errorf("DECREMENT_POLICY: %w", err)
	}

	cfg.Currency, err = currency.ParseISO(env("CURRENCY", "USD"))
	if err != nil {
		return nil, fmt.Errorf("CURRENCY: %w", err)
	}

	switch v := env("SECURE_COOKIES", "false"); v {
	case "true", "1":
		cfg.SecureCookies = true
	case "false", "0":
	default:
		return nil, fmt.Errorf("SECURE_COOKIES[%s] is not valid", v)
	}

	return cfg, nil
}
