package config

import (
	"testing"
	"time"

	"github.com/nikolayk812/storefront-cart/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		env       map[string]string
		check     func(t *testing.T, cfg *Config)
		wantError string
	}{
		{
			name: "defaults: ok",
			env:  map[string]string{},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, ":8080", cfg.HTTPAddr)
				assert.Equal(t, "dev", cfg.LogMode)
				assert.Empty(t, cfg.DatabaseURL)
				assert.Empty(t, cfg.RedisAddr)
				assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
				assert.Equal(t, time.Minute, cfg.ToastTTL)
				assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
				assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
				assert.Equal(t, domain.FloorAtOne, cfg.DecrementPolicy)
				assert.Equal(t, "USD", cfg.Currency.String())
				assert.False(t, cfg.SecureCookies)
			},
		},
		{
			name: "overrides: ok",
			env: map[string]string{
				"HTTP_ADDR":        ":9000",
				"DATABASE_URL":     "postgres://localhost/shop",
				"REDIS_ADDR":       "localhost:6379",
				"SESSION_TTL":      "2h",
				"DECREMENT_POLICY": "remove",
				"CURRENCY":         "EUR",
				"SECURE_COOKIES":   "true",
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, ":9000", cfg.HTTPAddr)
				assert.Equal(t, "postgres://localhost/shop", cfg.DatabaseURL)
				assert.Equal(t, "localhost:6379", cfg.RedisAddr)
				assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
				assert.Equal(t, domain.RemoveAtZero, cfg.DecrementPolicy)
				assert.Equal(t, "EUR", cfg.Currency.String())
				assert.True(t, cfg.SecureCookies)
			},
		},
		{
			name:      "bad duration: error",
			env:       map[string]string{"SESSION_TTL": "soon"},
			wantError: `SESSION_TTL: time: invalid duration "soon"`,
		},
		{
			name:      "negative duration: error",
			env:       map[string]string{"TOAST_TTL": "-1s"},
			wantError: "TOAST_TTL must be positive",
		},
		{
			name:      "bad policy: error",
			env:       map[string]string{"DECREMENT_POLICY": "zero"},
			wantError: "DECREMENT_POLICY: decrement policy[zero] is not valid",
		},
		{
			name:      "bad secure cookies flag: error",
			env:       map[string]string{"SECURE_COOKIES": "yes"},
			wantError: "SECURE_COOKIES[yes] is not valid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := load(func(key string) string { return tt.env[key] })
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoad_BadCurrency(t *testing.T) {
	_, err := load(func(key string) string {
		if key == "CURRENCY" {
			return "XYZW"
		}
		return ""
	})
	require.ErrorContains(t, err, "CURRENCY")
}
