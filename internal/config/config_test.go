package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(overrides map[string]any) *viper.Viper {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	for key, value := range overrides {
		v.Set(key, value)
	}
	return v
}

func TestDefaults(t *testing.T) {
	cfg, err := fromViper(newViper(nil))
	require.NoError(t, err)

	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, 3306, cfg.DB.Port)
	assert.Equal(t, "root", cfg.DB.User)
	assert.Equal(t, "", cfg.DB.Password)
	assert.Equal(t, "FactoryManagement", cfg.DB.Name)
	assert.Equal(t, 20*time.Minute, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, 5*time.Second, cfg.DB.DialTimeout)
	assert.Equal(t, "localhost:5000", cfg.API.Addr())
	assert.True(t, cfg.Legacy.OrderJoin)
	assert.False(t, cfg.Legacy.FunctionInterpolation)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
}

func TestOverrides(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]any{
		"MYSQL_HOST":                    "db",
		"MYSQL_PORT":                    "3307",
		"MYSQL_DATABASE":                "",
		"API_PORT":                      "8080",
		"LEGACY_ORDER_JOIN":             "false",
		"LEGACY_FUNCTION_INTERPOLATION": "1",
		"CORS_ALLOWED_ORIGINS":          "http://localhost:5173, http://example.com",
	}))
	require.NoError(t, err)

	assert.Equal(t, "db", cfg.DB.Host)
	assert.Equal(t, 3307, cfg.DB.Port)
	assert.Equal(t, "FactoryManagement", cfg.DB.Name, "empty schema name falls back to the default")
	assert.Equal(t, 8080, cfg.API.Port)
	assert.False(t, cfg.Legacy.OrderJoin)
	assert.True(t, cfg.Legacy.FunctionInterpolation)
	assert.Equal(t, []string{"http://localhost:5173", "http://example.com"}, cfg.CORSOrigins)
}

func TestInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"port", "MYSQL_PORT", "33o6"},
		{"api port", "API_PORT", ""},
		{"lifetime", "DB_CONN_MAX_LIFETIME", "forever"},
		{"flag", "LEGACY_ORDER_JOIN", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fromViper(newViper(map[string]any{tt.key: tt.val}))
			assert.ErrorContains(t, err, tt.key)
		})
	}
}
