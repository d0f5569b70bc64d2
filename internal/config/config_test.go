package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMap_Defaults(t *testing.T) {
	cfg, err := FromMap(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, "", cfg.DatabaseURL)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, int64(1), cfg.CurrentUserID)
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, 15*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.ShutdownGrace)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "0.0.0.0:3000", cfg.Addr())
}

func TestFromMap_Overrides(t *testing.T) {
	cfg, err := FromMap(map[string]string{
		"APP_ENV":              " Release ",
		"DATABASE_URL":         "postgres://u:p@db:5432/swapi",
		"PORT":                 "8080",
		"CURRENT_USER_ID":      "7",
		"AUTO_MIGRATE":         "false",
		"CORS_ALLOWED_ORIGINS": "https://a.example, ,https://b.example",
	})
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "postgres://u:p@db:5432/swapi", cfg.DatabaseURL)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, int64(7), cfg.CurrentUserID)
	assert.False(t, cfg.AutoMigrate)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestFromMap_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"port out of range": {"PORT": "70000"},
		"port not a number": {"PORT": "abc"},
		"zero user":         {"CURRENT_USER_ID": "0"},
		"bad duration":      {"READ_TIMEOUT": "soon"},
	}

	for name, environ := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := FromMap(environ)
			assert.Error(t, err)
		})
	}
}
