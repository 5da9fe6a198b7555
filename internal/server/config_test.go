package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("USE_HTTP2", "")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.UseHttp2)
	assert.Equal(t, []string{"*"}, cfg.CorsOrigins)
}

func TestLoadConfig_CorsOriginsAreTrimmed(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("CORS_ORIGINS", " https://rbiomeds.com , ,https://abc-international.com ")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, []string{"https://rbiomeds.com", "https://abc-international.com"}, cfg.CorsOrigins)
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	for _, port := range []string{"abc", "0", "70000"} {
		t.Setenv("PORT", port)
		_, err := LoadConfig()
		assert.Error(t, err, "port %q", port)
	}
}
