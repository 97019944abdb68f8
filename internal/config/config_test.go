package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmitKSwain/lit-raiseinvoice-invoice/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "http://localhost:5000/api", cfg.Upstream.BaseURL)
	assert.Equal(t, "Karnataka", cfg.Tax.HomeState)
	assert.Equal(t, 18.0, cfg.Tax.FallbackRate)
	assert.Equal(t, "LIT", cfg.Numbering.Prefix)
	assert.Equal(t, "local", cfg.Storage.Provider)
	assert.Equal(t, "noop", cfg.Email.Provider)
	assert.Equal(t, "M/S. L-IT TRULY SERVICES PRIVATE LIMITED", cfg.Issuer.Name)
	assert.Len(t, cfg.Issuer.AddressLines, 3)
	assert.Contains(t, cfg.CORS.AllowedOrigins, "http://localhost:3000")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LITVOICE_NUMBERING_PREFIX", "ACME")
	t.Setenv("LITVOICE_TAX_HOME_STATE", "Maharashtra")
	t.Setenv("LITVOICE_UPSTREAM_BASE_URL", "http://backend:9000/api")
	t.Setenv("LITVOICE_CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "ACME", cfg.Numbering.Prefix)
	assert.Equal(t, "Maharashtra", cfg.Tax.HomeState)
	assert.Equal(t, "http://backend:9000/api", cfg.Upstream.BaseURL)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PlatformPortFallback(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Port)
}

func TestLoad_ExplicitPortWinsOverPlatformPort(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LITVOICE_SERVER_PORT", ":7070")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Port)
}
