package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAllowedOrigins(t *testing.T) {
	origins := ParseAllowedOrigins("https://a.example, https://b.example ,")

	assert.Equal(t, []string{"https://a.example", "https://b.example"}, origins)
}

func TestParseAllowedOriginsEmptyFallsBackToDefaults(t *testing.T) {
	for _, raw := range []string{"", "   ", ",,", " , , "} {
		origins := ParseAllowedOrigins(raw)

		require.NotEmpty(t, origins, "allow-list must never be empty (raw=%q)", raw)
		assert.Contains(t, origins, "https://laxmibeekeeping.com.np")
	}
}

func TestParseAllowedOriginsDefaultsAreCopied(t *testing.T) {
	first := ParseAllowedOrigins("")
	first[0] = "https://mutated.example"

	second := ParseAllowedOrigins("")
	assert.Equal(t, "https://laxmibeekeeping.com.np", second[0])
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("ENABLED_SERVICES", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "", cfg.Services.Enabled)
	assert.NotEmpty(t, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "development", cfg.App.Environment)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ALLOWED_ORIGINS", "https://only.example")
	t.Setenv("ENABLED_SERVICES", "laxmihoney")
	t.Setenv("MINDSHIPPING_DATABASE_URL", "postgres://localhost/ms")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, []string{"https://only.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "laxmihoney", cfg.Services.Enabled)
	assert.Equal(t, "postgres://localhost/ms", cfg.Database.DSN)
}
