package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	require.False(t, cfg.Telemetry.Enabled)
}

func TestLoadYAMLOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
service_name: sample-test
http:
  addr: ":9090"
  shutdown_timeout: 2s
telemetry:
  enabled: true
logging:
  level: debug
demo:
  radius: 2.5
  fibonacci: 10
  numbers: [2, 4]
  threshold: 5
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "sample-test", cfg.ServiceName)
	require.Equal(t, ":9090", cfg.HTTP.Addr)
	require.Equal(t, 2*time.Second, cfg.HTTP.ShutdownTimeout)
	require.True(t, cfg.Telemetry.Enabled)
	require.Equal(t, "debug", cfg.Logging.Level)

	opts := cfg.DemoOptions()
	require.Equal(t, 2.5, opts.Radius)
	require.Equal(t, 10, opts.FibonacciN)
	require.Equal(t, []int{2, 4}, opts.Numbers)
	require.Equal(t, 5, opts.Threshold)
	require.NotNil(t, opts.Now)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "http:\n  addr: \":9090\"\n")

	t.Setenv("SAMPLE_HTTP_ADDR", ":7070")
	t.Setenv("OTEL_SERVICE_NAME", "from-env")
	t.Setenv("SAMPLE_TELEMETRY_ENABLED", "true")
	t.Setenv("SAMPLE_SHUTDOWN_TIMEOUT", "750ms")
	t.Setenv("SAMPLE_DEMO_RADIUS", "3")
	t.Setenv("SAMPLE_DEMO_FIBONACCI", "12")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ":7070", cfg.HTTP.Addr)
	require.Equal(t, "from-env", cfg.ServiceName)
	require.True(t, cfg.Telemetry.Enabled)
	require.Equal(t, 750*time.Millisecond, cfg.HTTP.ShutdownTimeout)
	require.Equal(t, 3.0, cfg.Demo.Radius)
	require.Equal(t, 12, cfg.Demo.Fibonacci)
}

func TestLoadRejectsMalformedEnv(t *testing.T) {
	t.Setenv("SAMPLE_TELEMETRY_ENABLED", "sometimes")

	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorContains(t, err, "SAMPLE_TELEMETRY_ENABLED")
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := writeConfig(t, "http: [not, a, map]\n")

	_, err := Load(path)
	require.ErrorContains(t, err, "parse config")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "empty addr", mutate: func(c *Config) { c.HTTP.Addr = "" }},
		{name: "zero timeout", mutate: func(c *Config) { c.HTTP.ShutdownTimeout = 0 }},
		{name: "bad level", mutate: func(c *Config) { c.Logging.Level = "chatty" }},
		{name: "negative radius", mutate: func(c *Config) { c.Demo.Radius = -1 }},
		{name: "NaN radius", mutate: func(c *Config) { c.Demo.Radius = math.NaN() }},
		{name: "infinite radius", mutate: func(c *Config) { c.Demo.Radius = math.Inf(1) }},
		{name: "radius overflows area", mutate: func(c *Config) { c.Demo.Radius = 1e200 }},
		{name: "fibonacci too large", mutate: func(c *Config) { c.Demo.Fibonacci = 99 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}

	require.NoError(t, Default().Validate())
}

func TestLoadRejectsNonFiniteRadius(t *testing.T) {
	for _, value := range []string{"NaN", "Inf", "-Inf"} {
		t.Run("env "+value, func(t *testing.T) {
			t.Setenv("SAMPLE_DEMO_RADIUS", value)

			_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
			require.ErrorIs(t, err, ErrInvalid)
		})
	}

	t.Run("yaml .nan", func(t *testing.T) {
		path := writeConfig(t, "demo:\n  radius: .nan\n")

		_, err := Load(path)
		require.ErrorIs(t, err, ErrInvalid)
	})
}
